package reference

type BaggageOption struct {
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	Weight     string  `json:"weight"`
	Dimensions string  `json:"dimensions"`
	Included   bool    `json:"included"`
	Price      float64 `json:"price"`
}

var baggageOptions = []BaggageOption{
	{Type: "hand_baggage", Name: "Bagage à main", Weight: "7kg", Dimensions: "55x40x20cm", Included: true, Price: 0},
	{Type: "checked_baggage_23kg", Name: "Bagage en soute - 23kg", Weight: "23kg", Dimensions: "158cm linéaire", Included: false, Price: 200.00},
	{Type: "checked_baggage_32kg", Name: "Bagage en soute - 32kg", Weight: "32kg", Dimensions: "158cm linéaire", Included: false, Price: 350.00},
	{Type: "extra_baggage", Name: "Bagage supplémentaire", Weight: "23kg", Dimensions: "158cm linéaire", Included: false, Price: 400.00},
}

// BaggageOptions returns the fixed four-tier baggage catalog.
func BaggageOptions() []BaggageOption {
	out := make([]BaggageOption, len(baggageOptions))
	copy(out, baggageOptions)
	return out
}

// BaggagePrice totals a selection against the price table. Unknown tiers are
// priced at zero and non-positive counts are ignored.
func BaggagePrice(selection map[string]int) float64 {
	var total float64
	for tier, count := range selection {
		if count <= 0 {
			continue
		}
		for _, opt := range baggageOptions {
			if opt.Type == tier {
				total += opt.Price * float64(count)
				break
			}
		}
	}
	return total
}
