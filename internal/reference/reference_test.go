package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCityFor(t *testing.T) {
	assert.Equal(t, "Casablanca", CityFor("CMN"))
	assert.Equal(t, "Paris", CityFor("CDG"))
	assert.Equal(t, "Agadir", CityFor("AGA"))
	// unknown codes echo back unchanged
	assert.Equal(t, "JFK", CityFor("JFK"))
}

func TestAirports(t *testing.T) {
	airports := Airports()
	assert.Len(t, airports, 8)

	codes := make(map[string]bool)
	for _, a := range airports {
		codes[a.Code] = true
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.City)
		assert.NotEmpty(t, a.Country)
	}
	assert.True(t, codes["CMN"])
	assert.True(t, codes["CDG"])
}

func TestBaggageOptions(t *testing.T) {
	options := BaggageOptions()
	assert.Len(t, options, 4)

	assert.Equal(t, "hand_baggage", options[0].Type)
	assert.True(t, options[0].Included)
	assert.Zero(t, options[0].Price)

	for _, opt := range options[1:] {
		assert.False(t, opt.Included)
		assert.Greater(t, opt.Price, 0.0)
	}
}

func TestBaggagePrice(t *testing.T) {
	tests := []struct {
		name      string
		selection map[string]int
		want      float64
	}{
		{"nil selection", nil, 0},
		{"empty selection", map[string]int{}, 0},
		{"single checked bag", map[string]int{"checked_baggage_23kg": 1}, 200},
		{"mixed tiers", map[string]int{"checked_baggage_23kg": 2, "extra_baggage": 1}, 800},
		{"hand baggage is free", map[string]int{"hand_baggage": 3}, 0},
		{"unknown tier priced at zero", map[string]int{"surfboard": 2}, 0},
		{"zero count ignored", map[string]int{"checked_baggage_32kg": 0}, 0},
		{"negative count ignored", map[string]int{"checked_baggage_32kg": -1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaggagePrice(tt.selection))
		})
	}
}
