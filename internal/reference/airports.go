// Package reference holds the static catalogs the API serves: the airport
// list and the baggage price table. Nothing here is persisted.
package reference

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

var airports = []Airport{
	{Code: "CMN", Name: "Aéroport Mohammed V", City: "Casablanca", Country: "Maroc"},
	{Code: "RAK", Name: "Aéroport Marrakech-Ménara", City: "Marrakech", Country: "Maroc"},
	{Code: "FEZ", Name: "Aéroport Fès-Saïss", City: "Fès", Country: "Maroc"},
	{Code: "TNG", Name: "Aéroport Tanger-Ibn Battouta", City: "Tanger", Country: "Maroc"},
	{Code: "CDG", Name: "Aéroport Charles de Gaulle", City: "Paris", Country: "France"},
	{Code: "ORY", Name: "Aéroport Paris-Orly", City: "Paris", Country: "France"},
	{Code: "MAD", Name: "Aéroport Madrid-Barajas", City: "Madrid", Country: "Espagne"},
	{Code: "BCN", Name: "Aéroport Barcelone-El Prat", City: "Barcelone", Country: "Espagne"},
}

var cityByCode = func() map[string]string {
	m := make(map[string]string, len(airports))
	for _, a := range airports {
		m[a.Code] = a.City
	}
	// AGA has no entry in the airport list but is a known city mapping.
	m["AGA"] = "Agadir"
	return m
}()

// Airports returns the full static airport catalog.
func Airports() []Airport {
	out := make([]Airport, len(airports))
	copy(out, airports)
	return out
}

// CityFor resolves an airport code to its city name, echoing the code back
// when it is not in the catalog.
func CityFor(code string) string {
	if city, ok := cityByCode[code]; ok {
		return city
	}
	return code
}
