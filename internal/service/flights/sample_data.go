package flights

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/domain"
)

const sampleFlightCount = 20

type sampleRoute struct {
	from string
	to   string
}

var sampleRoutes = []sampleRoute{
	{"CMN", "CDG"},
	{"CMN", "RAK"},
	{"CMN", "FEZ"},
	{"CMN", "MAD"},
	{"RAK", "CDG"},
	{"RAK", "CMN"},
	{"FEZ", "ORY"},
	{"CDG", "CMN"},
}

var sampleAirlines = []struct {
	name   string
	prefix string
}{
	{"Royal Air Maroc", "AT"},
	{"Air France", "AF"},
	{"Air Arabia", "3O"},
	{"Emirates", "EK"},
	{"Turkish Airlines", "TK"},
}

var sampleGates = []string{"A", "B", "C", "D"}

// sampleFlights builds n randomized SCHEDULED flights departing within the
// next 30 days. Seeded seats never exceed capacity.
func sampleFlights(n int) []domain.Flight {
	flights := make([]domain.Flight, 0, n)
	for i := 0; i < n; i++ {
		route := sampleRoutes[rand.Intn(len(sampleRoutes))]
		airline := sampleAirlines[rand.Intn(len(sampleAirlines))]

		departure := time.Now().
			AddDate(0, 0, 1+rand.Intn(30)).
			Truncate(time.Hour).
			Add(time.Duration(6+rand.Intn(17)) * time.Hour)
		arrival := departure.Add(time.Duration(60+rand.Intn(181)) * time.Minute)

		capacity := 100 + rand.Intn(101)
		seats := 5 + rand.Intn(46)
		if seats > capacity {
			seats = capacity
		}

		boardingStart := departure.Add(-time.Hour)
		boardingEnd := departure.Add(-15 * time.Minute)

		flights = append(flights, domain.Flight{
			FlightNumber:     fmt.Sprintf("%s%d", airline.prefix, 100+rand.Intn(900)),
			Airline:          airline.name,
			DepartureAirport: route.from,
			ArrivalAirport:   route.to,
			DepartureTime:    departure,
			ArrivalTime:      arrival,
			Price:            math.Round((400+rand.Float64()*1600)*100) / 100,
			AvailableSeats:   seats,
			Capacity:         capacity,
			FlightStatus:     domain.FlightStatusScheduled,
			BoardingGate:     fmt.Sprintf("%s%d", sampleGates[rand.Intn(len(sampleGates))], 1+rand.Intn(30)),
			BoardingStart:    &boardingStart,
			BoardingEnd:      &boardingEnd,
		})
	}
	return flights
}
