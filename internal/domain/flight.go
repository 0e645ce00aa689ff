package domain

import "time"

const FlightStatusScheduled = "SCHEDULED"

type Flight struct {
	ID               int64      `json:"id"`
	FlightNumber     string     `json:"flight_number"`
	Airline          string     `json:"airline"`
	DepartureAirport string     `json:"departure_airport"`
	ArrivalAirport   string     `json:"arrival_airport"`
	DepartureTime    time.Time  `json:"departure_time"`
	ArrivalTime      time.Time  `json:"arrival_time"`
	Price            float64    `json:"price"`
	AvailableSeats   int        `json:"available_seats"`
	Capacity         int        `json:"capacity"`
	FlightStatus     string     `json:"flight_status"`
	BoardingGate     string     `json:"boarding_gate"`
	BoardingStart    *time.Time `json:"boarding_start"`
	BoardingEnd      *time.Time `json:"boarding_end"`
	CreatedAt        time.Time  `json:"-"`
	UpdatedAt        time.Time  `json:"-"`
}

// FlightSearch holds already-validated search criteria. Date is compared by
// calendar day; From and To are matched as case-insensitive substrings.
type FlightSearch struct {
	From       string
	To         string
	Date       time.Time
	Passengers int
}
