package domain

import (
	"encoding/json"
	"time"
)

type ServiceType string

const ServiceTypeFlight ServiceType = "flight"

type BookingStatus string

const BookingStatusConfirmed BookingStatus = "confirmed"

type Booking struct {
	ID               int64          `json:"id"`
	BookingReference string         `json:"booking_reference"`
	CustomerName     string         `json:"customer_name"`
	CustomerEmail    string         `json:"customer_email"`
	CustomerPhone    string         `json:"customer_phone"`
	ServiceType      ServiceType    `json:"service_type"`
	ServiceDetails   ServiceDetails `json:"service_details"`
	BookingDate      time.Time      `json:"booking_date"`
	NumberOfPeople   int            `json:"number_of_people"`
	TotalPrice       float64        `json:"total_price"`
	Status           BookingStatus  `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type Passenger struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	PassportNumber string `json:"passport_number,omitempty"`
}

// FlightBookingDetails is the service-details variant for flight bookings.
// Flight is a snapshot taken at booking time, not a reference.
type FlightBookingDetails struct {
	Flight           Flight         `json:"flight_details"`
	Passengers       []Passenger    `json:"passengers"`
	BaggageSelection map[string]int `json:"baggage_selection"`
	BookingClass     string         `json:"booking_class"`
}

// ServiceDetails is a union keyed by the booking's service type: the flight
// variant carries a typed snapshot, every other service type an open document.
// Exactly one of the two fields is set.
type ServiceDetails struct {
	Flight  *FlightBookingDetails
	Generic map[string]any
}

func FlightDetails(d FlightBookingDetails) ServiceDetails {
	return ServiceDetails{Flight: &d}
}

func GenericDetails(doc map[string]any) ServiceDetails {
	if doc == nil {
		doc = map[string]any{}
	}
	return ServiceDetails{Generic: doc}
}

func (d ServiceDetails) MarshalJSON() ([]byte, error) {
	if d.Flight != nil {
		return json.Marshal(d.Flight)
	}
	if d.Generic != nil {
		return json.Marshal(d.Generic)
	}
	return []byte("{}"), nil
}

// DecodeServiceDetails parses the stored text column back into the union,
// picking the variant from the service type. A flight payload that no longer
// matches the typed shape degrades to the generic variant rather than failing
// the read.
func DecodeServiceDetails(serviceType ServiceType, raw []byte) ServiceDetails {
	if len(raw) == 0 {
		return GenericDetails(nil)
	}
	if serviceType == ServiceTypeFlight {
		var fd FlightBookingDetails
		if err := json.Unmarshal(raw, &fd); err == nil {
			return ServiceDetails{Flight: &fd}
		}
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return GenericDetails(nil)
	}
	return ServiceDetails{Generic: doc}
}
