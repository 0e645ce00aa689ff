package kafka

import "time"

// BookingEvent is the message published to the bookings and notifications
// topics whenever a booking is created.
type BookingEvent struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	BookingReference string    `json:"booking_reference"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	ServiceType      string    `json:"service_type"`
	NumberOfPeople   int       `json:"number_of_people"`
	TotalPrice       float64   `json:"total_price"`
	CreatedAt        time.Time `json:"created_at"`
}
