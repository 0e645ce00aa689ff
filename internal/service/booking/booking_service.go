package booking

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/domain"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/kafka"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/reference"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/repository"
)

type BookingUseCase interface {
	CreateFlightBooking(ctx context.Context, input CreateFlightBookingInput) (*domain.Booking, error)
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
}

type Cache interface {
	InvalidateSearches(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	cache              Cache
	producer           Producer
	bookingsTopic      string
	notificationsTopic string
}

type ContactInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type CreateFlightBookingInput struct {
	FlightID         int64              `json:"flight_id"`
	Passengers       []domain.Passenger `json:"passengers"`
	ContactInfo      *ContactInfo       `json:"contact_info"`
	BaggageSelection map[string]int     `json:"baggage_selection"`
	Class            string             `json:"class"`
}

type CreateBookingInput struct {
	CustomerName   string         `json:"customer_name"`
	CustomerEmail  string         `json:"customer_email"`
	CustomerPhone  string         `json:"customer_phone"`
	ServiceType    string         `json:"service_type"`
	ServiceDetails map[string]any `json:"service_details"`
	BookingDate    string         `json:"booking_date"`
	NumberOfPeople int            `json:"number_of_people"`
	TotalPrice     *float64       `json:"total_price"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	bookingsTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:      bookings,
		flights:       flights,
		cache:         cache,
		producer:      producer,
		bookingsTopic: bookingsTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateFlightBooking validates the payload, prices the trip and persists
// the booking while reserving seats, all inside one store transaction.
func (s *BookingService) CreateFlightBooking(ctx context.Context, input CreateFlightBookingInput) (*domain.Booking, error) {
	if input.FlightID == 0 {
		return nil, domain.Validation("missing required field: flight_id")
	}
	if len(input.Passengers) == 0 {
		return nil, domain.Validation("missing required field: passengers")
	}
	if input.ContactInfo == nil || input.ContactInfo.FullName == "" || input.ContactInfo.Email == "" {
		return nil, domain.Validation("missing required field: contact_info")
	}
	if input.BaggageSelection == nil {
		return nil, domain.Validation("missing required field: baggage_selection")
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}

	passengers := len(input.Passengers)
	if flight.AvailableSeats < passengers {
		return nil, domain.ErrNotEnoughSeats
	}

	class := input.Class
	if class == "" {
		class = "economy"
	}

	basePrice := flight.Price * float64(passengers)
	baggagePrice := reference.BaggagePrice(input.BaggageSelection)

	booking := &domain.Booking{
		CustomerName:  input.ContactInfo.FullName,
		CustomerEmail: input.ContactInfo.Email,
		CustomerPhone: input.ContactInfo.Phone,
		ServiceType:   domain.ServiceTypeFlight,
		ServiceDetails: domain.FlightDetails(domain.FlightBookingDetails{
			Flight:           *flight,
			Passengers:       input.Passengers,
			BaggageSelection: input.BaggageSelection,
			BookingClass:     class,
		}),
		BookingDate:    flight.DepartureTime,
		NumberOfPeople: passengers,
		TotalPrice:     basePrice + baggagePrice,
		Status:         domain.BookingStatusConfirmed,
	}

	err = s.withFreshReference(booking, func() error {
		return s.bookings.CreateFlightBooking(ctx, booking, flight.ID, passengers)
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// Seat counts changed, cached search results are stale.
		if err := s.cache.InvalidateSearches(ctx); err != nil {
			log.Warn().Err(err).Msg("invalidate search cache")
		}
	}

	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

// CreateBooking persists a generic (non-flight) booking verbatim, with no
// pricing computation and no inventory effect.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.CustomerName == "" {
		return nil, domain.Validation("missing required field: customer_name")
	}
	if input.CustomerEmail == "" {
		return nil, domain.Validation("missing required field: customer_email")
	}
	if input.ServiceType == "" {
		return nil, domain.Validation("missing required field: service_type")
	}
	if input.BookingDate == "" {
		return nil, domain.Validation("missing required field: booking_date")
	}
	if input.TotalPrice == nil {
		return nil, domain.Validation("missing required field: total_price")
	}

	bookingDate, err := parseBookingDate(input.BookingDate)
	if err != nil {
		return nil, domain.Validation(fmt.Sprintf("invalid booking_date: %v", err))
	}

	people := input.NumberOfPeople
	if people == 0 {
		people = 1
	}

	booking := &domain.Booking{
		CustomerName:   input.CustomerName,
		CustomerEmail:  input.CustomerEmail,
		CustomerPhone:  input.CustomerPhone,
		ServiceType:    domain.ServiceType(input.ServiceType),
		ServiceDetails: domain.GenericDetails(input.ServiceDetails),
		BookingDate:    bookingDate,
		NumberOfPeople: people,
		TotalPrice:     *input.TotalPrice,
		Status:         domain.BookingStatusConfirmed,
	}

	err = s.withFreshReference(booking, func() error {
		return s.bookings.Create(ctx, booking)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookings.GetByReference(ctx, reference)
}

const (
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referenceLength   = 8
	maxReferenceTries = 5
)

// withFreshReference runs insert with a newly generated reference, retrying
// with another one when the store reports a uniqueness conflict.
func (s *BookingService) withFreshReference(booking *domain.Booking, insert func() error) error {
	for attempt := 0; attempt < maxReferenceTries; attempt++ {
		ref, err := newBookingReference()
		if err != nil {
			return err
		}
		booking.BookingReference = ref

		err = insert()
		if errors.Is(err, domain.ErrDuplicateReference) {
			continue
		}
		return err
	}
	return fmt.Errorf("generate booking reference: %w", domain.ErrDuplicateReference)
}

func newBookingReference() (string, error) {
	buf := make([]byte, referenceLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate booking reference: %w", err)
	}
	var b strings.Builder
	for _, c := range buf {
		b.WriteByte(referenceAlphabet[int(c)%len(referenceAlphabet)])
	}
	return b.String(), nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		ID:               uuid.NewString(),
		Type:             eventType,
		BookingReference: booking.BookingReference,
		CustomerName:     booking.CustomerName,
		CustomerEmail:    booking.CustomerEmail,
		ServiceType:      string(booking.ServiceType),
		NumberOfPeople:   booking.NumberOfPeople,
		TotalPrice:       booking.TotalPrice,
		CreatedAt:        booking.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.bookingsTopic, booking.BookingReference, event); err != nil {
		log.Warn().Err(err).Str("booking_reference", booking.BookingReference).Msg("publish booking event")
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.BookingReference, event); err != nil {
			log.Warn().Err(err).Str("booking_reference", booking.BookingReference).Msg("publish notification event")
		}
	}
}

func parseBookingDate(raw string) (time.Time, error) {
	// The frontend sends ISO timestamps, sometimes with a trailing Z and
	// sometimes without a zone at all.
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

var _ BookingUseCase = (*BookingService)(nil)
