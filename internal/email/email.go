package email

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/kafka"
)

// Sender delivers booking confirmations. Delivery is log-backed; the real
// transport sits behind the notifications topic boundary.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Info().
		Str("to", event.CustomerEmail).
		Str("booking_reference", event.BookingReference).
		Str("event", event.Type).
		Float64("total_price", event.TotalPrice).
		Msg("send booking confirmation email")
	return nil
}
