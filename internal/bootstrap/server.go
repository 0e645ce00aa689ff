package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Asmaidbaba/projet-gestion-aeroport/api"
	"github.com/Asmaidbaba/projet-gestion-aeroport/config"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/service/booking"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/service/flights"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, flightSvc, bookingSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func NewRouter(cfg *config.Config, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger())

	if len(cfg.HTTP.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.HTTP.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	flightHandler := api.NewFlightHandler(flightSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)

	root := router.Group("/api")
	root.GET("/health", api.Health)
	flightHandler.RegisterAirports(root)

	flightsGroup := root.Group("/flights")
	flightHandler.Register(flightsGroup)
	bookingHandler.RegisterFlightBooking(flightsGroup)

	bookingHandler.Register(root.Group("/bookings"))

	return router
}
