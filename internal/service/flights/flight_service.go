package flights

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/domain"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/reference"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/repository"
)

type FlightUseCase interface {
	Search(ctx context.Context, params domain.FlightSearch) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*FlightDetails, error)
	BaggageOptions(ctx context.Context, flightID int64) ([]reference.BaggageOption, *domain.Flight, error)
	Populate(ctx context.Context) error
	Airports() []reference.Airport
}

type Cache interface {
	GetSearchResults(ctx context.Context, params domain.FlightSearch) ([]domain.Flight, error)
	SetSearchResults(ctx context.Context, params domain.FlightSearch, flights []domain.Flight) error
	InvalidateSearches(ctx context.Context) error
}

// FlightDetails is a flight enriched with the human-readable city names of
// its endpoints.
type FlightDetails struct {
	domain.Flight
	DepartureCity string `json:"departure_city"`
	ArrivalCity   string `json:"arrival_city"`
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) Search(ctx context.Context, params domain.FlightSearch) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSearchResults(ctx, params); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetSearchResults(ctx, params, flights); err != nil {
			log.Warn().Err(err).Msg("cache search results")
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*FlightDetails, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &FlightDetails{
		Flight:        *flight,
		DepartureCity: reference.CityFor(flight.DepartureAirport),
		ArrivalCity:   reference.CityFor(flight.ArrivalAirport),
	}, nil
}

func (s *FlightService) BaggageOptions(ctx context.Context, flightID int64) ([]reference.BaggageOption, *domain.Flight, error) {
	flight, err := s.repo.GetByID(ctx, flightID)
	if err != nil {
		return nil, nil, err
	}
	return reference.BaggageOptions(), flight, nil
}

// Populate reseeds the flights table with a fresh synthetic batch, replacing
// everything already there, and drops stale cached searches.
func (s *FlightService) Populate(ctx context.Context) error {
	if err := s.repo.ReplaceAll(ctx, sampleFlights(sampleFlightCount)); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateSearches(ctx); err != nil {
			log.Warn().Err(err).Msg("invalidate search cache")
		}
	}
	return nil
}

func (s *FlightService) Airports() []reference.Airport {
	return reference.Airports()
}

var _ FlightUseCase = (*FlightService)(nil)
