package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/domain"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/reference"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/service/flights"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) Search(ctx context.Context, params domain.FlightSearch) ([]domain.Flight, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*flights.FlightDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flights.FlightDetails), args.Error(1)
}

func (m *MockFlightUseCase) BaggageOptions(ctx context.Context, flightID int64) ([]reference.BaggageOption, *domain.Flight, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]reference.BaggageOption), args.Get(1).(*domain.Flight), args.Error(2)
}

func (m *MockFlightUseCase) Populate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFlightUseCase) Airports() []reference.Airport {
	args := m.Called()
	return args.Get(0).([]reference.Airport)
}

func TestFlightHandler_search(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/flights/search?from=CMN&to=CDG&date=2026-09-15&passengers=2", nil)

	expected := domain.FlightSearch{
		From:       "CMN",
		To:         "CDG",
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Passengers: 2,
	}
	result := []domain.Flight{{ID: 1, DepartureAirport: "CMN", ArrivalAirport: "CDG", AvailableSeats: 12}}
	mockService.On("Search", c.Request.Context(), expected).Return(result, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success      bool            `json:"success"`
		Flights      []domain.Flight `json:"flights"`
		SearchParams struct {
			From       string `json:"from"`
			Passengers int    `json:"passengers"`
		} `json:"search_params"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Flights, 1)
	assert.Equal(t, "CMN", body.SearchParams.From)
	assert.Equal(t, 2, body.SearchParams.Passengers)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_search_missingParams(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/flights/search?from=CMN", nil)

	handler.search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
	mockService.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestFlightHandler_search_badDate(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/flights/search?from=CMN&to=CDG&date=15-09-2026", nil)

	handler.search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/api/flights/1", nil)

	details := &flights.FlightDetails{
		Flight:        domain.Flight{ID: 1, DepartureAirport: "CMN", ArrivalAirport: "CDG"},
		DepartureCity: "Casablanca",
		ArrivalCity:   "Paris",
	}
	mockService.On("GetByID", c.Request.Context(), int64(1)).Return(details, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Flight  struct {
			DepartureCity string `json:"departure_city"`
			ArrivalCity   string `json:"arrival_city"`
		} `json:"flight"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Casablanca", body.Flight.DepartureCity)
	assert.Equal(t, "Paris", body.Flight.ArrivalCity)
}

func TestFlightHandler_get_notFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	c.Request = httptest.NewRequest("GET", "/api/flights/99", nil)

	mockService.On("GetByID", c.Request.Context(), int64(99)).Return(nil, domain.ErrFlightNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "flight not found")
}

func TestFlightHandler_get_badID(t *testing.T) {
	handler := NewFlightHandler(&MockFlightUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	c.Request = httptest.NewRequest("GET", "/api/flights/abc", nil)

	handler.get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlightHandler_baggage(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	c.Request = httptest.NewRequest("GET", "/api/flights/3/baggage", nil)

	flight := &domain.Flight{ID: 3}
	mockService.On("BaggageOptions", c.Request.Context(), int64(3)).
		Return(reference.BaggageOptions(), flight, nil)

	handler.baggage(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success        bool                      `json:"success"`
		BaggageOptions []reference.BaggageOption `json:"baggage_options"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.BaggageOptions, 4)
}

func TestFlightHandler_populate(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/flights/populate", nil)

	mockService.On("Populate", c.Request.Context()).Return(nil)

	handler.populate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Sample flights populated successfully")
}

func TestFlightHandler_airports(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/airports", nil)

	mockService.On("Airports").Return(reference.Airports())

	handler.airports(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success  bool                `json:"success"`
		Airports []reference.Airport `json:"airports"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Airports, 8)
}
