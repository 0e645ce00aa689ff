package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceDetailsRoundTrip_Flight(t *testing.T) {
	details := FlightDetails(FlightBookingDetails{
		Flight:           Flight{ID: 1, FlightNumber: "AT533", Price: 1000},
		Passengers:       []Passenger{{FirstName: "Amina", LastName: "Idrissi"}},
		BaggageSelection: map[string]int{"checked_baggage_23kg": 1},
		BookingClass:     "economy",
	})

	raw, err := json.Marshal(details)
	require.NoError(t, err)

	decoded := DecodeServiceDetails(ServiceTypeFlight, raw)
	require.NotNil(t, decoded.Flight)
	assert.Equal(t, "AT533", decoded.Flight.Flight.FlightNumber)
	assert.Equal(t, map[string]int{"checked_baggage_23kg": 1}, decoded.Flight.BaggageSelection)
	assert.Equal(t, "economy", decoded.Flight.BookingClass)
	assert.Equal(t, "Amina", decoded.Flight.Passengers[0].FirstName)
}

func TestServiceDetailsRoundTrip_Generic(t *testing.T) {
	details := GenericDetails(map[string]any{"hotel_name": "Atlas Palace"})

	raw, err := json.Marshal(details)
	require.NoError(t, err)

	decoded := DecodeServiceDetails("hotel", raw)
	assert.Nil(t, decoded.Flight)
	require.NotNil(t, decoded.Generic)
	assert.Equal(t, "Atlas Palace", decoded.Generic["hotel_name"])
}

func TestDecodeServiceDetails_Empty(t *testing.T) {
	decoded := DecodeServiceDetails("hotel", nil)
	assert.Nil(t, decoded.Flight)
	assert.NotNil(t, decoded.Generic)
	assert.Empty(t, decoded.Generic)
}

func TestDecodeServiceDetails_Garbage(t *testing.T) {
	decoded := DecodeServiceDetails(ServiceTypeFlight, []byte("not json"))
	assert.Nil(t, decoded.Flight)
	assert.NotNil(t, decoded.Generic)
}

func TestMarshalEmptyDetails(t *testing.T) {
	raw, err := json.Marshal(ServiceDetails{})
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(raw))
}

func TestValidationError(t *testing.T) {
	err := Validation("missing required field: flight_id")
	assert.True(t, IsValidation(err))
	assert.Equal(t, "missing required field: flight_id", err.Error())
	assert.False(t, IsValidation(errors.New("boom")))
	assert.False(t, IsValidation(ErrNotEnoughSeats))
}
