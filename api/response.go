package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/domain"
)

// writeError maps service failures onto the API's error body. Bad input and
// capacity failures are the client's problem, missing entities are 404,
// anything else is the store's.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrFlightNotFound), errors.Is(err, domain.ErrBookingNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrNotEnoughSeats), domain.IsValidation(err):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
