package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/domain"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
	router.GET("/:id/baggage", h.baggage)
	router.POST("/populate", h.populate)
}

func (h *FlightHandler) RegisterAirports(router *gin.RouterGroup) {
	router.GET("/airports", h.airports)
}

func (h *FlightHandler) search(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	date := c.Query("date")
	if from == "" || to == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters: from, to, date"})
		return
	}

	searchDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	passengers := 1
	if raw := c.Query("passengers"); raw != "" {
		passengers, err = strconv.Atoi(raw)
		if err != nil || passengers < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid passengers count"})
			return
		}
	}

	result, err := h.service.Search(c.Request.Context(), domain.FlightSearch{
		From:       from,
		To:         to,
		Date:       searchDate,
		Passengers: passengers,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"flights": result,
		"search_params": gin.H{
			"from":       from,
			"to":         to,
			"date":       date,
			"passengers": passengers,
		},
	})
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}

	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "flight": flight})
}

func (h *FlightHandler) baggage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}

	options, flight, err := h.service.BaggageOptions(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"baggage_options": options,
		"flight":          flight,
	})
}

func (h *FlightHandler) populate(c *gin.Context) {
	if err := h.service.Populate(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Sample flights populated successfully",
	})
}

func (h *FlightHandler) airports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"airports": h.service.Airports(),
	})
}
