package handler

import (
	"errors"
	"net/http"

	"airport-booking-api/internal/model"
	"airport-booking-api/internal/service"
	apperrors "airport-booking-api/pkg/app_errors"
	"airport-booking-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service service.FlightService
}

func NewFlightHandler(service service.FlightService) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("flights", h.ListFlights)
	public.GET("flights/:id", h.GetFlight)
	admin.POST("flights", h.CreateFlight)
	admin.PATCH("flights/:id", h.UpdateFlight)
	admin.DELETE("flights/:id", h.DeleteFlight)
}

func (h *FlightHandler) CreateFlight(c *gin.Context) {
	var req model.CreateFlightRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	flight, err := h.service.CreateFlight(c, &req)
	if err != nil {
		h.handleFlightError(c, err, "CreateFlight")
		return
	}

	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) ListFlights(c *gin.Context) {
	var filter model.FlightFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}

	result, err := h.service.ListFlights(c, filter, BindPage(c))
	if err != nil {
		h.handleFlightError(c, err, "ListFlights")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) GetFlight(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	flight, err := h.service.GetFlight(c, id)
	if err != nil {
		h.handleFlightError(c, err, "GetFlight")
		return
	}

	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) UpdateFlight(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var params model.UpdateFlightParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	flight, err := h.service.UpdateFlight(c, id, params)
	if err != nil {
		h.handleFlightError(c, err, "UpdateFlight")
		return
	}

	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) DeleteFlight(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteFlight(c, id); err != nil {
		h.handleFlightError(c, err, "DeleteFlight")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) handleFlightError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrFlightNotFound):
		log.Warn("Flight not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Flight not found",
		})
	case errors.Is(err, apperrors.ErrRouteNotFound):
		log.Warn("Route not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
		})
	case errors.Is(err, apperrors.ErrAirplaneNotFound):
		log.Warn("Airplane not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Airplane not found",
		})
	case errors.Is(err, apperrors.ErrCrewNotFound):
		log.Warn("Crew not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Crew not found",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
