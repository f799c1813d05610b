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

type AirportHandler struct {
	service service.AirportService
}

func NewAirportHandler(service service.AirportService) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("airports", h.ListAirports)
	public.GET("airports/:id", h.GetAirport)
	admin.POST("airports", h.CreateAirport)
}

func (h *AirportHandler) CreateAirport(c *gin.Context) {
	var req model.CreateAirportRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	airport, err := h.service.CreateAirport(c, &req)
	if err != nil {
		h.handleAirportError(c, err, "CreateAirport")
		return
	}

	c.JSON(http.StatusCreated, airport)
}

func (h *AirportHandler) ListAirports(c *gin.Context) {
	var filter model.AirportFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}

	result, err := h.service.ListAirports(c, filter, BindPage(c))
	if err != nil {
		h.handleAirportError(c, err, "ListAirports")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AirportHandler) GetAirport(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	airport, err := h.service.GetAirport(c, id)
	if err != nil {
		h.handleAirportError(c, err, "GetAirport")
		return
	}

	c.JSON(http.StatusOK, airport)
}

func (h *AirportHandler) handleAirportError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrAirportNotFound):
		log.Warn("Airport not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Airport not found",
		})
	case errors.Is(err, apperrors.ErrDuplicateAirport):
		log.Warn("Airport already exists")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Airport already exists",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
