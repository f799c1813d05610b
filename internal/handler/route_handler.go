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

type RouteHandler struct {
	service service.RouteService
}

func NewRouteHandler(service service.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("routes", h.ListRoutes)
	public.GET("routes/:id", h.GetRoute)
	admin.POST("routes", h.CreateRoute)
}

func (h *RouteHandler) CreateRoute(c *gin.Context) {
	var req model.CreateRouteRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	route, err := h.service.CreateRoute(c, &req)
	if err != nil {
		h.handleRouteError(c, err, "CreateRoute")
		return
	}

	c.JSON(http.StatusCreated, route)
}

func (h *RouteHandler) ListRoutes(c *gin.Context) {
	var filter model.RouteFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}

	result, err := h.service.ListRoutes(c, filter, BindPage(c))
	if err != nil {
		h.handleRouteError(c, err, "ListRoutes")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *RouteHandler) GetRoute(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	route, err := h.service.GetRoute(c, id)
	if err != nil {
		h.handleRouteError(c, err, "GetRoute")
		return
	}

	c.JSON(http.StatusOK, route)
}

func (h *RouteHandler) handleRouteError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrRouteNotFound):
		log.Warn("Route not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
		})
	case errors.Is(err, apperrors.ErrAirportNotFound):
		log.Warn("Airport not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Airport not found",
		})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Source and destination must differ")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Source and destination must differ",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
