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

type CrewHandler struct {
	service service.CrewService
}

func NewCrewHandler(service service.CrewService) *CrewHandler {
	return &CrewHandler{service: service}
}

func (h *CrewHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("crews", h.ListCrews)
	public.GET("crews/:id", h.GetCrew)
	admin.POST("crews", h.CreateCrew)
	admin.PATCH("crews/:id", h.UpdateCrew)
	admin.DELETE("crews/:id", h.DeleteCrew)
}

func (h *CrewHandler) CreateCrew(c *gin.Context) {
	var req model.CreateCrewRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	crew, err := h.service.CreateCrew(c, &req)
	if err != nil {
		h.handleCrewError(c, err, "CreateCrew")
		return
	}

	c.JSON(http.StatusCreated, crew)
}

func (h *CrewHandler) ListCrews(c *gin.Context) {
	var filter model.CrewFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}

	result, err := h.service.ListCrews(c, filter, BindPage(c))
	if err != nil {
		h.handleCrewError(c, err, "ListCrews")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CrewHandler) GetCrew(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	crew, err := h.service.GetCrew(c, id)
	if err != nil {
		h.handleCrewError(c, err, "GetCrew")
		return
	}

	c.JSON(http.StatusOK, crew)
}

func (h *CrewHandler) UpdateCrew(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var params model.UpdateCrewParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	crew, err := h.service.UpdateCrew(c, id, params)
	if err != nil {
		h.handleCrewError(c, err, "UpdateCrew")
		return
	}

	c.JSON(http.StatusOK, crew)
}

func (h *CrewHandler) DeleteCrew(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCrew(c, id); err != nil {
		h.handleCrewError(c, err, "DeleteCrew")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CrewHandler) handleCrewError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrCrewNotFound):
		log.Warn("Crew not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Crew not found",
		})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid crew position")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid crew position",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
