package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"airport-booking-api/internal/model"
	"airport-booking-api/internal/service"
	apperrors "airport-booking-api/pkg/app_errors"
	"airport-booking-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxImageSize bounds airplane image uploads to 5 MiB.
const maxImageSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type AirplaneHandler struct {
	service service.AirplaneService
}

func NewAirplaneHandler(service service.AirplaneService) *AirplaneHandler {
	return &AirplaneHandler{service: service}
}

func (h *AirplaneHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("airplane-types", h.ListAirplaneTypes)
	public.GET("airplane-types/:id", h.GetAirplaneType)
	admin.POST("airplane-types", h.CreateAirplaneType)

	public.GET("airplanes", h.ListAirplanes)
	public.GET("airplanes/:id", h.GetAirplane)
	admin.POST("airplanes", h.CreateAirplane)
	admin.PATCH("airplanes/:id", h.UpdateAirplane)
	admin.DELETE("airplanes/:id", h.DeleteAirplane)
	admin.POST("airplanes/:id/upload-image", h.UploadImage)
}

func (h *AirplaneHandler) CreateAirplaneType(c *gin.Context) {
	var req model.CreateAirplaneTypeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	airplaneType, err := h.service.CreateAirplaneType(c, &req)
	if err != nil {
		h.handleAirplaneError(c, err, "CreateAirplaneType")
		return
	}

	c.JSON(http.StatusCreated, airplaneType)
}

func (h *AirplaneHandler) ListAirplaneTypes(c *gin.Context) {
	result, err := h.service.ListAirplaneTypes(c, BindPage(c))
	if err != nil {
		h.handleAirplaneError(c, err, "ListAirplaneTypes")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AirplaneHandler) GetAirplaneType(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	airplaneType, err := h.service.GetAirplaneType(c, id)
	if err != nil {
		h.handleAirplaneError(c, err, "GetAirplaneType")
		return
	}

	c.JSON(http.StatusOK, airplaneType)
}

func (h *AirplaneHandler) CreateAirplane(c *gin.Context) {
	var req model.CreateAirplaneRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	airplane, err := h.service.CreateAirplane(c, &req)
	if err != nil {
		h.handleAirplaneError(c, err, "CreateAirplane")
		return
	}

	c.JSON(http.StatusCreated, airplane)
}

func (h *AirplaneHandler) ListAirplanes(c *gin.Context) {
	var filter model.AirplaneFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}

	result, err := h.service.ListAirplanes(c, filter, BindPage(c))
	if err != nil {
		h.handleAirplaneError(c, err, "ListAirplanes")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AirplaneHandler) GetAirplane(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	airplane, err := h.service.GetAirplane(c, id)
	if err != nil {
		h.handleAirplaneError(c, err, "GetAirplane")
		return
	}

	c.JSON(http.StatusOK, airplane)
}

func (h *AirplaneHandler) UpdateAirplane(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var params model.UpdateAirplaneParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	airplane, err := h.service.UpdateAirplane(c, id, params)
	if err != nil {
		h.handleAirplaneError(c, err, "UpdateAirplane")
		return
	}

	c.JSON(http.StatusOK, airplane)
}

func (h *AirplaneHandler) DeleteAirplane(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAirplane(c, id); err != nil {
		h.handleAirplaneError(c, err, "DeleteAirplane")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AirplaneHandler) UploadImage(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing image file",
		})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Image too large",
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unsupported image format",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.handleAirplaneError(c, err, "UploadImage")
		return
	}
	defer file.Close()

	imageURL, err := h.service.UploadAirplaneImage(c, id, fileHeader.Filename, ext, file)
	if err != nil {
		h.handleAirplaneError(c, err, "UploadImage")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": imageURL})
}

func (h *AirplaneHandler) handleAirplaneError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrAirplaneNotFound):
		log.Warn("Airplane not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Airplane not found",
		})
	case errors.Is(err, apperrors.ErrAirplaneTypeNotFound):
		log.Warn("Airplane type not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Airplane type not found",
		})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
