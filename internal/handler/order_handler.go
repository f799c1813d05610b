package handler

import (
	"errors"
	"net/http"

	"airport-booking-api/internal/middleware"
	"airport-booking-api/internal/model"
	"airport-booking-api/internal/service"
	apperrors "airport-booking-api/pkg/app_errors"
	"airport-booking-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(service service.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) RegisterRoutes(authed *gin.RouterGroup) {
	authed.GET("orders", h.ListOrders)
	authed.GET("orders/:id", h.GetOrder)
	authed.POST("orders", h.CreateOrder)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	order, err := h.service.CreateOrder(c, middleware.UserID(c), &req)
	if err != nil {
		h.handleOrderError(c, err, "CreateOrder")
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	result, err := h.service.ListOrders(c, middleware.UserID(c), BindPage(c))
	if err != nil {
		h.handleOrderError(c, err, "ListOrders")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	order, err := h.service.GetOrder(c, middleware.UserID(c), id)
	if err != nil {
		h.handleOrderError(c, err, "GetOrder")
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) handleOrderError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var seatErr *apperrors.SeatError
	switch {
	case errors.As(err, &seatErr):
		log.Warn("Seat out of range")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": seatErr.Error(),
		})
	case errors.Is(err, apperrors.ErrSeatTaken):
		log.Warn("Seat already taken")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Seat already taken",
		})
	case errors.Is(err, apperrors.ErrEmptyTickets):
		log.Warn("Order has no tickets")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Order must contain at least one ticket",
		})
	case errors.Is(err, apperrors.ErrFlightNotFound):
		log.Warn("Flight not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Flight not found",
		})
	case errors.Is(err, apperrors.ErrOrderNotFound):
		log.Warn("Order not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
