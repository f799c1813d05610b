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

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(service service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// RegisterRoutes wires payment endpoints. The success and cancelled
// callbacks are public because the checkout provider redirects the customer
// there without our auth token.
func (h *PaymentHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	authed.GET("payments", h.ListPayments)
	authed.GET("payments/:id", h.GetPayment)
	authed.POST("payments", h.CreatePayment)
	authed.POST("payments/:id/create-session", h.CreateSession)

	public.GET("payments/success/", h.Success)
	public.GET("payments/cancelled/", h.Cancelled)
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req model.CreatePaymentRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	payment, err := h.service.CreatePayment(c, middleware.UserID(c), &req)
	if err != nil {
		h.handlePaymentError(c, err, "CreatePayment")
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	result, err := h.service.ListPayments(c, middleware.UserID(c), BindPage(c))
	if err != nil {
		h.handlePaymentError(c, err, "ListPayments")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	payment, err := h.service.GetPayment(c, middleware.UserID(c), id)
	if err != nil {
		h.handlePaymentError(c, err, "GetPayment")
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) CreateSession(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	payment, err := h.service.CreateSession(c, middleware.UserID(c), id)
	if err != nil {
		h.handlePaymentError(c, err, "CreateSession")
		return
	}

	c.Redirect(http.StatusSeeOther, payment.SessionURL)
}

func (h *PaymentHandler) Success(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing session_id",
		})
		return
	}

	payment, err := h.service.HandleSuccess(c, sessionID)
	if err != nil {
		h.handlePaymentError(c, err, "Success")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment completed",
		"payment": payment,
	})
}

// Cancelled sends the customer back to the still-open checkout session so
// the payment can be retried within its validity window.
func (h *PaymentHandler) Cancelled(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing session_id",
		})
		return
	}

	payment, err := h.service.HandleCancel(c, sessionID)
	if err != nil {
		h.handlePaymentError(c, err, "Cancelled")
		return
	}

	c.Redirect(http.StatusSeeOther, payment.SessionURL)
}

func (h *PaymentHandler) handlePaymentError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrPaymentNotFound):
		log.Warn("Payment not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Payment not found",
		})
	case errors.Is(err, apperrors.ErrOrderNotFound):
		log.Warn("Order not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
	case errors.Is(err, apperrors.ErrSessionNotFound):
		log.Warn("Session not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Session not found",
		})
	case errors.Is(err, apperrors.ErrPaymentAlreadyPaid):
		log.Warn("Payment already paid")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Payment already paid",
		})
	case errors.Is(err, apperrors.ErrPaymentNotPending):
		log.Warn("Payment not pending")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Payment is not pending",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
