package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"airport-booking-api/internal/middleware"
	"airport-booking-api/internal/model"
	apperrors "airport-booking-api/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, userID int, req *model.CreateOrderRequest) (*model.OrderResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, userID int, page model.Page) (*model.Paginated, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Paginated), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, userID int, orderID int) (*model.OrderResponse, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

// fakeAuth stands in for the JWT middleware and injects a fixed identity.
func fakeAuth(userID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}

func setupOrderRouter(svc *MockOrderService, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := r.Group("/api/v1", fakeAuth(userID))
	NewOrderHandler(svc).RegisterRoutes(authed)
	return r
}

func TestCreateOrderHandler(t *testing.T) {
	t.Run("returns 201 with the created order", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("CreateOrder", mock.Anything, 7, mock.AnythingOfType("*model.CreateOrderRequest")).
			Return(&model.OrderResponse{ID: 10, TotalCost: 120}, nil)

		router := setupOrderRouter(svc, 7)
		body := `{"tickets":[{"flight":1,"row":3,"seat":4,"price":120}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp model.OrderResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 10, resp.ID)
	})

	t.Run("returns 409 when the seat is taken", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("CreateOrder", mock.Anything, 7, mock.Anything).Return(nil, apperrors.ErrSeatTaken)

		router := setupOrderRouter(svc, 7)
		body := `{"tickets":[{"flight":1,"row":3,"seat":4,"price":120}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("returns 400 for a seat outside the grid", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("CreateOrder", mock.Anything, 7, mock.Anything).
			Return(nil, &apperrors.SeatError{Field: "row", Value: 31, Max: 30})

		router := setupOrderRouter(svc, 7)
		body := `{"tickets":[{"flight":1,"row":31,"seat":1,"price":120}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "row 31 is out of range")
	})

	t.Run("returns 400 for an empty ticket list", func(t *testing.T) {
		svc := new(MockOrderService)

		router := setupOrderRouter(svc, 7)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{"tickets":[]}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetOrderHandler(t *testing.T) {
	t.Run("returns 404 for a foreign order", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("GetOrder", mock.Anything, 7, 10).Return(nil, apperrors.ErrOrderNotFound)

		router := setupOrderRouter(svc, 7)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 400 for a malformed id", func(t *testing.T) {
		svc := new(MockOrderService)

		router := setupOrderRouter(svc, 7)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
