package handler

import (
	"net/http"

	"airport-booking-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Airport  *AirportHandler
	Route    *RouteHandler
	Airplane *AirplaneHandler
	Crew     *CrewHandler
	Flight   *FlightHandler
	Order    *OrderHandler
	Payment  *PaymentHandler
	Auth     *AuthHandler
}

// NewRouter assembles the gin engine. Catalog reads are public, catalog
// writes require a staff token, and orders and payments require any valid
// token. Provider callbacks stay public.
func NewRouter(jwtSecret string, uploadDir string, h Handlers) *gin.Engine {
	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.Static("/uploads", uploadDir)

	public := r.Group("/api/v1")
	authed := r.Group("/api/v1", middleware.Auth(jwtSecret))
	admin := r.Group("/api/v1", middleware.Auth(jwtSecret), middleware.RequireAdmin())

	h.Airport.RegisterRoutes(public, admin)
	h.Route.RegisterRoutes(public, admin)
	h.Airplane.RegisterRoutes(public, admin)
	h.Crew.RegisterRoutes(public, admin)
	h.Flight.RegisterRoutes(public, admin)
	h.Order.RegisterRoutes(authed)
	h.Payment.RegisterRoutes(public, authed)
	h.Auth.RegisterRoutes(public, authed)

	return r
}
