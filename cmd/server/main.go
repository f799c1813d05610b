package main

import (
	"log"
	"time"

	"airport-booking-api/config"
	"airport-booking-api/internal/cache"
	"airport-booking-api/internal/checkout"
	"airport-booking-api/internal/database"
	"airport-booking-api/internal/events"
	"airport-booking-api/internal/handler"
	"airport-booking-api/internal/repository"
	"airport-booking-api/internal/service"
	"airport-booking-api/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	var flightCache cache.FlightCache
	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to initialize redis: %v", err)
		}
		defer rdb.Close()
		flightCache = cache.NewRedisFlightCache(rdb, time.Minute)
	}

	var producer events.Producer
	if cfg.Kafka.Enabled {
		kafkaProducer := events.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaProducer.Close()
		producer = kafkaProducer
	}

	images, err := storage.NewLocalImageStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize image store: %v", err)
	}

	checkoutClient := checkout.NewHTTPClient(cfg.Checkout.BaseURL, cfg.Checkout.APIKey)

	airportRepo := repository.NewAirportRepository(pool)
	routeRepo := repository.NewRouteRepository(pool)
	typeRepo := repository.NewAirplaneTypeRepository(pool)
	airplaneRepo := repository.NewAirplaneRepository(pool)
	crewRepo := repository.NewCrewRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	airportService := service.NewAirportService(airportRepo)
	routeService := service.NewRouteService(routeRepo, airportRepo)
	airplaneService := service.NewAirplaneService(airplaneRepo, typeRepo, images)
	crewService := service.NewCrewService(crewRepo)
	flightService := service.NewFlightService(flightRepo, routeRepo, airplaneRepo, crewRepo, flightCache)
	orderService := service.NewOrderService(orderRepo, flightRepo, airplaneRepo, paymentRepo, flightCache, producer)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, checkoutClient, producer, cfg.Server.BaseURL)
	authService := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.AccessTTLHours)*time.Hour)

	router := handler.NewRouter(cfg.Auth.JWTSecret, cfg.Upload.Dir, handler.Handlers{
		Airport:  handler.NewAirportHandler(airportService),
		Route:    handler.NewRouteHandler(routeService),
		Airplane: handler.NewAirplaneHandler(airplaneService),
		Crew:     handler.NewCrewHandler(crewService),
		Flight:   handler.NewFlightHandler(flightService),
		Order:    handler.NewOrderHandler(orderService),
		Payment:  handler.NewPaymentHandler(paymentService),
		Auth:     handler.NewAuthHandler(authService),
	})

	if err := router.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
