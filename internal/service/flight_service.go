package service

import (
	"context"

	"airport-booking-api/internal/cache"
	"airport-booking-api/internal/model"
	"airport-booking-api/internal/repository"
	"airport-booking-api/pkg/logger"

	"go.uber.org/zap"
)

type FlightService interface {
	CreateFlight(ctx context.Context, req *model.CreateFlightRequest) (*model.Flight, error)
	ListFlights(ctx context.Context, filter model.FlightFilter, page model.Page) (*model.Paginated, error)
	GetFlight(ctx context.Context, id int) (*model.FlightDetail, error)
	UpdateFlight(ctx context.Context, id int, params model.UpdateFlightParams) (*model.Flight, error)
	DeleteFlight(ctx context.Context, id int) error
}

type FlightServiceImpl struct {
	flightRepo   repository.FlightRepository
	routeRepo    repository.RouteRepository
	airplaneRepo repository.AirplaneRepository
	crewRepo     repository.CrewRepository
	cache        cache.FlightCache
	log          *zap.Logger
}

// NewFlightService builds the flight service. flightCache may be nil, in
// which case every list goes straight to the database.
func NewFlightService(
	flightRepo repository.FlightRepository,
	routeRepo repository.RouteRepository,
	airplaneRepo repository.AirplaneRepository,
	crewRepo repository.CrewRepository,
	flightCache cache.FlightCache,
) FlightService {
	return &FlightServiceImpl{
		flightRepo:   flightRepo,
		routeRepo:    routeRepo,
		airplaneRepo: airplaneRepo,
		crewRepo:     crewRepo,
		cache:        flightCache,
		log:          logger.WithComponent("flight_service"),
	}
}

func (s *FlightServiceImpl) CreateFlight(ctx context.Context, req *model.CreateFlightRequest) (*model.Flight, error) {
	if _, err := s.routeRepo.FindByID(ctx, req.RouteID); err != nil {
		return nil, err
	}
	if _, err := s.airplaneRepo.FindByID(ctx, req.AirplaneID); err != nil {
		return nil, err
	}
	for _, crewID := range req.CrewIDs {
		if _, err := s.crewRepo.FindByID(ctx, crewID); err != nil {
			return nil, err
		}
	}

	flight := &model.Flight{
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		CrewIDs:       req.CrewIDs,
	}

	created, err := s.flightRepo.Create(ctx, flight)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return created, nil
}

func (s *FlightServiceImpl) ListFlights(ctx context.Context, filter model.FlightFilter, page model.Page) (*model.Paginated, error) {
	page = page.Normalize()

	// Only the unfiltered first page is hot enough to cache.
	cacheable := s.cache != nil &&
		filter == (model.FlightFilter{}) &&
		page.Page == 1 && page.PageSize == model.DefaultPageSize

	if cacheable {
		flights, count, err := s.cache.GetFlights(ctx)
		if err != nil {
			s.log.Warn("flight cache read failed", zap.Error(err))
		} else if flights != nil {
			return &model.Paginated{Count: count, Results: flights}, nil
		}
	}

	flights, err := s.flightRepo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	count, err := s.flightRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.SetFlights(ctx, flights, count); err != nil {
			s.log.Warn("flight cache write failed", zap.Error(err))
		}
	}

	return &model.Paginated{Count: count, Results: flights}, nil
}

func (s *FlightServiceImpl) GetFlight(ctx context.Context, id int) (*model.FlightDetail, error) {
	return s.flightRepo.FindDetail(ctx, id)
}

func (s *FlightServiceImpl) UpdateFlight(ctx context.Context, id int, params model.UpdateFlightParams) (*model.Flight, error) {
	if params.RouteID != nil {
		if _, err := s.routeRepo.FindByID(ctx, *params.RouteID); err != nil {
			return nil, err
		}
	}
	if params.AirplaneID != nil {
		if _, err := s.airplaneRepo.FindByID(ctx, *params.AirplaneID); err != nil {
			return nil, err
		}
	}
	for _, crewID := range params.CrewIDs {
		if _, err := s.crewRepo.FindByID(ctx, crewID); err != nil {
			return nil, err
		}
	}

	flight, err := s.flightRepo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return flight, nil
}

func (s *FlightServiceImpl) DeleteFlight(ctx context.Context, id int) error {
	if err := s.flightRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *FlightServiceImpl) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("flight cache invalidation failed", zap.Error(err))
	}
}
