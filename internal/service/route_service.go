package service

import (
	"context"

	"airport-booking-api/internal/model"
	"airport-booking-api/internal/repository"
	apperrors "airport-booking-api/pkg/app_errors"
)

type RouteService interface {
	CreateRoute(ctx context.Context, req *model.CreateRouteRequest) (*model.Route, error)
	ListRoutes(ctx context.Context, filter model.RouteFilter, page model.Page) (*model.Paginated, error)
	GetRoute(ctx context.Context, id int) (*model.RouteListItem, error)
}

type RouteServiceImpl struct {
	routeRepo   repository.RouteRepository
	airportRepo repository.AirportRepository
}

func NewRouteService(routeRepo repository.RouteRepository, airportRepo repository.AirportRepository) RouteService {
	return &RouteServiceImpl{routeRepo: routeRepo, airportRepo: airportRepo}
}

func (s *RouteServiceImpl) CreateRoute(ctx context.Context, req *model.CreateRouteRequest) (*model.Route, error) {
	if req.SourceID == req.DestinationID {
		return nil, apperrors.ErrInvalidInput
	}

	// Both endpoints must exist before the route row is written.
	if _, err := s.airportRepo.FindByID(ctx, req.SourceID); err != nil {
		return nil, err
	}
	if _, err := s.airportRepo.FindByID(ctx, req.DestinationID); err != nil {
		return nil, err
	}

	route := &model.Route{
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		Distance:      req.Distance,
	}
	return s.routeRepo.Create(ctx, route)
}

func (s *RouteServiceImpl) ListRoutes(ctx context.Context, filter model.RouteFilter, page model.Page) (*model.Paginated, error) {
	page = page.Normalize()

	routes, err := s.routeRepo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	count, err := s.routeRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &model.Paginated{Count: count, Results: routes}, nil
}

func (s *RouteServiceImpl) GetRoute(ctx context.Context, id int) (*model.RouteListItem, error) {
	route, err := s.routeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	source, err := s.airportRepo.FindByID(ctx, route.SourceID)
	if err != nil {
		return nil, err
	}
	destination, err := s.airportRepo.FindByID(ctx, route.DestinationID)
	if err != nil {
		return nil, err
	}

	return &model.RouteListItem{
		ID:          route.ID,
		Source:      *source,
		Destination: *destination,
		Distance:    route.Distance,
	}, nil
}
