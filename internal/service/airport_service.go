package service

import (
	"context"

	"airport-booking-api/internal/model"
	"airport-booking-api/internal/repository"
)

type AirportService interface {
	CreateAirport(ctx context.Context, req *model.CreateAirportRequest) (*model.Airport, error)
	ListAirports(ctx context.Context, filter model.AirportFilter, page model.Page) (*model.Paginated, error)
	GetAirport(ctx context.Context, id int) (*model.Airport, error)
}

type AirportServiceImpl struct {
	airportRepo repository.AirportRepository
}

func NewAirportService(airportRepo repository.AirportRepository) AirportService {
	return &AirportServiceImpl{airportRepo: airportRepo}
}

func (s *AirportServiceImpl) CreateAirport(ctx context.Context, req *model.CreateAirportRequest) (*model.Airport, error) {
	airport := &model.Airport{
		Name:           req.Name,
		ClosestBigCity: req.ClosestBigCity,
	}
	return s.airportRepo.Create(ctx, airport)
}

func (s *AirportServiceImpl) ListAirports(ctx context.Context, filter model.AirportFilter, page model.Page) (*model.Paginated, error) {
	page = page.Normalize()

	airports, err := s.airportRepo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	count, err := s.airportRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &model.Paginated{Count: count, Results: airports}, nil
}

func (s *AirportServiceImpl) GetAirport(ctx context.Context, id int) (*model.Airport, error) {
	return s.airportRepo.FindByID(ctx, id)
}
