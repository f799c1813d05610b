package service

import (
	"context"

	"airport-booking-api/internal/model"
	"airport-booking-api/internal/repository"
	apperrors "airport-booking-api/pkg/app_errors"
)

type CrewService interface {
	CreateCrew(ctx context.Context, req *model.CreateCrewRequest) (*model.Crew, error)
	ListCrews(ctx context.Context, filter model.CrewFilter, page model.Page) (*model.Paginated, error)
	GetCrew(ctx context.Context, id int) (*model.Crew, error)
	UpdateCrew(ctx context.Context, id int, params model.UpdateCrewParams) (*model.Crew, error)
	DeleteCrew(ctx context.Context, id int) error
}

type CrewServiceImpl struct {
	crewRepo repository.CrewRepository
}

func NewCrewService(crewRepo repository.CrewRepository) CrewService {
	return &CrewServiceImpl{crewRepo: crewRepo}
}

func (s *CrewServiceImpl) CreateCrew(ctx context.Context, req *model.CreateCrewRequest) (*model.Crew, error) {
	position := req.Position
	if position == "" {
		position = model.PositionUnknown
	}
	if !position.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	crew := &model.Crew{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Position:  position,
	}
	return s.crewRepo.Create(ctx, crew)
}

func (s *CrewServiceImpl) ListCrews(ctx context.Context, filter model.CrewFilter, page model.Page) (*model.Paginated, error) {
	page = page.Normalize()

	crews, err := s.crewRepo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	count, err := s.crewRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &model.Paginated{Count: count, Results: crews}, nil
}

func (s *CrewServiceImpl) GetCrew(ctx context.Context, id int) (*model.Crew, error) {
	return s.crewRepo.FindByID(ctx, id)
}

func (s *CrewServiceImpl) UpdateCrew(ctx context.Context, id int, params model.UpdateCrewParams) (*model.Crew, error) {
	if params.Position != nil && !params.Position.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}
	return s.crewRepo.Update(ctx, id, params)
}

func (s *CrewServiceImpl) DeleteCrew(ctx context.Context, id int) error {
	return s.crewRepo.Delete(ctx, id)
}
