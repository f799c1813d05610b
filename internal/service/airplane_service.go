package service

import (
	"context"
	"io"

	"airport-booking-api/internal/model"
	"airport-booking-api/internal/repository"
	"airport-booking-api/internal/storage"
	"airport-booking-api/pkg/logger"

	"go.uber.org/zap"
)

type AirplaneService interface {
	CreateAirplaneType(ctx context.Context, req *model.CreateAirplaneTypeRequest) (*model.AirplaneType, error)
	ListAirplaneTypes(ctx context.Context, page model.Page) (*model.Paginated, error)
	GetAirplaneType(ctx context.Context, id int) (*model.AirplaneType, error)

	CreateAirplane(ctx context.Context, req *model.CreateAirplaneRequest) (*model.Airplane, error)
	ListAirplanes(ctx context.Context, filter model.AirplaneFilter, page model.Page) (*model.Paginated, error)
	GetAirplane(ctx context.Context, id int) (*model.AirplaneListItem, error)
	UpdateAirplane(ctx context.Context, id int, params model.UpdateAirplaneParams) (*model.Airplane, error)
	UploadAirplaneImage(ctx context.Context, id int, filename string, ext string, src io.Reader) (string, error)
	DeleteAirplane(ctx context.Context, id int) error
}

type AirplaneServiceImpl struct {
	airplaneRepo repository.AirplaneRepository
	typeRepo     repository.AirplaneTypeRepository
	images       storage.ImageStore
	log          *zap.Logger
}

func NewAirplaneService(
	airplaneRepo repository.AirplaneRepository,
	typeRepo repository.AirplaneTypeRepository,
	images storage.ImageStore,
) AirplaneService {
	return &AirplaneServiceImpl{
		airplaneRepo: airplaneRepo,
		typeRepo:     typeRepo,
		images:       images,
		log:          logger.WithComponent("airplane_service"),
	}
}

func (s *AirplaneServiceImpl) CreateAirplaneType(ctx context.Context, req *model.CreateAirplaneTypeRequest) (*model.AirplaneType, error) {
	return s.typeRepo.Create(ctx, &model.AirplaneType{Name: req.Name})
}

func (s *AirplaneServiceImpl) ListAirplaneTypes(ctx context.Context, page model.Page) (*model.Paginated, error) {
	page = page.Normalize()

	types, err := s.typeRepo.List(ctx, page)
	if err != nil {
		return nil, err
	}

	count, err := s.typeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Paginated{Count: count, Results: types}, nil
}

func (s *AirplaneServiceImpl) GetAirplaneType(ctx context.Context, id int) (*model.AirplaneType, error) {
	return s.typeRepo.FindByID(ctx, id)
}

func (s *AirplaneServiceImpl) CreateAirplane(ctx context.Context, req *model.CreateAirplaneRequest) (*model.Airplane, error) {
	if _, err := s.typeRepo.FindByID(ctx, req.AirplaneTypeID); err != nil {
		return nil, err
	}

	airplane := &model.Airplane{
		Name:           req.Name,
		Rows:           req.Rows,
		SeatsInRow:     req.SeatsInRow,
		AirplaneTypeID: req.AirplaneTypeID,
	}
	return s.airplaneRepo.Create(ctx, airplane)
}

func (s *AirplaneServiceImpl) ListAirplanes(ctx context.Context, filter model.AirplaneFilter, page model.Page) (*model.Paginated, error) {
	page = page.Normalize()

	airplanes, err := s.airplaneRepo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	count, err := s.airplaneRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &model.Paginated{Count: count, Results: airplanes}, nil
}

func (s *AirplaneServiceImpl) GetAirplane(ctx context.Context, id int) (*model.AirplaneListItem, error) {
	return s.airplaneRepo.FindItemByID(ctx, id)
}

func (s *AirplaneServiceImpl) UpdateAirplane(ctx context.Context, id int, params model.UpdateAirplaneParams) (*model.Airplane, error) {
	if params.AirplaneTypeID != nil {
		if _, err := s.typeRepo.FindByID(ctx, *params.AirplaneTypeID); err != nil {
			return nil, err
		}
	}
	return s.airplaneRepo.Update(ctx, id, params)
}

// UploadAirplaneImage stores the uploaded file and records its URL on the
// airplane. The airplane is checked first so a missing id never leaves an
// orphaned file reference.
func (s *AirplaneServiceImpl) UploadAirplaneImage(ctx context.Context, id int, filename string, ext string, src io.Reader) (string, error) {
	airplane, err := s.airplaneRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	imageURL, err := s.images.Save(airplane.Name, ext, src)
	if err != nil {
		s.log.Error("failed to store airplane image",
			zap.Int("airplane_id", id),
			zap.String("filename", filename),
			zap.Error(err))
		return "", err
	}

	if err := s.airplaneRepo.UpdateImage(ctx, id, imageURL); err != nil {
		return "", err
	}

	return imageURL, nil
}

func (s *AirplaneServiceImpl) DeleteAirplane(ctx context.Context, id int) error {
	return s.airplaneRepo.Delete(ctx, id)
}
