package service

import (
	"context"
	"testing"

	"airport-booking-api/internal/model"
	apperrors "airport-booking-api/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCrew(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a valid position", func(t *testing.T) {
		crewRepo := new(MockCrewRepository)
		crewRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Crew) bool {
			return c.Position == model.PositionCaptain
		})).Return(&model.Crew{ID: 1, FirstName: "Amelia", LastName: "Earhart", Position: model.PositionCaptain}, nil)

		svc := NewCrewService(crewRepo)
		crew, err := svc.CreateCrew(ctx, &model.CreateCrewRequest{
			FirstName: "Amelia", LastName: "Earhart", Position: model.PositionCaptain,
		})

		require.NoError(t, err)
		assert.Equal(t, "Amelia Earhart", crew.FullName())
	})

	t.Run("empty position defaults to unknown", func(t *testing.T) {
		crewRepo := new(MockCrewRepository)
		crewRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Crew) bool {
			return c.Position == model.PositionUnknown
		})).Return(&model.Crew{ID: 2, Position: model.PositionUnknown}, nil)

		svc := NewCrewService(crewRepo)
		_, err := svc.CreateCrew(ctx, &model.CreateCrewRequest{FirstName: "A", LastName: "B"})

		require.NoError(t, err)
		crewRepo.AssertExpectations(t)
	})

	t.Run("invalid position rejected", func(t *testing.T) {
		crewRepo := new(MockCrewRepository)

		svc := NewCrewService(crewRepo)
		_, err := svc.CreateCrew(ctx, &model.CreateCrewRequest{
			FirstName: "A", LastName: "B", Position: "Astronaut",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		crewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateCrew(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid position rejected before hitting storage", func(t *testing.T) {
		crewRepo := new(MockCrewRepository)
		bad := model.CrewPosition("Astronaut")

		svc := NewCrewService(crewRepo)
		_, err := svc.UpdateCrew(ctx, 1, model.UpdateCrewParams{Position: &bad})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		crewRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}
