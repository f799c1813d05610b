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

type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) Create(ctx context.Context, route *model.Route) (*model.Route, error) {
	args := m.Called(ctx, route)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Route), args.Error(1)
}

func (m *MockRouteRepository) List(ctx context.Context, filter model.RouteFilter, page model.Page) ([]*model.RouteListItem, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.RouteListItem), args.Error(1)
}

func (m *MockRouteRepository) Count(ctx context.Context, filter model.RouteFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRouteRepository) FindByID(ctx context.Context, id int) (*model.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Route), args.Error(1)
}

type MockCrewRepository struct {
	mock.Mock
}

func (m *MockCrewRepository) Create(ctx context.Context, crew *model.Crew) (*model.Crew, error) {
	args := m.Called(ctx, crew)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Crew), args.Error(1)
}

func (m *MockCrewRepository) List(ctx context.Context, filter model.CrewFilter, page model.Page) ([]*model.CrewListItem, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CrewListItem), args.Error(1)
}

func (m *MockCrewRepository) Count(ctx context.Context, filter model.CrewFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCrewRepository) FindByID(ctx context.Context, id int) (*model.Crew, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Crew), args.Error(1)
}

func (m *MockCrewRepository) Update(ctx context.Context, id int, params model.UpdateCrewParams) (*model.Crew, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Crew), args.Error(1)
}

func (m *MockCrewRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestListFlights(t *testing.T) {
	ctx := context.Background()
	summaries := []*model.FlightSummary{
		{ID: 1, AirplaneName: "Dreamliner", Route: "JFK - LHR", AirplaneCapacity: 180, TicketsAvailable: 175},
	}
	defaultPage := model.Page{Page: 1, PageSize: model.DefaultPageSize}

	t.Run("serves the unfiltered first page from cache", func(t *testing.T) {
		flightRepo := new(MockFlightRepository)
		flightCache := new(MockFlightCache)

		flightCache.On("GetFlights", ctx).Return(summaries, int64(1), nil)

		svc := NewFlightService(flightRepo, new(MockRouteRepository), new(MockAirplaneRepository), new(MockCrewRepository), flightCache)
		result, err := svc.ListFlights(ctx, model.FlightFilter{}, defaultPage)

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Count)
		flightRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache miss falls through and fills the cache", func(t *testing.T) {
		flightRepo := new(MockFlightRepository)
		flightCache := new(MockFlightCache)

		flightCache.On("GetFlights", ctx).Return(nil, int64(0), nil)
		flightRepo.On("List", ctx, model.FlightFilter{}, defaultPage).Return(summaries, nil)
		flightRepo.On("Count", ctx, model.FlightFilter{}).Return(int64(1), nil)
		flightCache.On("SetFlights", ctx, summaries, int64(1)).Return(nil)

		svc := NewFlightService(flightRepo, new(MockRouteRepository), new(MockAirplaneRepository), new(MockCrewRepository), flightCache)
		result, err := svc.ListFlights(ctx, model.FlightFilter{}, defaultPage)

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Count)
		flightCache.AssertExpectations(t)
	})

	t.Run("filtered queries bypass the cache", func(t *testing.T) {
		flightRepo := new(MockFlightRepository)
		flightCache := new(MockFlightCache)
		filter := model.FlightFilter{RouteSource: "JFK"}

		flightRepo.On("List", ctx, filter, defaultPage).Return(summaries, nil)
		flightRepo.On("Count", ctx, filter).Return(int64(1), nil)

		svc := NewFlightService(flightRepo, new(MockRouteRepository), new(MockAirplaneRepository), new(MockCrewRepository), flightCache)
		_, err := svc.ListFlights(ctx, filter, defaultPage)

		require.NoError(t, err)
		flightCache.AssertNotCalled(t, "GetFlights", mock.Anything)
		flightCache.AssertNotCalled(t, "SetFlights", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("works without a cache", func(t *testing.T) {
		flightRepo := new(MockFlightRepository)

		flightRepo.On("List", ctx, model.FlightFilter{}, defaultPage).Return(summaries, nil)
		flightRepo.On("Count", ctx, model.FlightFilter{}).Return(int64(1), nil)

		svc := NewFlightService(flightRepo, new(MockRouteRepository), new(MockAirplaneRepository), new(MockCrewRepository), nil)
		result, err := svc.ListFlights(ctx, model.FlightFilter{}, defaultPage)

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Count)
	})
}

func TestCreateFlight(t *testing.T) {
	ctx := context.Background()

	t.Run("validates references and invalidates cache", func(t *testing.T) {
		flightRepo := new(MockFlightRepository)
		routeRepo := new(MockRouteRepository)
		airplaneRepo := new(MockAirplaneRepository)
		crewRepo := new(MockCrewRepository)
		flightCache := new(MockFlightCache)

		routeRepo.On("FindByID", ctx, 2).Return(&model.Route{ID: 2}, nil)
		airplaneRepo.On("FindByID", ctx, 5).Return(&model.Airplane{ID: 5}, nil)
		crewRepo.On("FindByID", ctx, 9).Return(&model.Crew{ID: 9}, nil)
		flightRepo.On("Create", ctx, mock.AnythingOfType("*model.Flight")).Return(&model.Flight{ID: 1, RouteID: 2, AirplaneID: 5, CrewIDs: []int{9}}, nil)
		flightCache.On("Invalidate", ctx).Return(nil)

		svc := NewFlightService(flightRepo, routeRepo, airplaneRepo, crewRepo, flightCache)
		flight, err := svc.CreateFlight(ctx, &model.CreateFlightRequest{RouteID: 2, AirplaneID: 5, CrewIDs: []int{9}})

		require.NoError(t, err)
		assert.Equal(t, 1, flight.ID)
		flightCache.AssertExpectations(t)
	})

	t.Run("unknown route rejected", func(t *testing.T) {
		routeRepo := new(MockRouteRepository)
		routeRepo.On("FindByID", ctx, 99).Return(nil, apperrors.ErrRouteNotFound)

		svc := NewFlightService(new(MockFlightRepository), routeRepo, new(MockAirplaneRepository), new(MockCrewRepository), nil)
		_, err := svc.CreateFlight(ctx, &model.CreateFlightRequest{RouteID: 99, AirplaneID: 5})

		assert.ErrorIs(t, err, apperrors.ErrRouteNotFound)
	})
}
