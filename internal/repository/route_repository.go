package repository

import (
	"context"

	"airport-booking-api/internal/model"
	apperrors "airport-booking-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteRepository interface {
	Create(ctx context.Context, route *model.Route) (*model.Route, error)
	List(ctx context.Context, filter model.RouteFilter, page model.Page) ([]*model.RouteListItem, error)
	Count(ctx context.Context, filter model.RouteFilter) (int64, error)
	FindByID(ctx context.Context, id int) (*model.Route, error)
}

type RouteRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRouteRepository(pool *pgxpool.Pool) RouteRepository {
	return &RouteRepositoryImpl{pool: pool}
}

func (r *RouteRepositoryImpl) Create(ctx context.Context, route *model.Route) (*model.Route, error) {
	query := `
		INSERT INTO routes (source_id, destination_id, distance)
		VALUES ($1, $2, $3)
		RETURNING id, source_id, destination_id, distance
	`

	err := r.pool.QueryRow(ctx, query, route.SourceID, route.DestinationID, route.Distance).Scan(
		&route.ID,
		&route.SourceID,
		&route.DestinationID,
		&route.Distance,
	)

	if err != nil {
		return nil, err
	}

	return route, nil
}

func (r *RouteRepositoryImpl) List(ctx context.Context, filter model.RouteFilter, page model.Page) ([]*model.RouteListItem, error) {
	query := `
		SELECT r.id, r.distance,
		       src.id, src.name, src.closest_big_city,
		       dst.id, dst.name, dst.closest_big_city
		FROM routes r
		JOIN airports src ON src.id = r.source_id
		JOIN airports dst ON dst.id = r.destination_id
		WHERE ($1 = '' OR src.name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR dst.name ILIKE '%' || $2 || '%')
		ORDER BY r.id
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, filter.Source, filter.Destination, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]*model.RouteListItem, 0)
	for rows.Next() {
		var item model.RouteListItem
		err := rows.Scan(
			&item.ID,
			&item.Distance,
			&item.Source.ID,
			&item.Source.Name,
			&item.Source.ClosestBigCity,
			&item.Destination.ID,
			&item.Destination.Name,
			&item.Destination.ClosestBigCity,
		)
		if err != nil {
			return nil, err
		}
		routes = append(routes, &item)
	}

	return routes, rows.Err()
}

func (r *RouteRepositoryImpl) Count(ctx context.Context, filter model.RouteFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM routes r
		JOIN airports src ON src.id = r.source_id
		JOIN airports dst ON dst.id = r.destination_id
		WHERE ($1 = '' OR src.name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR dst.name ILIKE '%' || $2 || '%')
	`

	var count int64
	err := r.pool.QueryRow(ctx, query, filter.Source, filter.Destination).Scan(&count)
	return count, err
}

func (r *RouteRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Route, error) {
	query := `
		SELECT id, source_id, destination_id, distance
		FROM routes
		WHERE id = $1
	`

	var route model.Route
	err := r.pool.QueryRow(ctx, query, id).Scan(&route.ID, &route.SourceID, &route.DestinationID, &route.Distance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRouteNotFound
		}
		return nil, err
	}

	return &route, nil
}
