package repository

import (
	"context"

	"airport-booking-api/internal/model"
	apperrors "airport-booking-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository interface {
	Create(ctx context.Context, airport *model.Airport) (*model.Airport, error)
	List(ctx context.Context, filter model.AirportFilter, page model.Page) ([]*model.Airport, error)
	Count(ctx context.Context, filter model.AirportFilter) (int64, error)
	FindByID(ctx context.Context, id int) (*model.Airport, error)
}

type AirportRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAirportRepository(pool *pgxpool.Pool) AirportRepository {
	return &AirportRepositoryImpl{pool: pool}
}

func (r *AirportRepositoryImpl) Create(ctx context.Context, airport *model.Airport) (*model.Airport, error) {
	query := `
		INSERT INTO airports (name, closest_big_city)
		VALUES ($1, $2)
		RETURNING id, name, closest_big_city
	`

	err := r.pool.QueryRow(ctx, query, airport.Name, airport.ClosestBigCity).Scan(
		&airport.ID,
		&airport.Name,
		&airport.ClosestBigCity,
	)

	if err != nil {
		if isUniqueViolation(err, "") {
			return nil, apperrors.ErrDuplicateAirport
		}
		return nil, err
	}

	return airport, nil
}

func (r *AirportRepositoryImpl) List(ctx context.Context, filter model.AirportFilter, page model.Page) ([]*model.Airport, error) {
	query := `
		SELECT id, name, closest_big_city
		FROM airports
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, filter.Name, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]*model.Airport, 0)
	for rows.Next() {
		var airport model.Airport
		err := rows.Scan(&airport.ID, &airport.Name, &airport.ClosestBigCity)
		if err != nil {
			return nil, err
		}
		airports = append(airports, &airport)
	}

	return airports, rows.Err()
}

func (r *AirportRepositoryImpl) Count(ctx context.Context, filter model.AirportFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM airports
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
	`

	var count int64
	err := r.pool.QueryRow(ctx, query, filter.Name).Scan(&count)
	return count, err
}

func (r *AirportRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Airport, error) {
	query := `
		SELECT id, name, closest_big_city
		FROM airports
		WHERE id = $1
	`

	var airport model.Airport
	err := r.pool.QueryRow(ctx, query, id).Scan(&airport.ID, &airport.Name, &airport.ClosestBigCity)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAirportNotFound
		}
		return nil, err
	}

	return &airport, nil
}
