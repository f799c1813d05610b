package repository

import (
	"context"
	"fmt"
	"strings"

	"airport-booking-api/internal/model"
	apperrors "airport-booking-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirplaneTypeRepository interface {
	Create(ctx context.Context, airplaneType *model.AirplaneType) (*model.AirplaneType, error)
	List(ctx context.Context, page model.Page) ([]*model.AirplaneType, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id int) (*model.AirplaneType, error)
}

type AirplaneRepository interface {
	Create(ctx context.Context, airplane *model.Airplane) (*model.Airplane, error)
	List(ctx context.Context, filter model.AirplaneFilter, page model.Page) ([]*model.AirplaneListItem, error)
	Count(ctx context.Context, filter model.AirplaneFilter) (int64, error)
	FindByID(ctx context.Context, id int) (*model.Airplane, error)
	FindItemByID(ctx context.Context, id int) (*model.AirplaneListItem, error)
	Update(ctx context.Context, id int, params model.UpdateAirplaneParams) (*model.Airplane, error)
	UpdateImage(ctx context.Context, id int, imageURL string) error
	Delete(ctx context.Context, id int) error
}

type AirplaneTypeRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAirplaneTypeRepository(pool *pgxpool.Pool) AirplaneTypeRepository {
	return &AirplaneTypeRepositoryImpl{pool: pool}
}

func (r *AirplaneTypeRepositoryImpl) Create(ctx context.Context, airplaneType *model.AirplaneType) (*model.AirplaneType, error) {
	query := `
		INSERT INTO airplane_types (name)
		VALUES ($1)
		RETURNING id, name
	`

	err := r.pool.QueryRow(ctx, query, airplaneType.Name).Scan(&airplaneType.ID, &airplaneType.Name)
	if err != nil {
		return nil, err
	}

	return airplaneType, nil
}

func (r *AirplaneTypeRepositoryImpl) List(ctx context.Context, page model.Page) ([]*model.AirplaneType, error) {
	query := `
		SELECT id, name
		FROM airplane_types
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]*model.AirplaneType, 0)
	for rows.Next() {
		var airplaneType model.AirplaneType
		if err := rows.Scan(&airplaneType.ID, &airplaneType.Name); err != nil {
			return nil, err
		}
		types = append(types, &airplaneType)
	}

	return types, rows.Err()
}

func (r *AirplaneTypeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM airplane_types`).Scan(&count)
	return count, err
}

func (r *AirplaneTypeRepositoryImpl) FindByID(ctx context.Context, id int) (*model.AirplaneType, error) {
	query := `
		SELECT id, name
		FROM airplane_types
		WHERE id = $1
	`

	var airplaneType model.AirplaneType
	err := r.pool.QueryRow(ctx, query, id).Scan(&airplaneType.ID, &airplaneType.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAirplaneTypeNotFound
		}
		return nil, err
	}

	return &airplaneType, nil
}

type AirplaneRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAirplaneRepository(pool *pgxpool.Pool) AirplaneRepository {
	return &AirplaneRepositoryImpl{pool: pool}
}

func (r *AirplaneRepositoryImpl) Create(ctx context.Context, airplane *model.Airplane) (*model.Airplane, error) {
	query := `
		INSERT INTO airplanes (name, rows, seats_in_row, airplane_type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, rows, seats_in_row, airplane_type_id, image_url
	`

	err := r.pool.QueryRow(ctx, query,
		airplane.Name, airplane.Rows, airplane.SeatsInRow, airplane.AirplaneTypeID,
	).Scan(
		&airplane.ID,
		&airplane.Name,
		&airplane.Rows,
		&airplane.SeatsInRow,
		&airplane.AirplaneTypeID,
		&airplane.ImageURL,
	)

	if err != nil {
		return nil, err
	}

	return airplane, nil
}

func (r *AirplaneRepositoryImpl) List(ctx context.Context, filter model.AirplaneFilter, page model.Page) ([]*model.AirplaneListItem, error) {
	query := `
		SELECT a.id, a.name, t.name, a.image_url, a.rows, a.seats_in_row,
		       a.rows * a.seats_in_row AS capacity
		FROM airplanes a
		JOIN airplane_types t ON t.id = a.airplane_type_id
		WHERE ($1 = '' OR a.name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR t.name ILIKE '%' || $2 || '%')
		ORDER BY a.name
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, filter.Name, filter.AirplaneType, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]*model.AirplaneListItem, 0)
	for rows.Next() {
		var item model.AirplaneListItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.AirplaneTypeName,
			&item.Image,
			&item.Rows,
			&item.SeatsInRow,
			&item.Capacity,
		)
		if err != nil {
			return nil, err
		}
		airplanes = append(airplanes, &item)
	}

	return airplanes, rows.Err()
}

func (r *AirplaneRepositoryImpl) Count(ctx context.Context, filter model.AirplaneFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM airplanes a
		JOIN airplane_types t ON t.id = a.airplane_type_id
		WHERE ($1 = '' OR a.name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR t.name ILIKE '%' || $2 || '%')
	`

	var count int64
	err := r.pool.QueryRow(ctx, query, filter.Name, filter.AirplaneType).Scan(&count)
	return count, err
}

func (r *AirplaneRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Airplane, error) {
	query := `
		SELECT id, name, rows, seats_in_row, airplane_type_id, image_url
		FROM airplanes
		WHERE id = $1
	`

	var airplane model.Airplane
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&airplane.ID,
		&airplane.Name,
		&airplane.Rows,
		&airplane.SeatsInRow,
		&airplane.AirplaneTypeID,
		&airplane.ImageURL,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAirplaneNotFound
		}
		return nil, err
	}

	return &airplane, nil
}

func (r *AirplaneRepositoryImpl) FindItemByID(ctx context.Context, id int) (*model.AirplaneListItem, error) {
	query := `
		SELECT a.id, a.name, t.name, a.image_url, a.rows, a.seats_in_row,
		       a.rows * a.seats_in_row AS capacity
		FROM airplanes a
		JOIN airplane_types t ON t.id = a.airplane_type_id
		WHERE a.id = $1
	`

	var item model.AirplaneListItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.AirplaneTypeName,
		&item.Image,
		&item.Rows,
		&item.SeatsInRow,
		&item.Capacity,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAirplaneNotFound
		}
		return nil, err
	}

	return &item, nil
}

func (r *AirplaneRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateAirplaneParams) (*model.Airplane, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}
	if params.Rows != nil {
		sets = append(sets, fmt.Sprintf("rows = $%d", argPos))
		args = append(args, *params.Rows)
		argPos++
	}
	if params.SeatsInRow != nil {
		sets = append(sets, fmt.Sprintf("seats_in_row = $%d", argPos))
		args = append(args, *params.SeatsInRow)
		argPos++
	}
	if params.AirplaneTypeID != nil {
		sets = append(sets, fmt.Sprintf("airplane_type_id = $%d", argPos))
		args = append(args, *params.AirplaneTypeID)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE airplanes
		SET %s
		WHERE id = $%d
		RETURNING id, name, rows, seats_in_row, airplane_type_id, image_url
	`, strings.Join(sets, ", "), argPos)

	var airplane model.Airplane
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&airplane.ID,
		&airplane.Name,
		&airplane.Rows,
		&airplane.SeatsInRow,
		&airplane.AirplaneTypeID,
		&airplane.ImageURL,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAirplaneNotFound
		}
		return nil, err
	}

	return &airplane, nil
}

func (r *AirplaneRepositoryImpl) UpdateImage(ctx context.Context, id int, imageURL string) error {
	query := `
		UPDATE airplanes
		SET image_url = $1
		WHERE id = $2
	`

	result, err := r.pool.Exec(ctx, query, imageURL, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrAirplaneNotFound
	}

	return nil
}

func (r *AirplaneRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM airplanes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrAirplaneNotFound
	}

	return nil
}
