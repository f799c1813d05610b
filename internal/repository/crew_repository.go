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

type CrewRepository interface {
	Create(ctx context.Context, crew *model.Crew) (*model.Crew, error)
	List(ctx context.Context, filter model.CrewFilter, page model.Page) ([]*model.CrewListItem, error)
	Count(ctx context.Context, filter model.CrewFilter) (int64, error)
	FindByID(ctx context.Context, id int) (*model.Crew, error)
	Update(ctx context.Context, id int, params model.UpdateCrewParams) (*model.Crew, error)
	Delete(ctx context.Context, id int) error
}

type CrewRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCrewRepository(pool *pgxpool.Pool) CrewRepository {
	return &CrewRepositoryImpl{pool: pool}
}

func (r *CrewRepositoryImpl) Create(ctx context.Context, crew *model.Crew) (*model.Crew, error) {
	query := `
		INSERT INTO crews (first_name, last_name, position)
		VALUES ($1, $2, $3)
		RETURNING id, first_name, last_name, position
	`

	err := r.pool.QueryRow(ctx, query, crew.FirstName, crew.LastName, crew.Position).Scan(
		&crew.ID,
		&crew.FirstName,
		&crew.LastName,
		&crew.Position,
	)

	if err != nil {
		return nil, err
	}

	return crew, nil
}

func (r *CrewRepositoryImpl) List(ctx context.Context, filter model.CrewFilter, page model.Page) ([]*model.CrewListItem, error) {
	query := `
		SELECT id, position, first_name || ' ' || last_name AS full_name
		FROM crews
		WHERE ($1 = '' OR position ILIKE '%' || $1 || '%')
		ORDER BY id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, filter.Position, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crews := make([]*model.CrewListItem, 0)
	for rows.Next() {
		var item model.CrewListItem
		if err := rows.Scan(&item.ID, &item.Position, &item.FullName); err != nil {
			return nil, err
		}
		crews = append(crews, &item)
	}

	return crews, rows.Err()
}

func (r *CrewRepositoryImpl) Count(ctx context.Context, filter model.CrewFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM crews
		WHERE ($1 = '' OR position ILIKE '%' || $1 || '%')
	`

	var count int64
	err := r.pool.QueryRow(ctx, query, filter.Position).Scan(&count)
	return count, err
}

func (r *CrewRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Crew, error) {
	query := `
		SELECT id, first_name, last_name, position
		FROM crews
		WHERE id = $1
	`

	var crew model.Crew
	err := r.pool.QueryRow(ctx, query, id).Scan(&crew.ID, &crew.FirstName, &crew.LastName, &crew.Position)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCrewNotFound
		}
		return nil, err
	}

	return &crew, nil
}

func (r *CrewRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateCrewParams) (*model.Crew, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.FirstName != nil {
		sets = append(sets, fmt.Sprintf("first_name = $%d", argPos))
		args = append(args, *params.FirstName)
		argPos++
	}
	if params.LastName != nil {
		sets = append(sets, fmt.Sprintf("last_name = $%d", argPos))
		args = append(args, *params.LastName)
		argPos++
	}
	if params.Position != nil {
		sets = append(sets, fmt.Sprintf("position = $%d", argPos))
		args = append(args, *params.Position)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE crews
		SET %s
		WHERE id = $%d
		RETURNING id, first_name, last_name, position
	`, strings.Join(sets, ", "), argPos)

	var crew model.Crew
	err := r.pool.QueryRow(ctx, query, args...).Scan(&crew.ID, &crew.FirstName, &crew.LastName, &crew.Position)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCrewNotFound
		}
		return nil, err
	}

	return &crew, nil
}

func (r *CrewRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM crews WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCrewNotFound
	}

	return nil
}
