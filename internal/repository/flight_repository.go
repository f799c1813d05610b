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

type FlightRepository interface {
	Create(ctx context.Context, flight *model.Flight) (*model.Flight, error)
	List(ctx context.Context, filter model.FlightFilter, page model.Page) ([]*model.FlightSummary, error)
	Count(ctx context.Context, filter model.FlightFilter) (int64, error)
	FindByID(ctx context.Context, id int) (*model.Flight, error)
	FindDetail(ctx context.Context, id int) (*model.FlightDetail, error)
	Update(ctx context.Context, id int, params model.UpdateFlightParams) (*model.Flight, error)
	Delete(ctx context.Context, id int) error
}

type FlightRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewFlightRepository(pool *pgxpool.Pool) FlightRepository {
	return &FlightRepositoryImpl{pool: pool}
}

func (r *FlightRepositoryImpl) Create(ctx context.Context, flight *model.Flight) (*model.Flight, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, route_id, airplane_id, departure_time, arrival_time
	`

	err = tx.QueryRow(ctx, query,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime,
	).Scan(
		&flight.ID,
		&flight.RouteID,
		&flight.AirplaneID,
		&flight.DepartureTime,
		&flight.ArrivalTime,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}

	if err := replaceFlightCrews(ctx, tx, flight.ID, flight.CrewIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return flight, nil
}

func (r *FlightRepositoryImpl) List(ctx context.Context, filter model.FlightFilter, page model.Page) ([]*model.FlightSummary, error) {
	// tickets_available is derived per request: airplane capacity minus the
	// number of tickets sold for the flight.
	query := `
		SELECT f.id,
		       a.name,
		       t.name,
		       a.image_url,
		       src.name || ' - ' || dst.name AS route,
		       f.departure_time,
		       f.arrival_time,
		       a.rows * a.seats_in_row AS capacity,
		       a.rows * a.seats_in_row - COUNT(tk.id) AS tickets_available
		FROM flights f
		JOIN airplanes a ON a.id = f.airplane_id
		JOIN airplane_types t ON t.id = a.airplane_type_id
		JOIN routes r ON r.id = f.route_id
		JOIN airports src ON src.id = r.source_id
		JOIN airports dst ON dst.id = r.destination_id
		LEFT JOIN tickets tk ON tk.flight_id = f.id
		WHERE ($1 = '' OR a.name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR src.name ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR dst.name ILIKE '%' || $3 || '%')
		GROUP BY f.id, a.name, t.name, a.image_url, src.name, dst.name, a.rows, a.seats_in_row
		ORDER BY f.id
		LIMIT $4 OFFSET $5
	`

	rows, err := r.pool.Query(ctx, query,
		filter.Airplane, filter.RouteSource, filter.RouteDestination,
		page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]*model.FlightSummary, 0)
	for rows.Next() {
		var summary model.FlightSummary
		err := rows.Scan(
			&summary.ID,
			&summary.AirplaneName,
			&summary.AirplaneType,
			&summary.AirplaneImage,
			&summary.Route,
			&summary.DepartureTime,
			&summary.ArrivalTime,
			&summary.AirplaneCapacity,
			&summary.TicketsAvailable,
		)
		if err != nil {
			return nil, err
		}
		flights = append(flights, &summary)
	}

	return flights, rows.Err()
}

func (r *FlightRepositoryImpl) Count(ctx context.Context, filter model.FlightFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM flights f
		JOIN airplanes a ON a.id = f.airplane_id
		JOIN routes r ON r.id = f.route_id
		JOIN airports src ON src.id = r.source_id
		JOIN airports dst ON dst.id = r.destination_id
		WHERE ($1 = '' OR a.name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR src.name ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR dst.name ILIKE '%' || $3 || '%')
	`

	var count int64
	err := r.pool.QueryRow(ctx, query, filter.Airplane, filter.RouteSource, filter.RouteDestination).Scan(&count)
	return count, err
}

func (r *FlightRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Flight, error) {
	query := `
		SELECT id, route_id, airplane_id, departure_time, arrival_time
		FROM flights
		WHERE id = $1
	`

	var flight model.Flight
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&flight.ID,
		&flight.RouteID,
		&flight.AirplaneID,
		&flight.DepartureTime,
		&flight.ArrivalTime,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, err
	}

	crewIDs, err := r.crewIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	flight.CrewIDs = crewIDs

	return &flight, nil
}

func (r *FlightRepositoryImpl) FindDetail(ctx context.Context, id int) (*model.FlightDetail, error) {
	query := `
		SELECT f.id, f.departure_time, f.arrival_time,
		       a.id, a.name, t.name, a.image_url, a.rows, a.seats_in_row,
		       a.rows * a.seats_in_row AS capacity,
		       r.id, r.distance,
		       src.id, src.name, src.closest_big_city,
		       dst.id, dst.name, dst.closest_big_city
		FROM flights f
		JOIN airplanes a ON a.id = f.airplane_id
		JOIN airplane_types t ON t.id = a.airplane_type_id
		JOIN routes r ON r.id = f.route_id
		JOIN airports src ON src.id = r.source_id
		JOIN airports dst ON dst.id = r.destination_id
		WHERE f.id = $1
	`

	var detail model.FlightDetail
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.DepartureTime,
		&detail.ArrivalTime,
		&detail.Airplane.ID,
		&detail.Airplane.Name,
		&detail.Airplane.AirplaneTypeName,
		&detail.Airplane.Image,
		&detail.Airplane.Rows,
		&detail.Airplane.SeatsInRow,
		&detail.Airplane.Capacity,
		&detail.Route.ID,
		&detail.Route.Distance,
		&detail.Route.Source.ID,
		&detail.Route.Source.Name,
		&detail.Route.Source.ClosestBigCity,
		&detail.Route.Destination.ID,
		&detail.Route.Destination.Name,
		&detail.Route.Destination.ClosestBigCity,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, err
	}

	crews, err := r.crewItems(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Crews = crews

	taken, err := r.takenPlaces(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.TakenPlaces = taken

	return &detail, nil
}

func (r *FlightRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateFlightParams) (*model.Flight, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.RouteID != nil {
		sets = append(sets, fmt.Sprintf("route_id = $%d", argPos))
		args = append(args, *params.RouteID)
		argPos++
	}
	if params.AirplaneID != nil {
		sets = append(sets, fmt.Sprintf("airplane_id = $%d", argPos))
		args = append(args, *params.AirplaneID)
		argPos++
	}
	if params.DepartureTime != nil {
		sets = append(sets, fmt.Sprintf("departure_time = $%d", argPos))
		args = append(args, *params.DepartureTime)
		argPos++
	}
	if params.ArrivalTime != nil {
		sets = append(sets, fmt.Sprintf("arrival_time = $%d", argPos))
		args = append(args, *params.ArrivalTime)
		argPos++
	}

	var flight model.Flight
	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf(`
			UPDATE flights
			SET %s
			WHERE id = $%d
			RETURNING id, route_id, airplane_id, departure_time, arrival_time
		`, strings.Join(sets, ", "), argPos)

		err = tx.QueryRow(ctx, query, args...).Scan(
			&flight.ID,
			&flight.RouteID,
			&flight.AirplaneID,
			&flight.DepartureTime,
			&flight.ArrivalTime,
		)
	} else {
		err = tx.QueryRow(ctx, `
			SELECT id, route_id, airplane_id, departure_time, arrival_time
			FROM flights
			WHERE id = $1
		`, id).Scan(
			&flight.ID,
			&flight.RouteID,
			&flight.AirplaneID,
			&flight.DepartureTime,
			&flight.ArrivalTime,
		)
	}
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, err
	}

	if params.CrewIDs != nil {
		if err := replaceFlightCrews(ctx, tx, id, params.CrewIDs); err != nil {
			return nil, err
		}
		flight.CrewIDs = params.CrewIDs
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &flight, nil
}

func (r *FlightRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrFlightNotFound
	}

	return nil
}

func (r *FlightRepositoryImpl) crewIDs(ctx context.Context, flightID int) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT crew_id FROM flight_crews WHERE flight_id = $1 ORDER BY crew_id`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *FlightRepositoryImpl) crewItems(ctx context.Context, flightID int) ([]model.CrewListItem, error) {
	query := `
		SELECT c.id, c.position, c.first_name || ' ' || c.last_name AS full_name
		FROM crews c
		JOIN flight_crews fc ON fc.crew_id = c.id
		WHERE fc.flight_id = $1
		ORDER BY c.id
	`

	rows, err := r.pool.Query(ctx, query, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crews := make([]model.CrewListItem, 0)
	for rows.Next() {
		var item model.CrewListItem
		if err := rows.Scan(&item.ID, &item.Position, &item.FullName); err != nil {
			return nil, err
		}
		crews = append(crews, item)
	}

	return crews, rows.Err()
}

func (r *FlightRepositoryImpl) takenPlaces(ctx context.Context, flightID int) ([]model.SeatRef, error) {
	query := `
		SELECT row, seat
		FROM tickets
		WHERE flight_id = $1
		ORDER BY row, seat
	`

	rows, err := r.pool.Query(ctx, query, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]model.SeatRef, 0)
	for rows.Next() {
		var seat model.SeatRef
		if err := rows.Scan(&seat.Row, &seat.Seat); err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

func replaceFlightCrews(ctx context.Context, tx pgx.Tx, flightID int, crewIDs []int) error {
	if _, err := tx.Exec(ctx, `DELETE FROM flight_crews WHERE flight_id = $1`, flightID); err != nil {
		return err
	}
	for _, crewID := range crewIDs {
		_, err := tx.Exec(ctx, `INSERT INTO flight_crews (flight_id, crew_id) VALUES ($1, $2)`, flightID, crewID)
		if err != nil {
			return err
		}
	}
	return nil
}
