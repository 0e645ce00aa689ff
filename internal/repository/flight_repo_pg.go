package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/domain"
)

type FlightRepository interface {
	Search(ctx context.Context, params domain.FlightSearch) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	ReplaceAll(ctx context.Context, flights []domain.Flight) error
}

var flightColumns = []string{
	"id", "flight_number", "airline", "departure_airport", "arrival_airport",
	"departure_time", "arrival_time", "price", "available_seats", "capacity",
	"flight_status", "boarding_gate", "boarding_start", "boarding_end",
	"created_at", "updated_at",
}

type PGFlightRepository struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PGFlightRepository) Search(ctx context.Context, params domain.FlightSearch) ([]domain.Flight, error) {
	query := r.sb.
		Select(flightColumns...).
		From("flights").
		Where(sq.ILike{"departure_airport": "%" + params.From + "%"}).
		Where(sq.ILike{"arrival_airport": "%" + params.To + "%"}).
		Where(sq.Expr("departure_time::date = ?::date", params.Date.Format("2006-01-02"))).
		Where(sq.GtOrEq{"available_seats": params.Passengers}).
		Where(sq.Eq{"flight_status": domain.FlightStatusScheduled}).
		OrderBy("departure_time ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search flights sql: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	query := r.sb.Select(flightColumns...).From("flights").Where(sq.Eq{"id": id})
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get flight sql: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("get flight: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get flight: %w", err)
		}
		return nil, domain.ErrFlightNotFound
	}
	f, err := scanFlight(rows)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ReplaceAll swaps the whole flights table for the given batch in one
// transaction. Used only by sample-data population.
func (r *PGFlightRepository) ReplaceAll(ctx context.Context, flights []domain.Flight) error {
	if len(flights) == 0 {
		return errNoFlights
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin replace flights: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM flights`); err != nil {
		return fmt.Errorf("clear flights: %w", err)
	}

	insert := r.sb.Insert("flights").Columns(
		"flight_number", "airline", "departure_airport", "arrival_airport",
		"departure_time", "arrival_time", "price", "available_seats", "capacity",
		"flight_status", "boarding_gate", "boarding_start", "boarding_end",
	)
	for _, f := range flights {
		insert = insert.Values(
			f.FlightNumber, f.Airline, f.DepartureAirport, f.ArrivalAirport,
			f.DepartureTime, f.ArrivalTime, f.Price, f.AvailableSeats, f.Capacity,
			f.FlightStatus, f.BoardingGate, f.BoardingStart, f.BoardingEnd,
		)
	}

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build insert flights sql: %w", err)
	}
	if _, err := tx.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("insert flights: %w", err)
	}

	return tx.Commit(ctx)
}

func scanFlight(rows pgx.Rows) (domain.Flight, error) {
	var f domain.Flight
	err := rows.Scan(
		&f.ID, &f.FlightNumber, &f.Airline, &f.DepartureAirport, &f.ArrivalAirport,
		&f.DepartureTime, &f.ArrivalTime, &f.Price, &f.AvailableSeats, &f.Capacity,
		&f.FlightStatus, &f.BoardingGate, &f.BoardingStart, &f.BoardingEnd,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("scan flight: %w", err)
	}
	return f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)

var errNoFlights = errors.New("no flights to insert")
