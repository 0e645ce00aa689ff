package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/domain"
)

type BookingRepository interface {
	// Create inserts a booking with no inventory side effect.
	Create(ctx context.Context, booking *domain.Booking) error
	// CreateFlightBooking inserts the booking and decrements the flight's
	// seat inventory by seats inside one transaction.
	CreateFlightBooking(ctx context.Context, booking *domain.Booking, flightID int64, seats int) error
	List(ctx context.Context) ([]domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
}

const pgUniqueViolation = "23505"

const bookingColumns = `id, booking_reference, customer_name, customer_email, customer_phone,
	service_type, service_details, booking_date, number_of_people, total_price, status,
	created_at, updated_at`

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.insert(ctx, r.db, booking)
}

func (r *PGBookingRepository) CreateFlightBooking(ctx context.Context, booking *domain.Booking, flightID int64, seats int) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Conditional decrement: the WHERE clause is the authoritative seat
	// check, so concurrent bookings can never drive the counter negative.
	res, err := tx.Exec(ctx, `UPDATE flights
		SET available_seats = available_seats - $2, updated_at = now()
		WHERE id = $1 AND available_seats >= $2`, flightID, seats)
	if err != nil {
		return fmt.Errorf("reserve seats: %w", err)
	}
	if res.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flights WHERE id=$1)`, flightID).Scan(&exists); err != nil {
			return fmt.Errorf("check flight: %w", err)
		}
		if !exists {
			return domain.ErrFlightNotFound
		}
		return domain.ErrNotEnoughSeats
	}

	if err := r.insert(ctx, tx, booking); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

type execQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *PGBookingRepository) insert(ctx context.Context, q execQuerier, booking *domain.Booking) error {
	details, err := booking.ServiceDetails.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode service details: %w", err)
	}

	err = q.QueryRow(ctx, `INSERT INTO bookings
		(booking_reference, customer_name, customer_email, customer_phone,
		 service_type, service_details, booking_date, number_of_people, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		booking.BookingReference, booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
		booking.ServiceType, string(details), booking.BookingDate, booking.NumberOfPeople,
		booking.TotalPrice, booking.Status).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE booking_reference=$1`, reference)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get booking: %w", err)
		}
		return nil, domain.ErrBookingNotFound
	}
	b, err := scanBooking(rows)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBooking(rows pgx.Rows) (domain.Booking, error) {
	var (
		b       domain.Booking
		details []byte
	)
	err := rows.Scan(
		&b.ID, &b.BookingReference, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&b.ServiceType, &details, &b.BookingDate, &b.NumberOfPeople, &b.TotalPrice, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("scan booking: %w", err)
	}
	b.ServiceDetails = domain.DecodeServiceDetails(b.ServiceType, details)
	return b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
