package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"booking-platform/internal/domain/billing"
	"booking-platform/internal/domain/booking"
	"booking-platform/internal/domain/schedule"
	"booking-platform/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, invoice_id, location_id, date, checkin_time, number_of_spaces,
	name, email, phone, paid, deposit_price, line_items, status, created_at, updated_at`

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// CreateWithCapacity persists the booking only if the slot still has room.
// The advisory lock serializes concurrent check-then-write sequences per
// (location, date, checkin) key so combined consumption can never exceed
// spacesTotal.
func (r *BookingRepository) CreateWithCapacity(ctx context.Context, b *booking.Booking, spacesTotal int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback booking transaction", "error", rollbackErr)
		}
	}()

	lockKey := slotLockKey(b.LocationID, b.Date, b.CheckinTime)
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		return infra.WrapRepoErr("failed to acquire slot lock", err)
	}

	var consumed int
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(number_of_spaces), 0)
		FROM bookings
		WHERE location_id=$1 AND date=$2 AND checkin_time=$3 AND status=$4`,
		b.LocationID, b.Date, b.CheckinTime.MinutesFromMidnight(), booking.StatusConfirmed,
	).Scan(&consumed)
	if err != nil {
		return infra.WrapRepoErr("failed to sum consumed spaces", err)
	}
	if consumed+b.NumberOfSpaces > spacesTotal {
		return infra.WrapRepoErr("slot capacity exhausted", nil, infra.KindConflict)
	}

	items, err := json.Marshal(b.LineItems)
	if err != nil {
		return infra.WrapRepoErr("failed to encode line items", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, invoice_id, location_id, date, checkin_time, number_of_spaces,
			name, email, phone, paid, deposit_price, line_items, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		b.ID, b.InvoiceID, b.LocationID, b.Date, b.CheckinTime.MinutesFromMidnight(), b.NumberOfSpaces,
		b.Contact.Name, b.Contact.Email, b.Contact.Phone, b.Paid, b.DepositPrice, items, b.Status,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

// ConsumedForDate returns the summed confirmed consumption for every checkin
// time on one date, keyed by minutes from midnight.
func (r *BookingRepository) ConsumedForDate(ctx context.Context, locationID int64, date time.Time) (map[int]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT checkin_time, COALESCE(SUM(number_of_spaces), 0)
		FROM bookings
		WHERE location_id=$1 AND date=$2 AND status=$3
		GROUP BY checkin_time`,
		locationID, schedule.DateOnly(date), booking.StatusConfirmed,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query consumed spaces", err)
	}
	defer rows.Close()

	consumed := make(map[int]int)
	for rows.Next() {
		var checkin, sum int
		if err := rows.Scan(&checkin, &sum); err != nil {
			return nil, infra.WrapRepoErr("failed to scan consumed spaces", err)
		}
		consumed[checkin] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read consumed spaces", err)
	}
	return consumed, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		b       booking.Booking
		checkin int
		status  string
		items   []byte
	)
	err := row.Scan(
		&b.ID, &b.InvoiceID, &b.LocationID, &b.Date, &checkin, &b.NumberOfSpaces,
		&b.Contact.Name, &b.Contact.Email, &b.Contact.Phone, &b.Paid, &b.DepositPrice,
		&items, &status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &b.LineItems); err != nil {
		return nil, err
	}
	if b.LineItems == nil {
		b.LineItems = []billing.LineItem{}
	}
	b.Date = schedule.DateOnly(b.Date)
	b.CheckinTime = schedule.TimeOfDayFromMinutes(checkin)
	b.Status = booking.Status(status)
	return &b, nil
}

func slotLockKey(locationID int64, date time.Time, checkin schedule.TimeOfDay) string {
	return fmt.Sprintf("slot:%d:%s:%d", locationID, date.Format("2006-01-02"), checkin.MinutesFromMidnight())
}
