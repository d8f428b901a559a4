package repository

import (
	"context"
	"encoding/json"
	"errors"

	"booking-platform/internal/domain/billing"
	"booking-platform/internal/domain/invoice"
	"booking-platform/internal/domain/schedule"
	"booking-platform/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const invoiceColumns = `id, location_id, date, checkin_time, number_of_spaces,
	name, email, phone, addons, deposit_price, paid, booking_id, line_items,
	created_at, updated_at`

type InvoiceRepository struct {
	pool *pgxpool.Pool
}

func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	addons, err := json.Marshal(inv.Addons)
	if err != nil {
		return infra.WrapRepoErr("failed to encode addons", err)
	}
	items, err := json.Marshal(inv.LineItems)
	if err != nil {
		return infra.WrapRepoErr("failed to encode line items", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO invoices (id, location_id, date, checkin_time, number_of_spaces,
			name, email, phone, addons, deposit_price, paid, booking_id, line_items)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		inv.ID, inv.LocationID, inv.Date, inv.CheckinTime.MinutesFromMidnight(), inv.NumberOfSpaces,
		inv.Contact.Name, inv.Contact.Email, inv.Contact.Phone, addons, inv.DepositPrice,
		inv.Paid, inv.BookingID, items,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create invoice", err)
	}
	return nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id=$1`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice", err)
	}
	return inv, nil
}

// AppendLineItem adds one ledger entry to the invoice's line items.
func (r *InvoiceRepository) AppendLineItem(ctx context.Context, id uuid.UUID, item billing.LineItem) error {
	encoded, err := json.Marshal(item)
	if err != nil {
		return infra.WrapRepoErr("failed to encode line item", err)
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE invoices
		SET line_items = line_items || $2::jsonb, updated_at = now()
		WHERE id=$1`,
		id, encoded,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append line item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
	}
	return nil
}

// LinkBooking completes the payment-to-booking transition: the invoice is
// marked paid and pointed at the booking in one statement.
func (r *InvoiceRepository) LinkBooking(ctx context.Context, id, bookingID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE invoices
		SET booking_id=$2, paid=true, updated_at=now()
		WHERE id=$1`,
		id, bookingID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to link booking to invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*invoice.Invoice, error) {
	var (
		inv     invoice.Invoice
		checkin int
		addons  []byte
		items   []byte
	)
	err := row.Scan(
		&inv.ID, &inv.LocationID, &inv.Date, &checkin, &inv.NumberOfSpaces,
		&inv.Contact.Name, &inv.Contact.Email, &inv.Contact.Phone, &addons, &inv.DepositPrice,
		&inv.Paid, &inv.BookingID, &items, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(addons, &inv.Addons); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &inv.LineItems); err != nil {
		return nil, err
	}
	if inv.Addons == nil {
		inv.Addons = []invoice.Addon{}
	}
	if inv.LineItems == nil {
		inv.LineItems = []billing.LineItem{}
	}
	inv.Date = schedule.DateOnly(inv.Date)
	inv.CheckinTime = schedule.TimeOfDayFromMinutes(checkin)
	return &inv, nil
}
