package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Times of day are stored as minutes from midnight; all times are local to
// the location. The partial unique indexes on rules are the write-time guard
// against ambiguous rule configurations.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS default_rules (
	id UUID PRIMARY KEY,
	weekday TEXT NOT NULL,
	month INT,
	closed BOOLEAN NOT NULL DEFAULT false,
	first_checkin INT NOT NULL,
	last_checkin INT NOT NULL,
	lunch_break BOOLEAN NOT NULL DEFAULT false,
	lunch_break_from INT NOT NULL DEFAULT 0,
	lunch_break_duration INT NOT NULL DEFAULT 0,
	slot_duration INT NOT NULL,
	slot_spaces INT NOT NULL,
	slot_deposit_price BIGINT NOT NULL,
	slot_invoice_price BIGINT NOT NULL,
	location_id BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS uq_default_rules_scope
	ON default_rules (location_id, weekday, COALESCE(month, 0));

CREATE TABLE IF NOT EXISTS custom_rules (
	id UUID PRIMARY KEY,
	date DATE NOT NULL,
	closed BOOLEAN NOT NULL DEFAULT false,
	first_checkin INT NOT NULL,
	last_checkin INT NOT NULL,
	lunch_break BOOLEAN NOT NULL DEFAULT false,
	lunch_break_from INT NOT NULL DEFAULT 0,
	lunch_break_duration INT NOT NULL DEFAULT 0,
	slot_duration INT NOT NULL,
	slot_spaces INT NOT NULL,
	slot_deposit_price BIGINT NOT NULL,
	slot_invoice_price BIGINT NOT NULL,
	location_id BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS uq_custom_rules_scope
	ON custom_rules (location_id, date);

CREATE TABLE IF NOT EXISTS bookings (
	id UUID PRIMARY KEY,
	invoice_id TEXT,
	location_id BIGINT NOT NULL,
	date DATE NOT NULL,
	checkin_time INT NOT NULL,
	number_of_spaces INT NOT NULL,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	paid BOOLEAN NOT NULL DEFAULT false,
	deposit_price BIGINT NOT NULL DEFAULT 0,
	line_items JSONB NOT NULL DEFAULT '[]',
	status TEXT NOT NULL DEFAULT 'confirmed',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_bookings_slot
	ON bookings (location_id, date, checkin_time);

CREATE TABLE IF NOT EXISTS invoices (
	id UUID PRIMARY KEY,
	location_id BIGINT NOT NULL,
	date DATE NOT NULL,
	checkin_time INT NOT NULL,
	number_of_spaces INT NOT NULL,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	addons JSONB NOT NULL DEFAULT '[]',
	deposit_price BIGINT NOT NULL,
	paid BOOLEAN NOT NULL DEFAULT false,
	booking_id UUID,
	line_items JSONB NOT NULL DEFAULT '[]',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS payments (
	id UUID PRIMARY KEY,
	invoice_id UUID NOT NULL REFERENCES invoices(id),
	method TEXT NOT NULL,
	amount_due BIGINT NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_payments_invoice
	ON payments (invoice_id);

CREATE TABLE IF NOT EXISTS booking_jobs (
	invoice_id UUID PRIMARY KEY REFERENCES invoices(id),
	status TEXT NOT NULL DEFAULT 'pending',
	booking_id UUID,
	attempts INT NOT NULL DEFAULT 0,
	last_error TEXT NOT NULL DEFAULT '',
	run_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_booking_jobs_due
	ON booking_jobs (status, run_at);
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return err
}
