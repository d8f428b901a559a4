package repository

import (
	"context"
	"time"

	"booking-platform/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// BookingJob is one queued booking-creation request, keyed by invoice so
// retries stay idempotent. BookingID is set as soon as confirmBooking
// succeeds; a retry that finds it non-nil resumes from the link step instead
// of creating a second booking.
type BookingJob struct {
	InvoiceID uuid.UUID
	BookingID *uuid.UUID
	Status    JobStatus
	Attempts  int
	LastError string
	RunAt     time.Time
	CreatedAt time.Time
}

type BookingJobRepository struct {
	pool *pgxpool.Pool
}

func NewBookingJobRepository(pool *pgxpool.Pool) *BookingJobRepository {
	return &BookingJobRepository{pool: pool}
}

// Enqueue schedules booking creation for an invoice. Re-enqueueing an
// existing job resets it to a fresh pending state unless it already
// completed.
func (r *BookingJobRepository) Enqueue(ctx context.Context, invoiceID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO booking_jobs (invoice_id)
		VALUES ($1)
		ON CONFLICT (invoice_id) DO UPDATE
		SET status=$2, attempts=0, last_error='', run_at=now(), updated_at=now()
		WHERE booking_jobs.status <> $3`,
		invoiceID, JobPending, JobDone,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("invoice not found for booking job", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to enqueue booking job", err)
	}
	return nil
}

// ClaimDue picks up to limit due jobs, bumping their attempt counters.
// SKIP LOCKED keeps concurrent workers off each other's claims.
func (r *BookingJobRepository) ClaimDue(ctx context.Context, limit int) ([]BookingJob, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE booking_jobs
		SET attempts = attempts + 1, updated_at = now()
		WHERE invoice_id IN (
			SELECT invoice_id FROM booking_jobs
			WHERE status=$1 AND run_at <= now()
			ORDER BY run_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING invoice_id, booking_id, status, attempts, last_error, run_at, created_at`,
		JobPending, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim booking jobs", err)
	}
	defer rows.Close()

	var jobs []BookingJob
	for rows.Next() {
		var j BookingJob
		if err := rows.Scan(&j.InvoiceID, &j.BookingID, &j.Status, &j.Attempts, &j.LastError, &j.RunAt, &j.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking jobs", err)
	}
	return jobs, nil
}

// RecordBooking pins the created booking onto the job before the invoice
// link lands, so a retry never confirms a second booking for the invoice.
func (r *BookingJobRepository) RecordBooking(ctx context.Context, invoiceID, bookingID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE booking_jobs SET booking_id=$2, updated_at=now()
		WHERE invoice_id=$1`,
		invoiceID, bookingID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record booking on job", err)
	}
	return nil
}

func (r *BookingJobRepository) MarkDone(ctx context.Context, invoiceID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE booking_jobs SET status=$2, last_error='', updated_at=now()
		WHERE invoice_id=$1`,
		invoiceID, JobDone,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark booking job done", err)
	}
	return nil
}

// Reschedule keeps a failed attempt in the queue with a later run time;
// Fail parks it for the reconciliation pass once attempts are exhausted.
func (r *BookingJobRepository) Reschedule(ctx context.Context, invoiceID uuid.UUID, cause string, runAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE booking_jobs SET last_error=$2, run_at=$3, updated_at=now()
		WHERE invoice_id=$1`,
		invoiceID, cause, runAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule booking job", err)
	}
	return nil
}

func (r *BookingJobRepository) Fail(ctx context.Context, invoiceID uuid.UUID, cause string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE booking_jobs SET status=$2, last_error=$3, updated_at=now()
		WHERE invoice_id=$1`,
		invoiceID, JobFailed, cause,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark booking job failed", err)
	}
	return nil
}

// FindStuck returns jobs that have not completed within the given window,
// failed and still-pending alike.
func (r *BookingJobRepository) FindStuck(ctx context.Context, olderThan time.Duration) ([]BookingJob, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT invoice_id, booking_id, status, attempts, last_error, run_at, created_at
		FROM booking_jobs
		WHERE status <> $1 AND created_at <= now() - make_interval(secs => $2)
		ORDER BY created_at`,
		JobDone, olderThan.Seconds(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query stuck booking jobs", err)
	}
	defer rows.Close()

	var jobs []BookingJob
	for rows.Next() {
		var j BookingJob
		if err := rows.Scan(&j.InvoiceID, &j.BookingID, &j.Status, &j.Attempts, &j.LastError, &j.RunAt, &j.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read stuck booking jobs", err)
	}
	return jobs, nil
}

// Retry puts a parked failed job back into the pending queue.
func (r *BookingJobRepository) Retry(ctx context.Context, invoiceID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE booking_jobs SET status=$2, run_at=now(), updated_at=now()
		WHERE invoice_id=$1 AND status=$3`,
		invoiceID, JobPending, JobFailed,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to retry booking job", err)
	}
	return nil
}
