package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"booking-platform/internal/client"
	"booking-platform/internal/domain/invoice"
	reqdto "booking-platform/internal/handler/dto/request"
	resdto "booking-platform/internal/handler/dto/response"
	"booking-platform/internal/infra/repository"
	"booking-platform/internal/metrics"
	"booking-platform/internal/pkg/clock"
	"booking-platform/internal/pkg/config"
	"booking-platform/internal/usecase"

	"github.com/google/uuid"
)

const claimBatchSize = 10

// BookingConfirmer is the outbound call the worker makes per job; satisfied
// by client.BookingClient.
type BookingConfirmer interface {
	ConfirmBooking(ctx context.Context, payload reqdto.ConfirmBookingRequest) (*resdto.BookingResponse, error)
}

// JobStore is the queue surface the worker drives; satisfied by
// repository.BookingJobRepository.
type JobStore interface {
	ClaimDue(ctx context.Context, limit int) ([]repository.BookingJob, error)
	RecordBooking(ctx context.Context, invoiceID, bookingID uuid.UUID) error
	MarkDone(ctx context.Context, invoiceID uuid.UUID) error
	Reschedule(ctx context.Context, invoiceID uuid.UUID, cause string, runAt time.Time) error
	Fail(ctx context.Context, invoiceID uuid.UUID, cause string) error
}

// BookingJobWorker drains the booking_jobs queue: for every paid invoice it
// posts a confirmBooking request and links the resulting booking back onto
// the invoice. Transient failures reschedule with backoff; capacity
// exhaustion and validation refusals park the job for reconciliation.
type BookingJobWorker struct {
	jobs     JobStore
	invoices usecase.InvoiceUseCase
	client   BookingConfirmer
	clock    clock.Clock
	cfg      config.PipelineConfig
	log      *slog.Logger
}

func NewBookingJobWorker(
	jobs JobStore,
	invoices usecase.InvoiceUseCase,
	bookingClient BookingConfirmer,
	clk clock.Clock,
	cfg config.PipelineConfig,
	log *slog.Logger,
) *BookingJobWorker {
	return &BookingJobWorker{
		jobs:     jobs,
		invoices: invoices,
		client:   bookingClient,
		clock:    clk,
		cfg:      cfg,
		log:      log,
	}
}

// Run polls until the context is cancelled.
func (w *BookingJobWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce claims one batch of due jobs and processes them serially. Exposed
// for tests and for the reconciliation pass.
func (w *BookingJobWorker) RunOnce(ctx context.Context) {
	jobs, err := w.jobs.ClaimDue(ctx, claimBatchSize)
	if err != nil {
		w.log.ErrorContext(ctx, "failed to claim booking jobs", "error", err)
		return
	}
	for _, job := range jobs {
		w.process(ctx, job)
	}
}

func (w *BookingJobWorker) process(ctx context.Context, job repository.BookingJob) {
	inv, err := w.invoices.GetInvoice(ctx, job.InvoiceID)
	if err != nil {
		// An invoice that vanished cannot be booked; park the job.
		w.fail(ctx, job.InvoiceID, err)
		return
	}

	// A linked invoice means an earlier attempt got all the way through and
	// only the done-mark is missing.
	if inv.BookingID != nil {
		w.finish(ctx, job.InvoiceID, *inv.BookingID)
		return
	}

	bookingID := job.BookingID
	if bookingID == nil {
		booked, err := w.client.ConfirmBooking(ctx, bookingPayload(inv))
		if err != nil {
			switch {
			case errors.Is(err, client.ErrSlotUnavailable), errors.Is(err, client.ErrRejected):
				w.fail(ctx, job.InvoiceID, err)
			case job.Attempts >= w.cfg.MaxAttempts:
				w.fail(ctx, job.InvoiceID, err)
			default:
				w.reschedule(ctx, job, err)
			}
			return
		}
		bookingID = &booked.BookingID
		// Record the booking before linking so a retry resumes here rather
		// than confirming a second booking for the same invoice.
		if err := w.jobs.RecordBooking(ctx, job.InvoiceID, booked.BookingID); err != nil {
			w.log.ErrorContext(ctx, "failed to record booking on job",
				"invoice_id", job.InvoiceID, "booking_id", booked.BookingID, "error", err)
		}
	}

	if err := w.invoices.CompleteBooking(ctx, inv.ID, *bookingID); err != nil {
		w.reschedule(ctx, job, err)
		return
	}

	w.finish(ctx, job.InvoiceID, *bookingID)
}

func (w *BookingJobWorker) finish(ctx context.Context, invoiceID, bookingID uuid.UUID) {
	if err := w.jobs.MarkDone(ctx, invoiceID); err != nil {
		w.log.ErrorContext(ctx, "failed to mark booking job done", "invoice_id", invoiceID, "error", err)
		return
	}
	metrics.BookingJobs.WithLabelValues("done").Inc()
	w.log.InfoContext(ctx, "booking created for invoice",
		"invoice_id", invoiceID, "booking_id", bookingID)
}

func (w *BookingJobWorker) reschedule(ctx context.Context, job repository.BookingJob, cause error) {
	metrics.BookingJobs.WithLabelValues("rescheduled").Inc()
	runAt := w.clock.Now().Add(backoff(job.Attempts))
	if err := w.jobs.Reschedule(ctx, job.InvoiceID, cause.Error(), runAt); err != nil {
		w.log.ErrorContext(ctx, "failed to reschedule booking job", "invoice_id", job.InvoiceID, "error", err)
		return
	}
	w.log.WarnContext(ctx, "booking job rescheduled",
		"invoice_id", job.InvoiceID, "attempts", job.Attempts, "run_at", runAt, "cause", cause)
}

func (w *BookingJobWorker) fail(ctx context.Context, invoiceID uuid.UUID, cause error) {
	metrics.BookingJobs.WithLabelValues("failed").Inc()
	if err := w.jobs.Fail(ctx, invoiceID, cause.Error()); err != nil {
		w.log.ErrorContext(ctx, "failed to park booking job", "invoice_id", invoiceID, "error", err)
		return
	}
	w.log.ErrorContext(ctx, "booking job failed", "invoice_id", invoiceID, "cause", cause)
}

// backoff doubles per attempt from one second, capped at a minute.
func backoff(attempts int) time.Duration {
	d := time.Second << uint(attempts)
	if d > time.Minute {
		return time.Minute
	}
	return d
}

// bookingPayload rebuilds the confirmBooking request from the paid invoice:
// the invoice's ledger travels with the booking so capacity consumption can
// fall back to credit quantities.
func bookingPayload(inv *invoice.Invoice) reqdto.ConfirmBookingRequest {
	id := inv.ID.String()
	items := make([]reqdto.LineItemRequest, len(inv.LineItems))
	for i, it := range inv.LineItems {
		items[i] = reqdto.LineItemRequest{
			Type:      string(it.Type),
			Timestamp: it.Timestamp,
			Code:      it.Code,
			Label:     it.Label,
			Quantity:  it.Quantity,
			Amount:    it.Amount,
		}
	}
	return reqdto.ConfirmBookingRequest{
		LocationID:     inv.LocationID,
		InvoiceID:      &id,
		Name:           inv.Contact.Name,
		Email:          inv.Contact.Email,
		Phone:          inv.Contact.Phone,
		NumberOfSpaces: inv.NumberOfSpaces,
		CheckinTime:    inv.CheckinTime,
		Date:           inv.Date.Format("2006-01-02"),
		Paid:           true,
		LineItems:      items,
		DepositPrice:   inv.DepositPrice,
	}
}
