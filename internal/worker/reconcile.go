package worker

import (
	"context"
	"log/slog"
	"time"

	"booking-platform/internal/infra/repository"
	"booking-platform/internal/metrics"
	"booking-platform/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// SweepStore is the queue surface the reconciliation pass reads and
// requeues; satisfied by repository.BookingJobRepository.
type SweepStore interface {
	FindStuck(ctx context.Context, olderThan time.Duration) ([]repository.BookingJob, error)
	Retry(ctx context.Context, invoiceID uuid.UUID) error
}

// Reconciler periodically sweeps the booking job queue for invoices that
// missed the processing SLO. Parked failed jobs go back into the queue for
// another round of attempts; jobs still pending past the SLO are surfaced in
// the logs for an operator.
type Reconciler struct {
	jobs SweepStore
	cfg  config.PipelineConfig
	log  *slog.Logger
	cron *cron.Cron
}

func NewReconciler(jobs SweepStore, cfg config.PipelineConfig, log *slog.Logger) *Reconciler {
	return &Reconciler{
		jobs: jobs,
		cfg:  cfg,
		log:  log,
		cron: cron.New(),
	}
}

// Start registers the sweep on the configured schedule and launches the cron
// scheduler. The returned error only ever reflects a bad schedule spec.
func (r *Reconciler) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.cfg.ReconcileSpec, func() {
		r.RunOnce(ctx)
	})
	if err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

func (r *Reconciler) Stop() {
	<-r.cron.Stop().Done()
}

// RunOnce performs one sweep. Exposed for tests.
func (r *Reconciler) RunOnce(ctx context.Context) {
	stuck, err := r.jobs.FindStuck(ctx, r.cfg.ReconcileSLO)
	if err != nil {
		r.log.ErrorContext(ctx, "reconciliation sweep failed", "error", err)
		return
	}

	for _, job := range stuck {
		switch {
		case job.Status == repository.JobFailed && job.Attempts < 2*r.cfg.MaxAttempts:
			if err := r.jobs.Retry(ctx, job.InvoiceID); err != nil {
				r.log.ErrorContext(ctx, "failed to requeue booking job",
					"invoice_id", job.InvoiceID, "error", err)
				continue
			}
			metrics.ReconciledInvoices.WithLabelValues("requeued").Inc()
			r.log.InfoContext(ctx, "requeued failed booking job",
				"invoice_id", job.InvoiceID, "attempts", job.Attempts, "last_error", job.LastError)
		default:
			metrics.ReconciledInvoices.WithLabelValues("flagged").Inc()
			r.log.WarnContext(ctx, "invoice exceeded booking SLO",
				"invoice_id", job.InvoiceID, "status", job.Status,
				"attempts", job.Attempts, "last_error", job.LastError)
		}
	}
}
