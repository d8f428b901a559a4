package main

import (
	"context"
	"log/slog"

	"booking-platform/cmd/bootstrap"
	"booking-platform/internal/client"
	"booking-platform/internal/handler"
	"booking-platform/internal/infra/repository"
	"booking-platform/internal/pkg/clock"
	"booking-platform/internal/pkg/config"
	"booking-platform/internal/usecase"
	"booking-platform/internal/worker"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// The invoice service carries the whole payment-to-booking pipeline: it
// serves the invoice API, drains the booking job queue against the
// availability service, and runs the reconciliation sweep.
func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			newBookingClient,
			newBookingJobWorker,
			newReconciler,
		),
		fx.Invoke(
			handler.NewInvoiceRouter,
			startPipeline,
			func(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
				bootstrap.StartServer(lc, engine, cfg.Invoice, logger)
			},
		),
	)
	bootstrap.Run(app)
}

func newBookingClient(cfg config.Config) worker.BookingConfirmer {
	return client.NewBookingClient(cfg.Pipeline.BookingServiceURL, cfg.Pipeline.RequestTimeout)
}

func newBookingJobWorker(
	jobs *repository.BookingJobRepository,
	invoices usecase.InvoiceUseCase,
	bookingClient worker.BookingConfirmer,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *worker.BookingJobWorker {
	return worker.NewBookingJobWorker(jobs, invoices, bookingClient, clk, cfg.Pipeline, logger)
}

func newReconciler(jobs *repository.BookingJobRepository, cfg config.Config, logger *slog.Logger) *worker.Reconciler {
	return worker.NewReconciler(jobs, cfg.Pipeline, logger)
}

func startPipeline(lc fx.Lifecycle, w *worker.BookingJobWorker, r *worker.Reconciler) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go w.Run(ctx)
			return r.Start(ctx)
		},
		OnStop: func(_ context.Context) error {
			cancel()
			r.Stop()
			return nil
		},
	})
}
