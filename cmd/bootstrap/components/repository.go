package components

import (
	repo_impl "booking-platform/internal/infra/repository"
	"booking-platform/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewRuleRepository,
			fx.As(new(usecase.RuleRepository)),
			fx.As(new(usecase.RuleReader)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
			fx.As(new(usecase.ConsumptionReader)),
		),
		fx.Annotate(
			repo_impl.NewInvoiceRepository,
			fx.As(new(usecase.InvoiceRepository)),
		),
		fx.Annotate(
			repo_impl.NewPaymentRepository,
			fx.As(new(usecase.PaymentRepository)),
		),
		// Kept concrete: the pipeline worker drives claim and retry methods
		// beyond the enqueue interface the use case needs.
		repo_impl.NewBookingJobRepository,
		func(r *repo_impl.BookingJobRepository) usecase.BookingJobEnqueuer { return r },
	),
)
