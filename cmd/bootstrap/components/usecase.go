package components

import (
	"booking-platform/internal/pkg/clock"
	"booking-platform/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewRuleUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewBookingUseCase,
		usecase.NewInvoiceUseCase,
	),
)
