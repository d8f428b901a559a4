package components

import (
	"booking-platform/internal/handler/api"
	"booking-platform/internal/pkg/config"
	"booking-platform/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRuleHandler,
		func(uc usecase.AvailabilityUseCase, cfg config.Config) *api.AvailabilityHandler {
			return api.NewAvailabilityHandler(uc, cfg.Location.ID)
		},
		api.NewBookingHandler,
		api.NewInvoiceHandler,
		api.NewPaymentHandler,
	),
)
