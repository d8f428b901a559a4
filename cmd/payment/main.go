package main

import (
	"log/slog"

	"booking-platform/cmd/bootstrap"
	"booking-platform/internal/handler"
	"booking-platform/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(
			handler.NewPaymentRouter,
			func(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
				bootstrap.StartServer(lc, engine, cfg.Payment, logger)
			},
		),
	)
	bootstrap.Run(app)
}
