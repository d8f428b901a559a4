package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-platform/internal/handler/api"
	"booking-platform/internal/handler/middleware"
	"booking-platform/internal/metrics"
	"booking-platform/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// NewRulesRouter wires the rule management service: CRUD over default and
// custom availability rules.
func NewRulesRouter(engine *gin.Engine, cfg config.Config, ruleHandler *api.RuleHandler) {
	setupMiddleware(engine, cfg, "rules")

	apiV1 := engine.Group("/api/v1")
	addRoutes(apiV1, []route{
		{Method: http.MethodPost, Path: "/defaultRule", Handler: ruleHandler.CreateDefaultRule},
		{Method: http.MethodPut, Path: "/defaultRule/:id", Handler: ruleHandler.UpdateDefaultRule},
		{Method: http.MethodDelete, Path: "/defaultRule/:id", Handler: ruleHandler.DeleteDefaultRule},
		{Method: http.MethodPost, Path: "/customRule", Handler: ruleHandler.CreateCustomRule},
		{Method: http.MethodPut, Path: "/customRule/:id", Handler: ruleHandler.UpdateCustomRule},
		{Method: http.MethodDelete, Path: "/customRule/:id", Handler: ruleHandler.DeleteCustomRule},
	})
}

// NewAvailabilityRouter wires the availability service: slot queries plus the
// booking confirmation endpoint they feed into.
func NewAvailabilityRouter(engine *gin.Engine, cfg config.Config, availabilityHandler *api.AvailabilityHandler, bookingHandler *api.BookingHandler) {
	setupMiddleware(engine, cfg, "availability")

	apiV1 := engine.Group("/api/v1")
	addRoutes(apiV1, []route{
		{Method: http.MethodGet, Path: "/checkAvailability/:date", Handler: availabilityHandler.CheckAvailability},
		{Method: http.MethodPost, Path: "/confirmBooking", Handler: bookingHandler.ConfirmBooking},
		{Method: http.MethodGet, Path: "/booking/bookingId/:id", Handler: bookingHandler.GetBooking},
	})
}

// NewInvoiceRouter wires the invoice service.
func NewInvoiceRouter(engine *gin.Engine, cfg config.Config, invoiceHandler *api.InvoiceHandler) {
	setupMiddleware(engine, cfg, "invoice")

	apiV1 := engine.Group("/api/v1")
	addRoutes(apiV1, []route{
		{Method: http.MethodPost, Path: "/invoice", Handler: invoiceHandler.CreateInvoice},
		{Method: http.MethodGet, Path: "/invoice/invoiceId/:id", Handler: invoiceHandler.GetInvoice},
	})
}

// NewPaymentRouter wires the payment service.
func NewPaymentRouter(engine *gin.Engine, cfg config.Config, paymentHandler *api.PaymentHandler) {
	setupMiddleware(engine, cfg, "payment")

	apiV1 := engine.Group("/api/v1")
	addRoutes(apiV1, []route{
		{Method: http.MethodPost, Path: "/payment", Handler: paymentHandler.RecordPayment},
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, service string) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(metrics.GinMiddleware(service))

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
