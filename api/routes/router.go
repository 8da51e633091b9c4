package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orderdesk/orderdesk-backend/api/controllers"
	"github.com/orderdesk/orderdesk-backend/api/middleware"
	"github.com/orderdesk/orderdesk-backend/api/web"
	"github.com/orderdesk/orderdesk-backend/internal/catalog"
	"github.com/orderdesk/orderdesk-backend/internal/orders"
	"github.com/orderdesk/orderdesk-backend/pkg/config"
	"github.com/orderdesk/orderdesk-backend/pkg/db"
	"github.com/orderdesk/orderdesk-backend/pkg/logger"
	"github.com/orderdesk/orderdesk-backend/pkg/metrics"
	pkgredis "github.com/orderdesk/orderdesk-backend/pkg/redis"
)

// Dependencies carries everything the router mounts. IdempotencyStore
// and RedisPinger are nil when Redis is not configured.
type Dependencies struct {
	Config           *config.Config
	Logger           *logger.Logger
	DBPinger         db.Pinger
	RedisPinger      pkgredis.Pinger
	IdempotencyStore pkgredis.IdempotencyStore
	Registry         *prometheus.Registry
	CatalogService   catalog.Service
	OrderService     orders.Service
	WebHandlers      *web.Handlers
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(deps.Registry)

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.DBPinger, deps.RedisPinger))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS())

		r.Get("/partners", controllers.ListPartners(deps.CatalogService, deps.Logger))
		r.Get("/products", controllers.ListProducts(deps.CatalogService, deps.Logger))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(deps.OrderService, deps.Logger))
			r.Get("/{orderId}", controllers.GetOrder(deps.OrderService, deps.Logger))
			r.With(middleware.Idempotency(deps.IdempotencyStore, deps.Logger)).
				Post("/", controllers.CreateOrder(deps.OrderService, deps.Logger))
		})
	})

	if deps.WebHandlers != nil {
		r.Get("/", deps.WebHandlers.Index)
		r.Get("/order/{orderId}", deps.WebHandlers.OrderDetail)
		r.Get("/create_order", deps.WebHandlers.CreateOrderForm)
		r.Post("/create_order", deps.WebHandlers.CreateOrderSubmit)
	}

	return r
}
