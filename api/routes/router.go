package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blvshy/doodleart-backend/api/controllers"
	"github.com/blvshy/doodleart-backend/api/middleware"
	"github.com/blvshy/doodleart-backend/internal/cart"
	"github.com/blvshy/doodleart-backend/internal/catalog"
	checkoutsvc "github.com/blvshy/doodleart-backend/internal/checkout"
	"github.com/blvshy/doodleart-backend/internal/content"
	"github.com/blvshy/doodleart-backend/internal/notifications"
	"github.com/blvshy/doodleart-backend/pkg/config"
	"github.com/blvshy/doodleart-backend/pkg/logger"
	"github.com/blvshy/doodleart-backend/pkg/metrics"
)

type Deps struct {
	Config        *config.Config
	Logger        *logger.Logger
	Carts         *cart.Registry
	Catalog       catalog.Service
	Checkout      checkoutsvc.Service
	Notifications notifications.Service
	Content       content.Service
	HTTPMetrics   *metrics.HTTPMetrics
	MetricsGather prometheus.Gatherer
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(d.Logger),
		middleware.RequestID(d.Logger),
		middleware.Logging(d.Logger),
		middleware.Metrics(d.HTTPMetrics),
		middleware.CORS(d.Config.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(d.Config))
	})

	if d.MetricsGather != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.MetricsGather, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.BuyerSession(d.Config.Session, d.Logger))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(d.Catalog, d.Logger))
			r.Get("/{itemId}", controllers.CatalogGet(d.Catalog, d.Logger))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(d.Carts, d.Logger))
			r.Delete("/", controllers.CartClear(d.Carts, d.Logger))
			r.Post("/items", controllers.CartAddItem(d.Carts, d.Catalog, d.Notifications, d.Logger))
			r.Patch("/items/{key}", controllers.CartUpdateLine(d.Carts, d.Logger))
			r.Delete("/items/{key}", controllers.CartRemoveLine(d.Carts, d.Logger))
		})

		r.Route("/custom-orders", func(r chi.Router) {
			r.Get("/options", controllers.CustomOptions())
			r.Post("/quote", controllers.CustomQuote(d.Logger))
			r.Post("/", controllers.CustomOrderCreate(d.Carts, d.Notifications, d.Logger))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", controllers.CheckoutOpen(d.Checkout, d.Logger))
			r.Get("/", controllers.CheckoutGet(d.Checkout, d.Logger))
			r.Post("/submit", controllers.CheckoutSubmit(d.Checkout, d.Logger))
			r.Delete("/", controllers.CheckoutClose(d.Checkout, d.Logger))
		})

		r.Get("/notifications", controllers.NotificationsDrain(d.Notifications, d.Logger))

		r.Route("/content", func(r chi.Router) {
			r.Get("/faq", controllers.ContentFAQ(d.Content))
			r.Get("/team", controllers.ContentTeam(d.Content))
			r.Get("/payment-methods", controllers.ContentPaymentMethods(d.Content))
		})
	})

	return r
}
