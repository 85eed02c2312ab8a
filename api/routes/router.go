package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/afromanapp/afroman-backend/api/controllers"
	"github.com/afromanapp/afroman-backend/api/middleware"
	"github.com/afromanapp/afroman-backend/internal/cart"
	catalogsvc "github.com/afromanapp/afroman-backend/internal/catalog"
	"github.com/afromanapp/afroman-backend/internal/entitlement"
	"github.com/afromanapp/afroman-backend/internal/products"
	"github.com/afromanapp/afroman-backend/internal/watchlist"
	"github.com/afromanapp/afroman-backend/pkg/auth/session"
	"github.com/afromanapp/afroman-backend/pkg/config"
	"github.com/afromanapp/afroman-backend/pkg/logger"
	"github.com/afromanapp/afroman-backend/pkg/metrics"
)

type sessionManager interface {
	session.Checker
	Create(context.Context, string) error
	Revoke(context.Context, string) error
}

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             controllers.Pinger
	Redis          controllers.Pinger
	Metrics        *metrics.HTTPMetrics
	SessionManager sessionManager
	ProductCatalog *products.Catalog
	CartService    cart.Service
	WatchlistSvc   watchlist.Service
	CatalogService catalogsvc.Service
	EntitlementSvc entitlement.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Device(logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.ProductCatalog, logg))
			r.Get("/{productId}", controllers.ProductDetail(deps.ProductCatalog, logg))
			r.Get("/{productId}/checkout", controllers.ProductCheckout(deps.ProductCatalog, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(deps.CartService, logg))
			r.Post("/items", controllers.CartAddItem(deps.CartService, logg))
			r.Delete("/items", controllers.CartRemoveItem(deps.CartService, logg))
			r.Delete("/", controllers.CartClear(deps.CartService, logg))
		})

		r.Route("/watchlist", func(r chi.Router) {
			r.Get("/", controllers.WatchlistList(deps.WatchlistSvc, logg))
			r.Post("/toggle", controllers.WatchlistToggle(deps.WatchlistSvc, logg))
		})

		r.Get("/movies", controllers.MovieSync(deps.CatalogService, logg))
		r.Get("/music-videos", controllers.MusicVideoList(deps.CatalogService, logg))

		r.Route("/session", func(r chi.Router) {
			r.Get("/", controllers.SessionFetch(deps.EntitlementSvc, logg))
			r.Post("/login", controllers.SessionLogin(deps.EntitlementSvc, logg))
			r.Post("/refresh", controllers.SessionRefresh(deps.EntitlementSvc, logg))
			r.Delete("/", controllers.SessionLogout(deps.EntitlementSvc, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", controllers.AdminLogin(cfg, deps.SessionManager, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminAuth(cfg.JWT, deps.SessionManager, logg))
				r.Post("/logout", controllers.AdminLogout(deps.SessionManager, logg))
				r.Post("/movies", controllers.AdminMovieCreate(deps.CatalogService, logg))
				r.Delete("/movies/{movieId}", controllers.AdminMovieDelete(deps.CatalogService, logg))
			})
		})
	})

	return r
}
