package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/uniformworks/portal-backend/api/controllers"
	"github.com/uniformworks/portal-backend/api/middleware"
	bundlesvc "github.com/uniformworks/portal-backend/internal/bundles"
	cartsvc "github.com/uniformworks/portal-backend/internal/cart"
	checkoutsvc "github.com/uniformworks/portal-backend/internal/checkout"
	ordersvc "github.com/uniformworks/portal-backend/internal/orders"
	productsvc "github.com/uniformworks/portal-backend/internal/products"
	usersvc "github.com/uniformworks/portal-backend/internal/users"
	"github.com/uniformworks/portal-backend/pkg/config"
	"github.com/uniformworks/portal-backend/pkg/logger"
	"github.com/uniformworks/portal-backend/pkg/metrics"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Store       controllers.Pinger
	Users       usersvc.Service
	Products    productsvc.Service
	Orders      ordersvc.Service
	Bundles     bundlesvc.Service
	CartManager cartsvc.Manager
	Checkout    checkoutsvc.Service
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.Store))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.ListUsers(deps.Users, deps.Logger))
			r.Post("/", controllers.CreateUser(deps.Users, deps.Logger))
			r.Get("/{id}", controllers.GetUser(deps.Users, deps.Logger))
			r.Put("/{id}", controllers.UpdateUser(deps.Users, deps.Logger))
			r.Delete("/{id}", controllers.DeleteUser(deps.Users, deps.Logger))
		})

		r.Get("/products", controllers.ListProducts(deps.Products, deps.Logger))
		r.Get("/orders", controllers.ListOrders(deps.Orders, deps.Logger))

		r.Route("/bundles", func(r chi.Router) {
			r.Get("/", controllers.ListBundles(deps.Bundles, deps.Logger))
			r.Post("/", controllers.CreateBundle(deps.Bundles, deps.Logger))
			r.Get("/{id}", controllers.GetBundle(deps.Bundles, deps.Logger))
			r.Put("/{id}", controllers.UpdateBundle(deps.Bundles, deps.Logger))
			r.Delete("/{id}", controllers.DeleteBundle(deps.Bundles, deps.Logger))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(deps.Logger))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(deps.CartManager, deps.Logger))
				r.Delete("/", controllers.ClearCart(deps.CartManager, deps.Logger))
				r.Post("/open", controllers.OpenCart(deps.CartManager, deps.Logger))
				r.Post("/close", controllers.CloseCart(deps.CartManager, deps.Logger))
				r.Post("/items", controllers.AddCartItem(deps.CartManager, deps.Logger))
				r.Put("/items/{id}", controllers.UpdateCartItem(deps.CartManager, deps.Logger))
				r.Delete("/items/{id}", controllers.RemoveCartItem(deps.CartManager, deps.Logger))
			})

			r.Get("/checkout/quote", controllers.CheckoutQuote(deps.Checkout, deps.CartManager, deps.Logger))
			r.Post("/checkout", controllers.Checkout(deps.Checkout, deps.CartManager, deps.Logger))
		})
	})

	return r
}
