package router

import (
	"net/http"
	"strings"

	"stylehub/internal/handler"
	"stylehub/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	reviewHandler *handler.ReviewHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	paymentHandler *handler.PaymentHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function: the collection, a single product, or a
	// product's review sub-resource.
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/products" || r.URL.Path == "/api/products/" {
			productHandler.List(w, r)
			return
		}
		if strings.HasSuffix(strings.TrimRight(r.URL.Path, "/"), "/reviews") {
			reviewHandler.Handle(w, r)
			return
		}
		productHandler.GetByID(w, r)
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	mux.HandleFunc("/api/cart", cartHandler.Get)
	mux.HandleFunc("/api/cart/items", cartHandler.Items)

	mux.HandleFunc("/api/checkout", checkoutHandler.PlaceOrder)
	mux.HandleFunc("/api/checkout/upi", checkoutHandler.CreateUPIRequest)
	mux.HandleFunc("/api/orders/last", checkoutHandler.LastOrder)

	mux.HandleFunc("/api/payments", paymentHandler.Handle)

	// Apply middleware in order: Recovery -> Logging -> RequestID -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.RequestID(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
