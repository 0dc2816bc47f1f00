package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/onnwee/meteodaten/backend/internal/api/handlers"
	"github.com/onnwee/meteodaten/backend/internal/apierr"
	"github.com/onnwee/meteodaten/backend/internal/config"
	"github.com/onnwee/meteodaten/backend/internal/meteodata"
	"github.com/onnwee/meteodaten/backend/internal/middleware"
)

// Router is the fully wrapped HTTP handler for the service.
type Router struct {
	handler     http.Handler
	rateLimiter *middleware.RateLimiter
}

// NewRouter registers every route and wraps them in the middleware chain.
func NewRouter(cfg *config.Config, loader meteodata.Loader) *Router {
	r := mux.NewRouter()
	r.Use(middleware.Tracing, middleware.Metrics)

	// Data
	data := handlers.NewMeteodatenHandler(loader, cfg.StrictErrorStatus)
	r.Handle("/api/py/meteodaten", middleware.Compress(middleware.ETag(data))).
		Methods(http.MethodGet, http.MethodHead)

	// Docs
	if cfg.EnableDocs {
		r.HandleFunc("/api/py/openapi.json", handlers.OpenAPI).Methods(http.MethodGet, http.MethodHead)
		r.HandleFunc("/api/py/docs", handlers.Docs).Methods(http.MethodGet, http.MethodHead)
	}

	// Health and metrics
	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/health/ready", handlers.Ready(loader)).Methods(http.MethodGet, http.MethodHead)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		apierr.WriteErrorWithContext(w, req, apierr.RouteNotFound())
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		apierr.WriteErrorWithContext(w, req, apierr.MethodNotAllowed())
	})

	rt := &Router{}
	var h http.Handler = r
	if cfg.EnableRateLimit {
		rt.rateLimiter = middleware.NewRateLimiter(
			cfg.RateLimitGlobal, cfg.RateLimitGlobalBurst,
			cfg.RateLimitPerIP, cfg.RateLimitPerIPBurst,
		).TrustProxyHeaders(cfg.TrustProxy)
		h = rt.rateLimiter.Limit(h)
	}
	h = middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSAllowedOrigins))(h)
	h = middleware.SecurityHeaders(h)
	h = middleware.RequestLogger(h)
	h = middleware.RequestID(h)
	h = middleware.RecoverWithSentry(h)
	rt.handler = h

	return rt
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.handler.ServeHTTP(w, r)
}

// Close stops background work owned by the middleware chain.
func (rt *Router) Close() {
	if rt.rateLimiter != nil {
		rt.rateLimiter.Stop()
	}
}
