// Package handler wires the HTTP surface: routing, middleware and
// request/response mapping around the services.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/finsight/biz-advisor-go/internal/infra/observability"
	"github.com/finsight/biz-advisor-go/internal/service"
)

var tracer = otel.Tracer("handler")

// RouterConfig carries the wiring the router needs beyond the services.
type RouterConfig struct {
	// JWTSecret enables bearer auth on /v1 when non-empty.
	JWTSecret      string
	AllowedOrigins []string
}

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(overviewSvc *service.Overview, assetsSvc *service.Assets, metrics *observability.Metrics, logger *zap.Logger, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(requestCounterMiddleware(metrics))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler())
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {
		if cfg.JWTSecret != "" {
			r.Use(JWTAuthMiddleware(cfg.JWTSecret, logger))
		}

		// Financial overview pipeline
		r.Get("/companies/{realmId}/financial-overview", financialOverviewHandler(overviewSvc, logger))
		r.Get("/companies/{realmId}/kpis", dashboardKPIsHandler(overviewSvc, logger))
		r.Get("/companies/{realmId}/alerts", contextualAlertsHandler(overviewSvc, logger))
		r.Get("/companies/{realmId}/sales/history", historicalSalesHandler(overviewSvc, logger))
		r.Get("/companies/{realmId}/company", companyProfileHandler(overviewSvc, logger))

		// Asset insights (pure compute over the posted asset list)
		r.Post("/assets/insights", assetInsightsHandler(assetsSvc, logger))

		// Pipeline metrics summary
		r.Get("/metrics/pipeline", pipelineMetricsHandler(metrics))
	})

	return r
}

// requestCounterMiddleware feeds the total/error request counters the
// pipeline metrics endpoint reports on.
func requestCounterMiddleware(metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := "success"
			if ww.Status() >= 400 {
				status = "error"
			}
			metrics.IncrRequest(status)
		})
	}
}

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func pipelineMetricsHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.GetPipelineSnapshot())
	}
}
