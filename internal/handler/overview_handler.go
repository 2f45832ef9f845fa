package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/finsight/biz-advisor-go/internal/service"
)

// ============================================================
// Financial overview — GET /v1/companies/{realmId}/financial-overview
// ============================================================

func financialOverviewHandler(svc *service.Overview, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/companies/{realmId}/financial-overview")
		defer span.End()

		realmID := chi.URLParam(r, "realmId")
		if realmID == "" {
			writeError(w, http.StatusBadRequest, "realm_id is required")
			return
		}
		span.SetAttributes(attribute.String("realm.id", realmID))

		overview, err := svc.GetFinancialOverview(ctx, realmID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, overview)
	}
}

// ============================================================
// Dashboard KPIs — GET /v1/companies/{realmId}/kpis
// ============================================================

func dashboardKPIsHandler(svc *service.Overview, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/companies/{realmId}/kpis")
		defer span.End()

		realmID := chi.URLParam(r, "realmId")
		if realmID == "" {
			writeError(w, http.StatusBadRequest, "realm_id is required")
			return
		}
		span.SetAttributes(attribute.String("realm.id", realmID))

		kpis, err := svc.GetDashboardKPIs(ctx, realmID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, kpis)
	}
}

// ============================================================
// Contextual alerts — GET /v1/companies/{realmId}/alerts
// ============================================================

func contextualAlertsHandler(svc *service.Overview, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/companies/{realmId}/alerts")
		defer span.End()

		realmID := chi.URLParam(r, "realmId")
		if realmID == "" {
			writeError(w, http.StatusBadRequest, "realm_id is required")
			return
		}
		span.SetAttributes(attribute.String("realm.id", realmID))

		alerts, err := svc.GetContextualAlerts(ctx, realmID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, alerts)
	}
}

// ============================================================
// Historical sales — GET /v1/companies/{realmId}/sales/history
// ============================================================

func historicalSalesHandler(svc *service.Overview, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/companies/{realmId}/sales/history")
		defer span.End()

		realmID := chi.URLParam(r, "realmId")
		if realmID == "" {
			writeError(w, http.StatusBadRequest, "realm_id is required")
			return
		}
		span.SetAttributes(attribute.String("realm.id", realmID))

		q := r.URL.Query()
		granularity := q.Get("granularity")
		if granularity == "" {
			granularity = "daily"
		}

		endDate := time.Now().UTC()
		if v := q.Get("end_date"); v != "" {
			parsed, err := time.Parse("2006-01-02", v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
				return
			}
			endDate = parsed
		}
		startDate := endDate.AddDate(0, 0, -90)
		if v := q.Get("start_date"); v != "" {
			parsed, err := time.Parse("2006-01-02", v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
				return
			}
			startDate = parsed
		}

		series, err := svc.GetHistoricalSales(ctx, realmID, startDate, endDate, granularity)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"sales": series,
			"count": len(series),
		})
	}
}

// ============================================================
// Company profile — GET /v1/companies/{realmId}/company
// ============================================================

func companyProfileHandler(svc *service.Overview, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/companies/{realmId}/company")
		defer span.End()

		realmID := chi.URLParam(r, "realmId")
		if realmID == "" {
			writeError(w, http.StatusBadRequest, "realm_id is required")
			return
		}
		span.SetAttributes(attribute.String("realm.id", realmID))

		info, err := svc.GetCompanyProfile(ctx, realmID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, info)
	}
}
