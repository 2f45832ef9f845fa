package handler

import (
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/finsight/biz-advisor-go/internal/domain"
	"github.com/finsight/biz-advisor-go/internal/service"
)

// ============================================================
// Asset insights — POST /v1/assets/insights
// ============================================================

func assetInsightsHandler(svc *service.Assets, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/assets/insights")
		defer span.End()

		var req struct {
			Assets []domain.Asset `json:"assets"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		span.SetAttributes(attribute.Int("assets.count", len(req.Assets)))

		insights, err := svc.ComputeInsights(ctx, req.Assets)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, insights)
	}
}
