package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/finsight/biz-advisor-go/internal/assets"
	"github.com/finsight/biz-advisor-go/internal/domain"
	"github.com/finsight/biz-advisor-go/internal/infra/observability"
)

// Assets serves the asset insights endpoint. Pure compute over the
// caller-provided list, no external calls.
type Assets struct {
	metrics *observability.Metrics
	logger  *zap.Logger
	now     Clock
}

// NewAssets creates the asset insights service.
func NewAssets(metrics *observability.Metrics, logger *zap.Logger, now Clock) *Assets {
	if now == nil {
		now = time.Now
	}
	return &Assets{metrics: metrics, logger: logger, now: now}
}

// ComputeInsights validates the asset list and computes depreciation,
// health and fleet KPIs as of today.
func (s *Assets) ComputeInsights(ctx context.Context, list []domain.Asset) (*domain.AssetInsights, error) {
	_, span := tracer.Start(ctx, "Assets.ComputeInsights")
	defer span.End()
	span.SetAttributes(attribute.Int("assets.count", len(list)))

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("asset_insights", time.Since(start))
	}()

	for _, asset := range list {
		if asset.AssetID == "" {
			return nil, &domain.ErrValidation{Field: "asset_id", Message: "required for every asset"}
		}
		if asset.PurchasePrice < 0 {
			return nil, &domain.ErrValidation{Field: "purchase_price", Message: "must not be negative"}
		}
	}

	insights := assets.ComputeInsights(list, s.now().UTC())
	return &insights, nil
}
