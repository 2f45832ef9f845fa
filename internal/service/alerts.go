package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/finsight/biz-advisor-go/internal/domain"
)

// GetContextualAlerts evaluates the threshold rules against the current
// KPIs and overview. Both inputs are fetched concurrently.
func (s *Overview) GetContextualAlerts(ctx context.Context, realmID string) (*domain.AlertsResponse, error) {
	ctx, span := tracer.Start(ctx, "Overview.GetContextualAlerts")
	defer span.End()
	span.SetAttributes(attribute.String("realm.id", realmID))

	var (
		kpis     *domain.DashboardKPIs
		overview *domain.FinancialOverview
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		k, err := s.GetDashboardKPIs(gCtx, realmID)
		if err != nil {
			return fmt.Errorf("dashboard kpis: %w", err)
		}
		kpis = k
		return nil
	})
	g.Go(func() error {
		o, err := s.GetFinancialOverview(gCtx, realmID)
		if err != nil {
			return fmt.Errorf("financial overview: %w", err)
		}
		overview = o
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	alerts := buildAlerts(kpis, overview)
	return &domain.AlertsResponse{
		Alerts:      alerts,
		Count:       len(alerts),
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
	}, nil
}

func buildAlerts(kpis *domain.DashboardKPIs, overview *domain.FinancialOverview) []domain.Alert {
	alerts := []domain.Alert{}

	if runway := kpis.RunwayMonths; runway != nil && *runway < 6 {
		level := "warning"
		if *runway < 3 {
			level = "critical"
		}
		alerts = append(alerts, domain.Alert{
			ID:      uuid.NewString(),
			Level:   level,
			Title:   "Low Cash Runway",
			Message: fmt.Sprintf("Current runway of %.1f months is below recommended threshold.", *runway),
			Action:  "Review expenses and explore financing options",
			Metric:  "runway_months",
		})
	}

	if margin := kpis.NetMarginPct; margin != nil && *margin < 0.05 {
		alerts = append(alerts, domain.Alert{
			ID:      uuid.NewString(),
			Level:   "warning",
			Title:   "Low Net Margin",
			Message: fmt.Sprintf("Net margin of %.1f%% is below healthy threshold.", *margin*100),
			Action:  "Review pricing strategy and cost structure",
			Metric:  "net_margin_pct",
		})
	}

	if cf := overview.KPIs.CashFlowMTD; cf != nil && *cf < 0 {
		alerts = append(alerts, domain.Alert{
			ID:      uuid.NewString(),
			Level:   "warning",
			Title:   "Negative Cash Flow",
			Message: fmt.Sprintf("Month-to-date cash flow is $%.2f.", *cf),
			Action:  "Monitor collections and manage payables",
			Metric:  "cash_flow_mtd",
		})
	}

	if cr := overview.Liquidity.CurrentRatio; cr != nil && *cr < 1.0 {
		alerts = append(alerts, domain.Alert{
			ID:      uuid.NewString(),
			Level:   "warning",
			Title:   "Low Liquidity Ratio",
			Message: fmt.Sprintf("Current ratio of %.2f indicates potential liquidity concerns.", *cr),
			Action:  "Review current assets and liabilities",
			Metric:  "current_ratio",
		})
	}

	if burn := overview.Cashflow.BurnRateMonthly; burn > 0 && kpis.Cash > 0 && kpis.Cash/burn < 3 {
		alerts = append(alerts, domain.Alert{
			ID:      uuid.NewString(),
			Level:   "critical",
			Title:   "High Burn Rate",
			Message: fmt.Sprintf("Monthly burn of $%.2f is consuming cash rapidly.", burn),
			Action:  "Implement immediate cost reduction measures",
			Metric:  "burn_rate_monthly",
		})
	}

	return alerts
}
