// Package service orchestrates report fetching, extraction and
// assembly into the responses served by the HTTP layer.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/finsight/biz-advisor-go/internal/domain"
	"github.com/finsight/biz-advisor-go/internal/finance"
	"github.com/finsight/biz-advisor-go/internal/infra/cache"
	"github.com/finsight/biz-advisor-go/internal/infra/observability"
	"github.com/finsight/biz-advisor-go/internal/port"
)

var tracer = otel.Tracer("service/overview")

// Clock returns the current time; injectable so period windows are
// deterministic in tests.
type Clock func() time.Time

// Overview builds the financial overview and related dashboard views
// from QuickBooks reports.
type Overview struct {
	reports     port.ReportFetcher
	store       cache.Store
	metrics     *observability.Metrics
	logger      *zap.Logger
	now         Clock
	overviewTTL time.Duration
	companyTTL  time.Duration
}

// NewOverview creates the overview service with all dependencies injected.
func NewOverview(
	reports port.ReportFetcher,
	store cache.Store,
	metrics *observability.Metrics,
	logger *zap.Logger,
	now Clock,
	overviewTTL, companyTTL time.Duration,
) *Overview {
	if now == nil {
		now = time.Now
	}
	return &Overview{
		reports:     reports,
		store:       store,
		metrics:     metrics,
		logger:      logger,
		now:         now,
		overviewTTL: overviewTTL,
		companyTTL:  companyTTL,
	}
}

// GetFinancialOverview fetches every report the overview needs and folds
// them into the composite response. Report fetches run sequentially; a
// failed fetch for any period fails the whole request rather than
// serving a partial overview.
func (s *Overview) GetFinancialOverview(ctx context.Context, realmID string) (*domain.FinancialOverview, error) {
	ctx, span := tracer.Start(ctx, "Overview.GetFinancialOverview")
	defer span.End()
	span.SetAttributes(attribute.String("realm.id", realmID))

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("financial_overview", time.Since(start))
	}()

	cacheKey := fmt.Sprintf("overview:%s", realmID)
	if b, ok := s.store.Get(ctx, cacheKey); ok {
		var cached domain.FinancialOverview
		if err := json.Unmarshal(b, &cached); err == nil {
			s.metrics.IncrCacheHit("overview")
			return &cached, nil
		}
	}
	s.metrics.IncrCacheMiss("overview")

	today := s.now().UTC()
	periods := finance.ComputePeriods(today)

	profit := make(map[string]domain.ProfitAndLossSnapshot, 4)
	for _, p := range []struct {
		key string
		rng finance.DateRange
	}{
		{domain.PeriodMTD, periods.MTD},
		{domain.PeriodQTD, periods.QTD},
		{domain.PeriodYTD, periods.YTD},
		{domain.PeriodLastMonth, periods.LastMonth},
	} {
		report, err := s.fetchReport(ctx, realmID, "ProfitAndLoss", withAccrual(p.rng.Params()))
		if err != nil {
			return nil, fmt.Errorf("profit and loss %s: %w", p.key, err)
		}
		snapshot, missing := finance.ProfitAndLossFromReport(report)
		s.logMissing(realmID, "ProfitAndLoss", missing)
		profit[p.key] = snapshot
	}

	// Monthly net income detail for trend and forecast.
	detailParams := withAccrual(periods.Last3Mo.Params())
	detailParams["columns"] = "month"
	detailReport, err := s.fetchReport(ctx, realmID, "ProfitAndLoss", detailParams)
	if err != nil {
		return nil, fmt.Errorf("profit and loss detail: %w", err)
	}
	monthlySeries := finance.MonthlyNetIncomeSeries(detailReport)

	bsReport, err := s.fetchReport(ctx, realmID, "BalanceSheet", withAccrual(map[string]string{"date_macro": "Today"}))
	if err != nil {
		return nil, fmt.Errorf("balance sheet: %w", err)
	}
	balanceSheet, missing := finance.BalanceSheetFromReport(bsReport)
	s.logMissing(realmID, "BalanceSheet", missing)

	cashflow := make(map[string]domain.CashFlowSnapshot, 3)
	for _, p := range []struct {
		key string
		rng finance.DateRange
	}{
		{domain.PeriodMTD, periods.MTD},
		{domain.PeriodLastMonth, periods.LastMonth},
		{domain.PeriodLast3Months, periods.Last3Mo},
	} {
		report, err := s.fetchReport(ctx, realmID, "CashFlow", withAccrual(p.rng.Params()))
		if err != nil {
			return nil, fmt.Errorf("cash flow %s: %w", p.key, err)
		}
		snapshot, missing := finance.CashFlowFromReport(report)
		s.logMissing(realmID, "CashFlow", missing)
		cashflow[p.key] = snapshot
	}

	overview := finance.AssembleOverview(finance.OverviewInput{
		Today:         today,
		Profit:        profit,
		BalanceSheet:  balanceSheet,
		Cashflow:      cashflow,
		MonthlySeries: monthlySeries,
		FiscalDays:    periods.FiscalDays,
	})

	if b, err := json.Marshal(&overview); err == nil {
		if err := s.store.Set(ctx, cacheKey, b, s.overviewTTL); err != nil {
			s.logger.Warn("overview cache write failed", zap.Error(err))
		}
	}

	return &overview, nil
}

// GetDashboardKPIs builds the reduced KPI card set: MTD revenue, net
// margin, cash and runway.
func (s *Overview) GetDashboardKPIs(ctx context.Context, realmID string) (*domain.DashboardKPIs, error) {
	ctx, span := tracer.Start(ctx, "Overview.GetDashboardKPIs")
	defer span.End()
	span.SetAttributes(attribute.String("realm.id", realmID))

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("dashboard_kpis", time.Since(start))
	}()

	today := s.now().UTC()
	periods := finance.ComputePeriods(today)

	mtdReport, err := s.fetchReport(ctx, realmID, "ProfitAndLoss", withAccrual(periods.MTD.Params()))
	if err != nil {
		return nil, fmt.Errorf("profit and loss mtd: %w", err)
	}
	mtd, missing := finance.ProfitAndLossFromReport(mtdReport)
	s.logMissing(realmID, "ProfitAndLoss", missing)

	bsReport, err := s.fetchReport(ctx, realmID, "BalanceSheet", withAccrual(map[string]string{"date_macro": "Today"}))
	if err != nil {
		return nil, fmt.Errorf("balance sheet: %w", err)
	}
	balanceSheet, missing := finance.BalanceSheetFromReport(bsReport)
	s.logMissing(realmID, "BalanceSheet", missing)

	lastMonthCF, err := s.fetchReport(ctx, realmID, "CashFlow", withAccrual(periods.LastMonth.Params()))
	if err != nil {
		return nil, fmt.Errorf("cash flow last month: %w", err)
	}
	cfLastMonth, missing := finance.CashFlowFromReport(lastMonthCF)
	s.logMissing(realmID, "CashFlow", missing)

	operating := cfLastMonth.NetCashOperating
	if operating == 0 {
		operating = cfLastMonth.NetChangeCash
	}
	burn := finance.BurnRate(operating)
	runway := finance.Runway(balanceSheet.Cash, burn)

	netMargin := finance.SafeDivide(mtd.NetIncome, mtd.TotalIncome)

	return &domain.DashboardKPIs{
		RevenueMTD:   round2(mtd.TotalIncome),
		NetMarginPct: round4Ptr(netMargin),
		Cash:         round2(balanceSheet.Cash),
		RunwayMonths: round2Ptr(runway),
	}, nil
}

// GetHistoricalSales fetches a P&L with time columns and extracts the
// revenue series at the requested granularity.
func (s *Overview) GetHistoricalSales(ctx context.Context, realmID string, startDate, endDate time.Time, granularity string) ([]domain.SalesPoint, error) {
	ctx, span := tracer.Start(ctx, "Overview.GetHistoricalSales")
	defer span.End()
	span.SetAttributes(
		attribute.String("realm.id", realmID),
		attribute.String("granularity", granularity),
	)

	column, ok := map[string]string{
		"daily":   "day",
		"weekly":  "week",
		"monthly": "month",
	}[granularity]
	if !ok {
		return nil, &domain.ErrValidation{Field: "granularity", Message: "must be daily, weekly or monthly"}
	}
	if endDate.Before(startDate) {
		return nil, &domain.ErrValidation{Field: "end_date", Message: "must not precede start_date"}
	}

	params := withAccrual(finance.DateRange{Start: startDate, End: endDate}.Params())
	params["columns"] = column

	report, err := s.fetchReport(ctx, realmID, "ProfitAndLoss", params)
	if err != nil {
		return nil, fmt.Errorf("profit and loss series: %w", err)
	}
	return finance.RevenueTimeSeries(report, granularity), nil
}

// GetCompanyProfile fetches company metadata, cached per realm.
func (s *Overview) GetCompanyProfile(ctx context.Context, realmID string) (*domain.CompanyInfo, error) {
	ctx, span := tracer.Start(ctx, "Overview.GetCompanyProfile")
	defer span.End()
	span.SetAttributes(attribute.String("realm.id", realmID))

	cacheKey := fmt.Sprintf("company:%s", realmID)
	if b, ok := s.store.Get(ctx, cacheKey); ok {
		var cached domain.CompanyInfo
		if err := json.Unmarshal(b, &cached); err == nil {
			s.metrics.IncrCacheHit("company")
			return &cached, nil
		}
	}
	s.metrics.IncrCacheMiss("company")

	info, err := s.reports.GetCompanyInfo(ctx, realmID)
	if err != nil {
		s.metrics.IncrExternalError("quickbooks")
		return nil, err
	}

	if b, err := json.Marshal(info); err == nil {
		if err := s.store.Set(ctx, cacheKey, b, s.companyTTL); err != nil {
			s.logger.Warn("company cache write failed", zap.Error(err))
		}
	}
	return info, nil
}

func (s *Overview) fetchReport(ctx context.Context, realmID, reportName string, params map[string]string) (*domain.Report, error) {
	report, err := s.reports.FetchReport(ctx, realmID, reportName, params)
	if err != nil {
		s.metrics.IncrExternalError("quickbooks")
		s.logger.Error("report fetch failed",
			zap.String("realm_id", realmID),
			zap.String("report", reportName),
			zap.Error(err),
		)
		return nil, err
	}
	s.metrics.IncrReportFetch(reportName)
	return report, nil
}

func (s *Overview) logMissing(realmID, reportName string, missing []string) {
	for _, field := range missing {
		s.metrics.IncrUnmatchedField(reportName, field)
	}
	if len(missing) > 0 {
		s.logger.Debug("report fields unmatched, treated as zero",
			zap.String("realm_id", realmID),
			zap.String("report", reportName),
			zap.Strings("fields", missing),
		)
	}
}

func withAccrual(params map[string]string) map[string]string {
	params["accounting_method"] = "Accrual"
	return params
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return finance.Float(round2(*v))
}

func round4Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return finance.Float(math.Round(*v*10000) / 10000)
}
