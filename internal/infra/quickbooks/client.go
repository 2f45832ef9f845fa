// Package quickbooks is the HTTP adapter for the QuickBooks Online
// reporting API.
package quickbooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/finsight/biz-advisor-go/internal/domain"
	"github.com/finsight/biz-advisor-go/internal/infra/resilience"
	"github.com/finsight/biz-advisor-go/internal/port"
)

var tracer = otel.Tracer("quickbooks")

const minorVersion = "73"

// Client fetches reports and company metadata from QuickBooks Online.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     port.TokenSource
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
	logger     *zap.Logger
}

// NewClient creates a QuickBooks API client.
func NewClient(httpClient *http.Client, baseURL string, tokens port.TokenSource, cb *gobreaker.CircuitBreaker, cfg resilience.Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		tokens:     tokens,
		cb:         cb,
		cfg:        cfg,
		logger:     logger,
	}
}

// FetchReport fetches one report (e.g. ProfitAndLoss, BalanceSheet,
// CashFlow) with retry, circuit breaker, and tracing. Auth failures and
// other 4xx responses are not retried.
func (c *Client) FetchReport(ctx context.Context, realmID, reportName string, params map[string]string) (*domain.Report, error) {
	ctx, span := tracer.Start(ctx, "Client.FetchReport")
	defer span.End()
	span.SetAttributes(
		attribute.String("realm.id", realmID),
		attribute.String("report.name", reportName),
	)

	endpoint := fmt.Sprintf("%s/v3/company/%s/reports/%s", c.baseURL, realmID, reportName)

	var report domain.Report
	if err := c.getJSON(ctx, realmID, endpoint, params, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetCompanyInfo fetches the company info resource for a realm.
func (c *Client) GetCompanyInfo(ctx context.Context, realmID string) (*domain.CompanyInfo, error) {
	ctx, span := tracer.Start(ctx, "Client.GetCompanyInfo")
	defer span.End()
	span.SetAttributes(attribute.String("realm.id", realmID))

	endpoint := fmt.Sprintf("%s/v3/company/%s/companyinfo/%s", c.baseURL, realmID, realmID)

	var payload companyInfoEnvelope
	if err := c.getJSON(ctx, realmID, endpoint, nil, &payload); err != nil {
		return nil, err
	}
	return &domain.CompanyInfo{
		CompanyName:          payload.CompanyInfo.CompanyName,
		LegalName:            payload.CompanyInfo.LegalName,
		Country:              payload.CompanyInfo.Country,
		FiscalYearStartMonth: payload.CompanyInfo.FiscalYearStartMonth,
		CompanyStartDate:     payload.CompanyInfo.CompanyStartDate,
	}, nil
}

// companyInfoEnvelope mirrors the QuickBooks companyinfo payload, which uses
// CamelCase keys unlike the snake_case dashboard response.
type companyInfoEnvelope struct {
	CompanyInfo struct {
		CompanyName          string `json:"CompanyName"`
		LegalName            string `json:"LegalName"`
		Country              string `json:"Country"`
		FiscalYearStartMonth string `json:"FiscalYearStartMonth"`
		CompanyStartDate     string `json:"CompanyStartDate"`
	} `json:"CompanyInfo"`
}

func (c *Client) getJSON(ctx context.Context, realmID, endpoint string, params map[string]string, out any) error {
	token, err := c.tokens.AccessToken(ctx, realmID)
	if err != nil {
		return &domain.ErrUpstreamUnauthorized{Service: "quickbooks", Detail: "no access token for realm"}
	}

	_, err = c.cb.Execute(func() (any, error) {
		innerErr := resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return err
			}
			req.URL.RawQuery = buildQuery(params)
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("Accept", "application/json")

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			switch {
			case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
				body := readBody(resp.Body)
				c.logger.Warn("quickbooks unauthorized response",
					zap.Int("status", resp.StatusCode),
					zap.String("realm_id", realmID),
				)
				return resilience.Permanent(&domain.ErrUpstreamUnauthorized{Service: "quickbooks", Detail: body})
			case resp.StatusCode >= 500:
				return &domain.ErrUpstream{Service: "quickbooks", StatusCode: resp.StatusCode, Body: readBody(resp.Body)}
			case resp.StatusCode >= 400:
				return resilience.Permanent(&domain.ErrUpstream{Service: "quickbooks", StatusCode: resp.StatusCode, Body: readBody(resp.Body)})
			}

			return json.NewDecoder(resp.Body).Decode(out)
		})
		if innerErr != nil {
			return nil, innerErr
		}
		return nil, nil
	})

	if err != nil {
		var unauth *domain.ErrUpstreamUnauthorized
		var upstream *domain.ErrUpstream
		switch {
		case errors.As(err, &unauth):
			return unauth
		case errors.As(err, &upstream):
			return upstream
		case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
			return &domain.ErrCircuitOpen{Service: "quickbooks"}
		default:
			return &domain.ErrExternalService{Service: "quickbooks", Err: err}
		}
	}
	return nil
}

func buildQuery(params map[string]string) string {
	q := url.Values{"minorversion": {minorVersion}}
	for k, v := range params {
		q.Set(k, v)
	}
	return q.Encode()
}

func readBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	return string(b)
}
