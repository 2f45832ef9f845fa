// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the domain/service
// layer from concrete implementations.
package port

import (
	"context"

	"github.com/finsight/biz-advisor-go/internal/domain"
)

// ReportFetcher retrieves accounting reports for one company realm.
type ReportFetcher interface {
	FetchReport(ctx context.Context, realmID, reportName string, params map[string]string) (*domain.Report, error)
	GetCompanyInfo(ctx context.Context, realmID string) (*domain.CompanyInfo, error)
}

// TokenSource supplies the bearer token used against the accounting API.
type TokenSource interface {
	AccessToken(ctx context.Context, realmID string) (string, error)
}
