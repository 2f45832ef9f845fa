package quickbooks

import (
	"context"

	"github.com/finsight/biz-advisor-go/internal/domain"
)

// StaticTokenSource serves one pre-issued access token for every realm.
// Token acquisition and refresh are owned by the surrounding platform;
// this process only consumes the current token.
type StaticTokenSource struct {
	token string
}

// NewStaticTokenSource wraps a pre-issued bearer token.
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

// AccessToken returns the configured token, or an unauthorized error
// when none is configured.
func (s *StaticTokenSource) AccessToken(_ context.Context, _ string) (string, error) {
	if s.token == "" {
		return "", &domain.ErrUpstreamUnauthorized{Service: "quickbooks", Detail: "access token not configured"}
	}
	return s.token, nil
}
