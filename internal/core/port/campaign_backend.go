package port

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"emerald-ads/internal/core/domain"
)

// CampaignBackend is the remote service that owns towns, keywords, user
// balances and campaigns. It is an outbound port; the REST adapter lives in
// adapter/backend.
type CampaignBackend interface {
	// ListTowns returns the town catalog.
	ListTowns(ctx context.Context) ([]domain.Town, error)
	// SearchKeywords returns keyword suggestions for a search string, in
	// the order the backend ranks them.
	SearchKeywords(ctx context.Context, search string) ([]string, error)
	// UpdateBalance sets the absolute account balance of a user.
	UpdateBalance(ctx context.Context, userID int64, balance decimal.Decimal) error
	// CreateCampaign stores a new campaign.
	CreateCampaign(ctx context.Context, p domain.CampaignPayload) (*domain.Campaign, error)
	// UpdateCampaign replaces an existing campaign.
	UpdateCampaign(ctx context.Context, id int64, p domain.CampaignPayload) (*domain.Campaign, error)
	// ListCampaigns returns every campaign the backend knows about.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
}

// BackendError describes a failed backend call. Unreachable is set when no
// response was received at all; otherwise StatusCode and the optional
// server-provided Message describe the rejection.
type BackendError struct {
	Op          string
	StatusCode  int
	Message     string
	Unreachable bool
	Err         error
}

func (e *BackendError) Error() string {
	switch {
	case e.Unreachable:
		return fmt.Sprintf("%s: backend unreachable: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("%s: request failed with status code %d", e.Op, e.StatusCode)
	}
}

func (e *BackendError) Unwrap() error { return e.Err }

// Accepted reports whether the backend answered with a 2xx status, i.e. the
// request was applied even though its response could not be used.
func (e *BackendError) Accepted() bool {
	return !e.Unreachable && e.StatusCode >= 200 && e.StatusCode < 300
}
