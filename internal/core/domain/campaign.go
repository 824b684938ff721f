package domain

import "github.com/shopspring/decimal"

// Campaign represents an advertising campaign as stored by the campaign
// backend. Keywords are kept in their flattened persisted form, see
// KeywordSeparator.
type Campaign struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Keywords     string          `json:"keywords"`
	BidAmount    decimal.Decimal `json:"bidAmount"`    // paid per view
	CampaignFund decimal.Decimal `json:"campaignFund"` // reserved from the owner's balance on create
	Status       bool            `json:"status"`
	Town         string          `json:"town"`
	Radius       int             `json:"radius"` // km around Town
	UserID       int64           `json:"userId"`
}

// CampaignPayload is the body of a create or update call. ID is only set
// when an existing campaign is updated.
type CampaignPayload struct {
	ID           *int64
	Name         string
	Keywords     string
	BidAmount    decimal.Decimal
	CampaignFund decimal.Decimal
	Status       bool
	Town         string
	Radius       int
	UserID       int64
}
