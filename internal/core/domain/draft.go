package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Field names accepted by Draft.SetField. They match the JSON names of the
// campaign representation.
type Field string

const (
	FieldName         Field = "name"
	FieldBidAmount    Field = "bidAmount"
	FieldCampaignFund Field = "campaignFund"
	FieldStatus       Field = "status"
	FieldTown         Field = "town"
	FieldRadius       Field = "radius"
)

var (
	ErrUnknownField         = errors.New("unknown campaign field")
	ErrFinancialFieldLocked = errors.New("bid amount and campaign fund are read-only while editing")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidRadius        = errors.New("invalid radius")

	ErrInvalidBid  = fmt.Errorf("bid amount: %w", ErrInvalidAmount)
	ErrInvalidFund = fmt.Errorf("campaign fund: %w", ErrInvalidAmount)
)

// minBid is the smallest accepted bid per view.
var minBid = decimal.New(1, -2)

// Draft is the in-memory campaign being authored or edited. Bid, fund and
// radius hold the raw text the user typed; they are parsed when the draft
// is validated or turned into a payload. A draft with a non-nil ID is in
// edit mode and its financial terms cannot change.
type Draft struct {
	ID           *int64
	Name         string
	Keywords     KeywordSet
	BidAmount    string
	CampaignFund string
	Status       bool
	Town         string
	Radius       string
}

func (d *Draft) Editing() bool { return d.ID != nil }

// LoadForEdit replaces the whole draft with c and switches to edit mode.
func (d *Draft) LoadForEdit(c Campaign) {
	id := c.ID
	radius := ""
	if c.Radius != 0 {
		radius = strconv.Itoa(c.Radius)
	}
	*d = Draft{
		ID:           &id,
		Name:         c.Name,
		Keywords:     ParseKeywords(c.Keywords),
		BidAmount:    c.BidAmount.String(),
		CampaignFund: c.CampaignFund.String(),
		Status:       c.Status,
		Town:         c.Town,
		Radius:       radius,
	}
}

// Reset returns the draft to an empty create-mode draft.
func (d *Draft) Reset() { *d = Draft{} }

// Clone returns a deep copy, used to snapshot the draft for a submission.
func (d *Draft) Clone() Draft {
	c := *d
	c.Keywords = d.Keywords.Clone()
	if d.ID != nil {
		id := *d.ID
		c.ID = &id
	}
	return c
}

// SetField updates a single field from its textual form. Writes to the bid
// amount or the campaign fund fail with ErrFinancialFieldLocked in edit mode
// and leave the draft unchanged. After a bid or fund write the bid/fund
// cross-check is re-run against errs; the value is kept even when flagged.
func (d *Draft) SetField(name Field, value string, errs *ValidationErrors) error {
	switch name {
	case FieldName:
		d.Name = value
	case FieldBidAmount, FieldCampaignFund:
		if d.Editing() {
			return fmt.Errorf("set %s: %w", name, ErrFinancialFieldLocked)
		}
		if name == FieldBidAmount {
			d.BidAmount = value
		} else {
			d.CampaignFund = value
		}
		d.checkBid(errs)
	case FieldStatus:
		d.Status = value == "true"
	case FieldTown:
		d.SetTown(value)
	case FieldRadius:
		d.Radius = value
	default:
		return fmt.Errorf("set %q: %w", name, ErrUnknownField)
	}
	return nil
}

// SetTown sets the town; an empty value clears the selection.
func (d *Draft) SetTown(value string) { d.Town = value }

// BidExceedsFund reports whether both amounts parse and the bid is larger.
func (d *Draft) BidExceedsFund() bool {
	bid, err := ParseAmount(d.BidAmount)
	if err != nil {
		return false
	}
	fund, err := ParseAmount(d.CampaignFund)
	if err != nil {
		return false
	}
	return bid.GreaterThan(fund)
}

func (d *Draft) checkBid(errs *ValidationErrors) {
	if errs == nil {
		return
	}
	if strings.TrimSpace(d.CampaignFund) != "" && d.BidExceedsFund() {
		errs.Set(CategoryBidAmount, MsgBidExceedsFund)
		return
	}
	errs.Clear(CategoryBidAmount)
}

// MissingRequired reports whether name, keywords or town is absent.
func (d *Draft) MissingRequired() bool {
	return strings.TrimSpace(d.Name) == "" || d.Keywords.Len() == 0 || d.Town == ""
}

// Payload converts the draft into the transport body for userID. The
// keyword list is flattened here and nowhere else. In edit mode the bid and
// fund are sent back as loaded: they cannot be changed, so they are not
// range checked, and text that does not parse is sent as zero.
func (d *Draft) Payload(userID int64) (CampaignPayload, error) {
	bid, fund, err := d.financialTerms()
	if err != nil {
		return CampaignPayload{}, err
	}
	radius, err := strconv.Atoi(strings.TrimSpace(d.Radius))
	if err != nil || radius <= 0 {
		return CampaignPayload{}, fmt.Errorf("radius %q: %w", d.Radius, ErrInvalidRadius)
	}

	p := CampaignPayload{
		Name:         d.Name,
		Keywords:     d.Keywords.String(),
		BidAmount:    bid,
		CampaignFund: fund,
		Status:       d.Status,
		Town:         d.Town,
		Radius:       radius,
		UserID:       userID,
	}
	if d.ID != nil {
		id := *d.ID
		p.ID = &id
	}
	return p, nil
}

func (d *Draft) financialTerms() (bid, fund decimal.Decimal, err error) {
	if d.Editing() {
		bid, _ = ParseAmount(d.BidAmount)
		fund, _ = ParseAmount(d.CampaignFund)
		return bid, fund, nil
	}
	bid, err = ParseAmount(d.BidAmount)
	if err != nil || bid.LessThan(minBid) {
		return bid, fund, fmt.Errorf("%q: %w", d.BidAmount, ErrInvalidBid)
	}
	fund, err = ParseAmount(d.CampaignFund)
	if err != nil || fund.IsNegative() {
		return bid, fund, fmt.Errorf("%q: %w", d.CampaignFund, ErrInvalidFund)
	}
	return bid, fund, nil
}

// ParseAmount parses a decimal amount typed by the user.
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}
