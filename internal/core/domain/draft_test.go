package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editCampaign() Campaign {
	return Campaign{
		ID:           42,
		Name:         "Spring Sale",
		Keywords:     "shoes, sale",
		BidAmount:    decimal.RequireFromString("2.00"),
		CampaignFund: decimal.RequireFromString("50.00"),
		Status:       true,
		Town:         "Springfield",
		Radius:       5,
		UserID:       7,
	}
}

func TestDraftBidAgainstFund(t *testing.T) {
	cases := []struct {
		bid, fund string
		flagged   bool
	}{
		{"2.00", "50.00", false},
		{"50", "50.00", false},
		{"50.01", "50", true},
		{"100", "5", true},
		{"0.01", "0", true},
		{"abc", "5", false},
		{"10", "", false},
	}
	for _, tc := range cases {
		var d Draft
		errs := NewValidationErrors()
		require.NoError(t, d.SetField(FieldCampaignFund, tc.fund, errs))
		require.NoError(t, d.SetField(FieldBidAmount, tc.bid, errs))

		assert.Equal(t, tc.flagged, errs.Has(CategoryBidAmount), "bid %s fund %s", tc.bid, tc.fund)
		assert.Equal(t, tc.bid, d.BidAmount, "flagged input is still accepted")
	}
}

func TestDraftBidErrorClearedWhenFundRaised(t *testing.T) {
	var d Draft
	errs := NewValidationErrors()
	require.NoError(t, d.SetField(FieldCampaignFund, "5", errs))
	require.NoError(t, d.SetField(FieldBidAmount, "10", errs))
	require.True(t, errs.Has(CategoryBidAmount))

	require.NoError(t, d.SetField(FieldCampaignFund, "20", errs))
	assert.False(t, errs.Has(CategoryBidAmount))
}

func TestDraftStatusCoercion(t *testing.T) {
	var d Draft
	require.NoError(t, d.SetField(FieldStatus, "true", nil))
	assert.True(t, d.Status)
	require.NoError(t, d.SetField(FieldStatus, "false", nil))
	assert.False(t, d.Status)
}

func TestDraftUnknownField(t *testing.T) {
	var d Draft
	err := d.SetField("userId", "9", nil)
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestDraftLoadForEdit(t *testing.T) {
	var d Draft
	d.Keywords.Add("stale")
	d.LoadForEdit(editCampaign())

	require.True(t, d.Editing())
	assert.Equal(t, int64(42), *d.ID)
	assert.Equal(t, "Spring Sale", d.Name)
	assert.Equal(t, []string{"shoes", "sale"}, d.Keywords.Keywords())
	assert.Equal(t, "2", d.BidAmount)
	assert.Equal(t, "50", d.CampaignFund)
	assert.Equal(t, "Springfield", d.Town)
	assert.Equal(t, "5", d.Radius)
	assert.True(t, d.Status)
}

func TestDraftFinancialFieldsLockedWhileEditing(t *testing.T) {
	var d Draft
	d.LoadForEdit(editCampaign())
	errs := NewValidationErrors()

	err := d.SetField(FieldBidAmount, "99", errs)
	assert.True(t, errors.Is(err, ErrFinancialFieldLocked))
	err = d.SetField(FieldCampaignFund, "1", errs)
	assert.True(t, errors.Is(err, ErrFinancialFieldLocked))

	assert.Equal(t, "2", d.BidAmount)
	assert.Equal(t, "50", d.CampaignFund)
	assert.False(t, errs.Has(CategoryBidAmount))

	require.NoError(t, d.SetField(FieldName, "Summer Sale", errs))
	assert.Equal(t, "Summer Sale", d.Name)
}

func TestDraftReset(t *testing.T) {
	var d Draft
	d.LoadForEdit(editCampaign())
	d.Reset()

	assert.False(t, d.Editing())
	assert.Equal(t, Draft{}, d)
	assert.Equal(t, 0, d.Keywords.Len())
}

func TestDraftPayload(t *testing.T) {
	var d Draft
	d.Name = "Spring Sale"
	d.Keywords = ParseKeywords("shoes, sale")
	d.BidAmount = "2.00"
	d.CampaignFund = "50.00"
	d.Town = "Springfield"
	d.Radius = " 5"
	d.Status = true

	p, err := d.Payload(7)
	require.NoError(t, err)
	assert.Nil(t, p.ID)
	assert.Equal(t, "shoes, sale", p.Keywords)
	assert.True(t, p.BidAmount.Equal(decimal.RequireFromString("2")))
	assert.True(t, p.CampaignFund.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, 5, p.Radius)
	assert.Equal(t, int64(7), p.UserID)
	assert.True(t, p.Status)
}

func TestDraftPayloadRejectsBadNumbers(t *testing.T) {
	base := Draft{BidAmount: "1", CampaignFund: "5", Radius: "3"}

	d := base
	d.BidAmount = "0.001"
	_, err := d.Payload(1)
	assert.True(t, errors.Is(err, ErrInvalidBid))

	d = base
	d.CampaignFund = "-1"
	_, err = d.Payload(1)
	assert.True(t, errors.Is(err, ErrInvalidFund))
	assert.True(t, errors.Is(err, ErrInvalidAmount))

	d = base
	d.Radius = "0"
	_, err = d.Payload(1)
	assert.True(t, errors.Is(err, ErrInvalidRadius))
}

func TestDraftPayloadKeepsID(t *testing.T) {
	var d Draft
	d.LoadForEdit(editCampaign())
	p, err := d.Payload(7)
	require.NoError(t, err)
	require.NotNil(t, p.ID)
	assert.Equal(t, int64(42), *p.ID)
}

func TestDraftPayloadEditSkipsFinancialRangeChecks(t *testing.T) {
	c := editCampaign()
	c.BidAmount = decimal.Zero
	c.CampaignFund = decimal.RequireFromString("-5")

	var d Draft
	d.LoadForEdit(c)
	p, err := d.Payload(7)
	require.NoError(t, err)
	assert.True(t, p.BidAmount.IsZero())
	assert.True(t, p.CampaignFund.Equal(decimal.NewFromInt(-5)))

	d.CampaignFund = ""
	p, err = d.Payload(7)
	require.NoError(t, err)
	assert.True(t, p.CampaignFund.IsZero())

	d.Radius = "0"
	_, err = d.Payload(7)
	assert.ErrorIs(t, err, ErrInvalidRadius, "radius stays editable and checked")
}

func TestDraftMissingRequired(t *testing.T) {
	d := Draft{Name: "x", Town: "y"}
	assert.True(t, d.MissingRequired())
	d.Keywords.Add("k")
	assert.False(t, d.MissingRequired())
	d.Name = "  "
	assert.True(t, d.MissingRequired())
}
