package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorsSnapshot(t *testing.T) {
	errs := NewValidationErrors()
	errs.Set(CategoryTowns, MsgTownsLoad)

	snap := errs.Snapshot()
	require.Len(t, snap, len(ErrorCategories))
	require.NotNil(t, snap[CategoryTowns])
	assert.Equal(t, MsgTownsLoad, *snap[CategoryTowns])
	assert.Nil(t, snap[CategoryNetwork])
}

func TestValidationErrorsClear(t *testing.T) {
	errs := NewValidationErrors()
	errs.Set(CategoryBalance, MsgInsufficientBalance)
	errs.Set(CategoryBidAmount, MsgBidExceedsFund)
	errs.Set(CategoryTowns, MsgTownsLoad)

	errs.Clear(CategoryBalance, CategoryBidAmount)
	assert.False(t, errs.Has(CategoryBalance))
	assert.False(t, errs.Has(CategoryBidAmount))
	assert.True(t, errs.Has(CategoryTowns))

	errs.Clear()
	assert.False(t, errs.Has(CategoryTowns))
}
