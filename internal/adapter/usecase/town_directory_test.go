package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"emerald-ads/internal/core/domain"
	"emerald-ads/internal/core/port/mocks"
)

func TestTownDirectoryLoadsOnce(t *testing.T) {
	backend := mocks.NewMockCampaignBackend(t)
	errs := domain.NewValidationErrors()
	d := NewTownDirectory(backend, errs, testLogger())

	backend.EXPECT().ListTowns(mock.Anything).Return([]domain.Town{{Name: "Springfield"}}, nil).Once()

	d.Load(context.Background())
	d.Load(context.Background())

	assert.Equal(t, []domain.TownOption{{Value: "Springfield", Label: "Springfield"}}, d.Options())
	assert.False(t, d.Loading())
}

func TestTownDirectoryRetriesAfterFailure(t *testing.T) {
	backend := mocks.NewMockCampaignBackend(t)
	errs := domain.NewValidationErrors()
	d := NewTownDirectory(backend, errs, testLogger())

	backend.EXPECT().ListTowns(mock.Anything).Return(nil, errors.New("timeout")).Once()
	backend.EXPECT().ListTowns(mock.Anything).Return([]domain.Town{{Name: "Ogdenville"}}, nil).Once()

	d.Load(context.Background())
	assert.Empty(t, d.Options())
	msg, ok := errs.Get(domain.CategoryTowns)
	require.True(t, ok)
	assert.Equal(t, domain.MsgTownsLoad, msg)

	d.Load(context.Background())
	assert.False(t, errs.Has(domain.CategoryTowns))
	_, ok = d.Resolve("Ogdenville")
	assert.True(t, ok)
	_, ok = d.Resolve("ogdenville")
	assert.False(t, ok, "resolution is exact")
}
