package services

import (
	"testing"

	"gastropass_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBenefitsService(t *testing.T, freeQuota int) BenefitsService {
	t.Helper()
	st := newTestStore(t)
	return NewBenefitsService(repositories.NewBenefitsRepository(st, freeQuota))
}

func TestBenefits_LedgerSeedsOnFirstRead(t *testing.T) {
	svc := newBenefitsService(t, 3)

	res, err := svc.Ledger()
	require.NoError(t, err)
	assert.Equal(t, 3, res.Ledger.FreeBenefitsRemaining)
	assert.Equal(t, 0, res.Ledger.TotalBenefitsUsed)
	assert.Nil(t, res.Ledger.LastBenefitDate)
}

func TestBenefits_ConsumeDecrements(t *testing.T) {
	svc := newBenefitsService(t, 3)

	res, err := svc.Consume()
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Remaining)
	assert.Contains(t, res.Message, "2")

	ledger, err := svc.Ledger()
	require.NoError(t, err)
	assert.Equal(t, 2, ledger.Ledger.FreeBenefitsRemaining)
	assert.Equal(t, 1, ledger.Ledger.TotalBenefitsUsed)
	assert.NotNil(t, ledger.Ledger.LastBenefitDate)
}

func TestBenefits_ConsumeExhaustedIsDeniedNotError(t *testing.T) {
	svc := newBenefitsService(t, 3)

	for i := 0; i < 3; i++ {
		res, err := svc.Consume()
		require.NoError(t, err)
		assert.True(t, res.Success)
	}

	res, err := svc.Consume()
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 0, res.Remaining)
	assert.Contains(t, res.Message, "Assine um plano")

	// Denied attempts do not count as usage.
	ledger, err := svc.Ledger()
	require.NoError(t, err)
	assert.Equal(t, 3, ledger.Ledger.TotalBenefitsUsed)
}

func TestBenefits_ResetRestoresQuota(t *testing.T) {
	svc := newBenefitsService(t, 3)

	_, err := svc.Consume()
	require.NoError(t, err)

	res, err := svc.Reset()
	require.NoError(t, err)
	assert.Equal(t, 3, res.Ledger.FreeBenefitsRemaining)
	assert.Equal(t, 0, res.Ledger.TotalBenefitsUsed)
	assert.Nil(t, res.Ledger.LastBenefitDate)
}
