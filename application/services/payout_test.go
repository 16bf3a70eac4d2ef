package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-stake/domain/entities"
)

func TestSplitPot(t *testing.T) {
	tests := []struct {
		name          string
		pot           uint64
		share         uint64
		wantReferrer  uint64
		wantCandidate uint64
	}{
		{"bounty only", 5_000_000, 80, 4_000_000, 1_000_000},
		{"bounty plus spam", 5_500_000, 80, 4_400_000, 1_100_000},
		{"remainder goes to referrer", 7, 80, 6, 1},
		{"single unit", 1, 80, 1, 0},
		{"even split", 10, 50, 5, 5},
		{"large share", 1_000, 99, 990, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			referrer, candidate, err := SplitPot(entities.NewAmount(tt.pot), tt.share)
			require.NoError(t, err)
			assert.Equal(t, entities.NewAmount(tt.wantReferrer), referrer)
			assert.Equal(t, entities.NewAmount(tt.wantCandidate), candidate)

			sum, err := referrer.Add(candidate)
			require.NoError(t, err)
			assert.Equal(t, entities.NewAmount(tt.pot), sum)
		})
	}
}

func TestSplitPot_ShareOutOfRange(t *testing.T) {
	for _, share := range []uint64{0, 100, 150} {
		_, _, err := SplitPot(entities.NewAmount(100), share)
		assert.Error(t, err, "share %d", share)
	}
}

func TestSplitPot_LargePot(t *testing.T) {
	pot, err := entities.ParseAmount("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	require.NoError(t, err)

	referrer, candidate, err := SplitPot(pot, 80)
	require.NoError(t, err)

	sum, err := referrer.Add(candidate)
	require.NoError(t, err)
	assert.Equal(t, pot, sum)
	assert.True(t, candidate.LessThan(referrer))
}
