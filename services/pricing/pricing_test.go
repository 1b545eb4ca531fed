package pricing

import (
	"math"
	"testing"
	"time"

	"haviaa/models"
	"haviaa/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var confirmedAt = time.Date(2025, time.January, 17, 15, 30, 0, 0, time.UTC)

func TestCalculateScenarios(t *testing.T) {
	tests := []struct {
		name      string
		base      int64
		months    int
		tier      models.HoursTier
		total     int64
		advance   int64
		remaining int64
	}{
		{name: "four hours for three months", base: 12000, months: 3, tier: 4, total: 45000, advance: 13500, remaining: 31500},
		{name: "two hours for three months", base: 12000, months: 3, tier: 2, total: 36000, advance: 10800, remaining: 25200},
		{name: "single month", base: 10000, months: 1, tier: 2, total: 10000, advance: 3000, remaining: 7000},
		{name: "multiplier rounds half up", base: 10001, months: 1, tier: 4, total: 12501, advance: 3750, remaining: 8751},
		{name: "advance rounds half up", base: 15, months: 1, tier: 2, total: 15, advance: 5, remaining: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Calculate(tt.base, tt.months, tt.tier, confirmedAt)
			require.NoError(t, err)
			assert.Equal(t, tt.total, q.Total)
			assert.Equal(t, tt.advance, q.Advance)
			assert.Equal(t, tt.remaining, q.Remaining)
		})
	}
}

func TestCalculateAdvancePlusRemainingIsTotal(t *testing.T) {
	for _, tier := range Tiers() {
		for months := 1; months <= 24; months++ {
			for base := int64(0); base <= 20011; base += 997 {
				q, err := Calculate(base, months, tier, confirmedAt)
				require.NoError(t, err)
				assert.Equal(t, q.Total, q.Advance+q.Remaining, "base=%d months=%d tier=%d", base, months, tier)
			}
		}
	}
}

func TestCalculateIsMonotonic(t *testing.T) {
	for _, tier := range Tiers() {
		prev := int64(-1)
		for months := 1; months <= 12; months++ {
			q, err := Calculate(11000, months, tier, confirmedAt)
			require.NoError(t, err)
			assert.Greater(t, q.Total, prev)
			prev = q.Total
		}
	}

	for months := 1; months <= 12; months++ {
		two, err := Calculate(13000, months, models.TierTwoHours, confirmedAt)
		require.NoError(t, err)
		four, err := Calculate(13000, months, models.TierFourHours, confirmedAt)
		require.NoError(t, err)
		assert.Greater(t, four.Total, two.Total)
	}
}

func TestCalculateRejectsUnsupportedTier(t *testing.T) {
	for _, tier := range []models.HoursTier{0, 1, 3, 8, -2} {
		_, err := Calculate(12000, 3, tier, confirmedAt)
		assert.ErrorIs(t, err, ErrUnsupportedTier)
		assert.True(t, utils.IsKind(err, utils.KindUnsupportedTier))
	}
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	_, err := Calculate(12000, 0, models.TierTwoHours, confirmedAt)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Calculate(-1, 1, models.TierTwoHours, confirmedAt)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}

func TestCalculateRejectsOverflowingDuration(t *testing.T) {
	for _, months := range []int{math.MaxInt, math.MaxInt / 12, 768614336404564650} {
		_, err := Calculate(12000, months, models.TierFourHours, confirmedAt)
		assert.ErrorIs(t, err, ErrInvalidInput, "months=%d", months)
		assert.True(t, utils.IsKind(err, utils.KindValidation))
	}

	longest := int((math.MaxInt64 - 50) / 125 / 12000)
	q, err := Calculate(12000, longest, models.TierFourHours, confirmedAt)
	require.NoError(t, err)
	assert.Positive(t, q.Total)
	assert.Positive(t, q.Advance)
	assert.Equal(t, q.Total, q.Advance+q.Remaining)

	_, err = Calculate(12000, longest+1, models.TierFourHours, confirmedAt)
	assert.ErrorIs(t, err, ErrInvalidInput)

	free, err := Calculate(0, math.MaxInt, models.TierTwoHours, confirmedAt)
	require.NoError(t, err)
	assert.Zero(t, free.Total)
}

func TestStartDateIsThreeCalendarDaysLater(t *testing.T) {
	q, err := Calculate(12000, 1, models.TierTwoHours, confirmedAt)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-20", q.StartDateString())

	endOfMonth := time.Date(2024, time.February, 27, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), StartDate(endOfMonth))
}

func TestMultiplierPct(t *testing.T) {
	pct, err := MultiplierPct(models.TierTwoHours)
	require.NoError(t, err)
	assert.Equal(t, int64(100), pct)

	pct, err = MultiplierPct(models.TierFourHours)
	require.NoError(t, err)
	assert.Equal(t, int64(125), pct)
}
