package pricing

import (
	"fmt"
	"math"
	"time"

	"haviaa/models"
	"haviaa/utils"
)

const (
	// AdvancePct is the share of the total payable when booking.
	AdvancePct int64 = 30
	// StartDelayDays is how long after confirmation the service starts.
	StartDelayDays = 3
)

var (
	ErrUnsupportedTier = utils.NewAppError(utils.KindUnsupportedTier, "unsupported daily-hours tier")
	ErrInvalidInput    = utils.NewAppError(utils.KindValidation, "invalid pricing input")
)

// tierMultipliers holds each tier's price multiplier in percent.
var tierMultipliers = map[models.HoursTier]int64{
	models.TierTwoHours:  100,
	models.TierFourHours: 125,
}

// Tiers lists the supported daily-hours tiers in ascending order.
func Tiers() []models.HoursTier {
	return []models.HoursTier{models.TierTwoHours, models.TierFourHours}
}

// MultiplierPct returns the tier's multiplier in percent, or ErrUnsupportedTier.
func MultiplierPct(tier models.HoursTier) (int64, error) {
	pct, ok := tierMultipliers[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %d hours", ErrUnsupportedTier, tier)
	}
	return pct, nil
}

// Calculate prices a hire. now is the confirmation time; the service starts
// StartDelayDays calendar days later. Advance and remaining always sum to total.
func Calculate(baseMonthlyRate int64, durationMonths int, tier models.HoursTier, now time.Time) (models.Quote, error) {
	pct, err := MultiplierPct(tier)
	if err != nil {
		return models.Quote{}, err
	}
	if durationMonths <= 0 {
		return models.Quote{}, fmt.Errorf("%w: duration must be at least one month, got %d", ErrInvalidInput, durationMonths)
	}
	if baseMonthlyRate < 0 {
		return models.Quote{}, fmt.Errorf("%w: monthly rate must not be negative, got %d", ErrInvalidInput, baseMonthlyRate)
	}
	if baseMonthlyRate > 0 && int64(durationMonths) > (math.MaxInt64-50)/pct/baseMonthlyRate {
		return models.Quote{}, fmt.Errorf("%w: %d months at %d is out of range", ErrInvalidInput, durationMonths, baseMonthlyRate)
	}

	total := roundPct(baseMonthlyRate*int64(durationMonths), pct)
	advance := roundPct(total, AdvancePct)

	utils.QuotesComputed.WithLabelValues(fmt.Sprintf("%d", tier)).Inc()

	return models.Quote{
		BaseMonthlyRate: baseMonthlyRate,
		DurationMonths:  durationMonths,
		DailyHours:      tier,
		MultiplierPct:   pct,
		Total:           total,
		Advance:         advance,
		Remaining:       total - advance,
		StartDate:       StartDate(now),
	}, nil
}

// StartDate is the service start day for a hire confirmed at now.
func StartDate(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, StartDelayDays)
}

// roundPct returns amount*pct/100 rounded half up. amount must be non-negative.
func roundPct(amount, pct int64) int64 {
	return (amount*pct + 50) / 100
}
