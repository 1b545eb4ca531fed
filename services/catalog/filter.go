package catalog

import (
	"fmt"

	"haviaa/models"
	"haviaa/utils"
)

// ErrInvalidCriteria marks filter criteria rejected by Validate.
var ErrInvalidCriteria = utils.NewAppError(utils.KindValidation, "invalid filter criteria")

// Filter returns the maids matching every criterion, in input order.
// Contradictory bounds are not an error; they just match nothing.
func Filter(list []models.Maid, criteria models.FilterCriteria) []models.Maid {
	out := make([]models.Maid, 0, len(list))
	for _, m := range list {
		if matches(m, criteria) {
			out = append(out, m)
		}
	}
	return out
}

func matches(m models.Maid, c models.FilterCriteria) bool {
	if c.Locality != "" && m.Locality != c.Locality {
		return false
	}
	if m.Experience < c.MinExperience || m.Experience > c.MaxExperience {
		return false
	}
	if m.MonthlyPrice < c.PriceRange.Min || m.MonthlyPrice > c.PriceRange.Max {
		return false
	}
	if len(c.Languages) > 0 && !m.SpeaksAny(c.Languages) {
		return false
	}
	return true
}

// Validate checks criteria coming from a client form before filtering.
func Validate(c models.FilterCriteria) error {
	if c.MinExperience < 0 || c.MaxExperience < 0 {
		return fmt.Errorf("%w: experience bounds must not be negative", ErrInvalidCriteria)
	}
	if c.MinExperience > c.MaxExperience {
		return fmt.Errorf("%w: minExperience %d exceeds maxExperience %d", ErrInvalidCriteria, c.MinExperience, c.MaxExperience)
	}
	if c.PriceRange.Min < 0 || c.PriceRange.Max < 0 {
		return fmt.Errorf("%w: price bounds must not be negative", ErrInvalidCriteria)
	}
	if c.PriceRange.Min > c.PriceRange.Max {
		return fmt.Errorf("%w: minimum price %d exceeds maximum price %d", ErrInvalidCriteria, c.PriceRange.Min, c.PriceRange.Max)
	}
	if c.Locality != "" && !contains(localities, c.Locality) {
		return fmt.Errorf("%w: unknown locality %q", ErrInvalidCriteria, c.Locality)
	}
	for _, lang := range c.Languages {
		if !contains(languageOptions, lang) {
			return fmt.Errorf("%w: unknown language %q", ErrInvalidCriteria, lang)
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
