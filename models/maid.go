package models

// Maid is a service provider listed in the catalog.
type Maid struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Photo        string   `json:"photo"`
	Experience   int      `json:"experience"`   // years
	MonthlyPrice int64    `json:"monthlyPrice"` // whole currency units
	Skillset     []string `json:"skillset"`
	Locality     string   `json:"locality"`
	Languages    []string `json:"languages"`
	Rating       float64  `json:"rating"`
}

// SpeaksAny reports whether the maid speaks at least one of the given languages.
func (m Maid) SpeaksAny(languages []string) bool {
	for _, want := range languages {
		for _, have := range m.Languages {
			if have == want {
				return true
			}
		}
	}
	return false
}

// PriceRange is an inclusive [Min, Max] bound on the monthly price.
type PriceRange struct {
	Min int64 `json:"min" form:"minPrice"`
	Max int64 `json:"max" form:"maxPrice"`
}

// FilterCriteria narrows the catalog. Languages use OR semantics.
type FilterCriteria struct {
	Locality      string     `json:"locality" form:"locality"`
	MinExperience int        `json:"minExperience" form:"minExperience"`
	MaxExperience int        `json:"maxExperience" form:"maxExperience"`
	Languages     []string   `json:"languages" form:"languages"`
	PriceRange    PriceRange `json:"priceRange"`
}

// DefaultFilterCriteria matches the initial state of the client filter form.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		MinExperience: 0,
		MaxExperience: 10,
		Languages:     []string{},
		PriceRange:    PriceRange{Min: 8000, Max: 20000},
	}
}
