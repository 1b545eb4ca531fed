package catalog

import (
	"fmt"

	"haviaa/models"
	"haviaa/utils"
)

// ErrMaidNotFound is returned for an unknown maid ID.
var ErrMaidNotFound = utils.NewAppError(utils.KindNotFound, "maid not found")

// CatalogService exposes the read-only maid catalog.
type CatalogService interface {
	List() []models.Maid
	Get(id string) (*models.Maid, error)
	Search(criteria models.FilterCriteria) ([]models.Maid, error)
	Localities() []string
	Languages() []string
}

// StaticCatalog serves a fixed list of maids.
type StaticCatalog struct {
	maids []models.Maid
}

// NewStaticCatalog serves the built-in fixture.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{maids: maids}
}

// NewCatalogFrom serves the given list. Used by tests.
func NewCatalogFrom(list []models.Maid) *StaticCatalog {
	return &StaticCatalog{maids: list}
}

func (c *StaticCatalog) List() []models.Maid {
	out := make([]models.Maid, len(c.maids))
	copy(out, c.maids)
	return out
}

func (c *StaticCatalog) Get(id string) (*models.Maid, error) {
	for _, m := range c.maids {
		if m.ID == id {
			found := m
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMaidNotFound, id)
}

// Search validates the criteria and filters the catalog with them.
func (c *StaticCatalog) Search(criteria models.FilterCriteria) ([]models.Maid, error) {
	if err := Validate(criteria); err != nil {
		return nil, err
	}
	return Filter(c.maids, criteria), nil
}

func (c *StaticCatalog) Localities() []string {
	return append([]string(nil), localities...)
}

func (c *StaticCatalog) Languages() []string {
	return append([]string(nil), languageOptions...)
}
