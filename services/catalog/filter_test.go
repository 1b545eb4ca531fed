package catalog

import (
	"testing"

	"haviaa/models"
	"haviaa/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(list []models.Maid) []string {
	out := make([]string, 0, len(list))
	for _, m := range list {
		out = append(out, m.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria func(c *models.FilterCriteria)
		want     []string
	}{
		{
			name:     "defaults keep the whole catalog",
			criteria: func(c *models.FilterCriteria) {},
			want:     []string{"1", "2", "3", "4", "5"},
		},
		{
			name:     "locality is an exact match",
			criteria: func(c *models.FilterCriteria) { c.Locality = "Koramangala" },
			want:     []string{"1"},
		},
		{
			name: "experience bounds are inclusive",
			criteria: func(c *models.FilterCriteria) {
				c.MinExperience = 4
				c.MaxExperience = 6
			},
			want: []string{"1", "4", "5"},
		},
		{
			name: "price bounds are inclusive",
			criteria: func(c *models.FilterCriteria) {
				c.PriceRange = models.PriceRange{Min: 10000, Max: 11000}
			},
			want: []string{"3", "5"},
		},
		{
			name:     "languages match when any one is spoken",
			criteria: func(c *models.FilterCriteria) { c.Languages = []string{"Tamil", "Gujarati"} },
			want:     []string{"3", "5"},
		},
		{
			name: "all criteria must hold",
			criteria: func(c *models.FilterCriteria) {
				c.Languages = []string{"English"}
				c.PriceRange = models.PriceRange{Min: 12000, Max: 13000}
			},
			want: []string{"1", "4"},
		},
		{
			name: "contradictory experience bounds match nothing",
			criteria: func(c *models.FilterCriteria) {
				c.MinExperience = 7
				c.MaxExperience = 2
			},
			want: []string{},
		},
		{
			name:     "unknown locality matches nothing",
			criteria: func(c *models.FilterCriteria) { c.Locality = "Atlantis" },
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := models.DefaultFilterCriteria()
			tt.criteria(&criteria)
			assert.Equal(t, tt.want, ids(Filter(maids, criteria)))
		})
	}
}

func TestFilterKoramangalaScenario(t *testing.T) {
	criteria := models.FilterCriteria{
		Locality:      "Koramangala",
		MinExperience: 0,
		MaxExperience: 10,
		Languages:     []string{},
		PriceRange:    models.PriceRange{Min: 8000, Max: 20000},
	}
	got := Filter(NewStaticCatalog().List(), criteria)
	require.Len(t, got, 1)
	assert.Equal(t, "Priya Sharma", got[0].Name)
}

func TestFilterIsIdempotentAndOrderPreserving(t *testing.T) {
	criteria := models.DefaultFilterCriteria()
	criteria.Languages = []string{"English"}

	once := Filter(maids, criteria)
	twice := Filter(once, criteria)
	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"1", "2", "4", "5"}, ids(once))
}

func TestFilterEmptyCatalog(t *testing.T) {
	got := Filter(nil, models.DefaultFilterCriteria())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	list := NewStaticCatalog().List()
	before := ids(list)
	criteria := models.DefaultFilterCriteria()
	criteria.Locality = "Jayanagar"
	Filter(list, criteria)
	assert.Equal(t, before, ids(list))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *models.FilterCriteria)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *models.FilterCriteria) {}},
		{name: "known locality and languages", mutate: func(c *models.FilterCriteria) {
			c.Locality = "HSR Layout"
			c.Languages = []string{"Punjabi"}
		}},
		{name: "negative experience", mutate: func(c *models.FilterCriteria) { c.MinExperience = -1 }, wantErr: true},
		{name: "inverted experience", mutate: func(c *models.FilterCriteria) { c.MinExperience = 9; c.MaxExperience = 1 }, wantErr: true},
		{name: "inverted price", mutate: func(c *models.FilterCriteria) { c.PriceRange = models.PriceRange{Min: 20000, Max: 8000} }, wantErr: true},
		{name: "negative price", mutate: func(c *models.FilterCriteria) { c.PriceRange.Min = -5 }, wantErr: true},
		{name: "unknown locality", mutate: func(c *models.FilterCriteria) { c.Locality = "Atlantis" }, wantErr: true},
		{name: "unknown language", mutate: func(c *models.FilterCriteria) { c.Languages = []string{"Klingon"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.DefaultFilterCriteria()
			tt.mutate(&c)
			err := Validate(c)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCriteria)
			assert.True(t, utils.IsKind(err, utils.KindValidation))
		})
	}
}

func TestStaticCatalog(t *testing.T) {
	c := NewStaticCatalog()

	m, err := c.Get("4")
	require.NoError(t, err)
	assert.Equal(t, "Rekha Singh", m.Name)

	_, err = c.Get("42")
	assert.ErrorIs(t, err, ErrMaidNotFound)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))

	criteria := models.DefaultFilterCriteria()
	criteria.Locality = "Nowhere"
	_, err = c.Search(criteria)
	assert.ErrorIs(t, err, ErrInvalidCriteria)

	list := c.List()
	list[0].Name = "changed"
	again, _ := c.Get("1")
	assert.Equal(t, "Priya Sharma", again.Name, "List must hand out a copy")

	assert.Len(t, c.Localities(), 5)
	assert.Contains(t, c.Languages(), "Kannada")
}
