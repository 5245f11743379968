package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func visibleNames(items []Item, f Filters) []string {
	var out []string
	for _, it := range items {
		if f.Matches(it) {
			out = append(out, it.Name)
		}
	}
	return out
}

func TestPriceTierFilterMatchesRawNumber(t *testing.T) {
	items := []Item{
		{Name: "A", Type: TypeBar, PriceTier: intp(2)},
		{Name: "B", Type: TypeBar, PriceTier: nil},
		{Name: "C", Type: TypeBar, PriceTier: intp(2)},
	}

	page := Apply(items, Filters{PriceTier: intp(2)}, 1, PublicPageSize, testNow())
	require.Len(t, page.Items, 2)
	assert.Equal(t, "A", page.Items[0].Name)
	assert.Equal(t, "C", page.Items[1].Name)
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	items := []Item{
		{Name: "Bar Norte", Type: TypeBar, Zone: "Palermo"},
		{Name: "Resto Sur", Type: TypeBar, Zone: "Norte"},
		{Name: "Otro", Type: TypeBar, Zone: "Sur"},
	}

	got := visibleNames(items, Filters{Search: "norte"})
	assert.Equal(t, []string{"Bar Norte", "Resto Sur"}, got)
}

func TestSearchMatchesCuisineAndCity(t *testing.T) {
	items := []Item{
		{Name: "La Esquina", Type: TypeRestaurant, Cuisines: []string{"Parrilla", "Italiana"}},
		{Name: "Posada", Type: TypeHotel, City: "Córdoba"},
	}

	assert.Equal(t, []string{"La Esquina"}, visibleNames(items, Filters{Search: "italiana"}))
	assert.Equal(t, []string{"Posada"}, visibleNames(items, Filters{Search: "cordoba"}))
}

func TestBlankSearchConstrainsNothing(t *testing.T) {
	items := []Item{{Name: "A", Type: TypeBar}, {Name: "B", Type: TypeBar}}
	assert.Len(t, visibleNames(items, Filters{Search: "   "}), 2)
	assert.Len(t, visibleNames(items, Filters{}), 2)
}

func TestEmptyFiltersMeanNoConstraint(t *testing.T) {
	it := Item{Name: "A", Type: TypeBar, Zone: "Centro", PriceTier: intp(3)}
	assert.True(t, Filters{}.Matches(it))
	assert.True(t, Filters{Cuisines: nil, Types: nil}.Matches(it))
}

func TestCategoricalFiltersAreANDed(t *testing.T) {
	items := []Item{
		{Name: "A", Type: TypeBar, Zone: "Centro", PriceTier: intp(2)},
		{Name: "B", Type: TypeBar, Zone: "Centro", PriceTier: intp(3)},
		{Name: "C", Type: TypeBar, Zone: "Norte", PriceTier: intp(2)},
	}

	got := visibleNames(items, Filters{Zone: "Centro", PriceTier: intp(2)})
	assert.Equal(t, []string{"A"}, got)
}

func TestCuisineMultiSelectIsORWithinSet(t *testing.T) {
	items := []Item{
		{Name: "A", Type: TypeRestaurant, Cuisines: []string{"Sushi"}},
		{Name: "B", Type: TypeRestaurant, Cuisines: []string{"Parrilla"}},
		{Name: "C", Type: TypeRestaurant, Cuisines: []string{"Vegana"}},
	}

	got := visibleNames(items, Filters{Cuisines: []string{"Sushi", "Parrilla"}})
	assert.Equal(t, []string{"A", "B"}, got)
}

// Adding a constraint never grows the visible set.
func TestFilterMonotonicity(t *testing.T) {
	items := []Item{
		{Name: "A", Type: TypeBar, Zone: "Centro", PriceTier: intp(2), Stars: intp(4)},
		{Name: "B", Type: TypeBar, Zone: "Centro", PriceTier: intp(3)},
		{Name: "C", Type: TypeBar, Zone: "Norte", PriceTier: intp(2), Stars: intp(4)},
		{Name: "D", Type: TypeBar},
	}

	steps := []Filters{
		{},
		{Zone: "Centro"},
		{Zone: "Centro", PriceTier: intp(2)},
		{Zone: "Centro", PriceTier: intp(2), Stars: intp(4)},
	}

	prev := visibleNames(items, steps[0])
	for _, f := range steps[1:] {
		cur := visibleNames(items, f)
		assert.LessOrEqual(t, len(cur), len(prev))
		for _, name := range cur {
			assert.Contains(t, prev, name, "narrowing must produce a subset")
		}
		prev = cur
	}
}
