package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jrgn63/keyking/models"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func product(name string, price float64, createdOffset time.Duration, tags ...string) models.Product {
	return models.Product{
		ID:        name,
		Name:      name,
		Price:     price,
		Tags:      tags,
		CreatedAt: baseTime.Add(createdOffset),
	}
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterNoParamsIsIdentityWithNewestFirst(t *testing.T) {
	in := []models.Product{
		product("old", 10, 0),
		product("new", 20, time.Hour),
		product("mid", 15, time.Minute),
	}

	out := Filter(in, Params{})
	assert.Equal(t, []string{"new", "mid", "old"}, names(out))
}

func TestFilterSortByPriceAsc(t *testing.T) {
	in := []models.Product{
		product("A", 100, 0),
		product("B", 50, time.Hour),
	}

	out := Filter(in, Params{SortBy: SortPrice, Order: OrderAsc})
	assert.Equal(t, []string{"B", "A"}, names(out))
}

func TestFilterSortByNameLocale(t *testing.T) {
	in := []models.Product{
		product("zebra pad", 1, 0),
		product("Apple board", 2, 0),
		product("mango cable", 3, 0),
	}

	out := Filter(in, Params{SortBy: SortName, Order: OrderAsc})
	assert.Equal(t, []string{"Apple board", "mango cable", "zebra pad"}, names(out))
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	keyboard := product("Mechanical Keyboard", 100, 0)
	mousepad := product("Mouse Pad", 20, 0)
	mousepad.ShortDescription = "cloth surface"

	out := Filter([]models.Product{keyboard, mousepad}, Params{Search: "key"})
	assert.Equal(t, []string{"Mechanical Keyboard"}, names(out))
}

func TestFilterSearchCoversDescriptions(t *testing.T) {
	p := product("Switch Pack", 30, 0)
	p.LongDescription = "Factory-lubed LINEAR switches"

	out := Filter([]models.Product{p}, Params{Search: "linear"})
	require.Len(t, out, 1)

	out = Filter([]models.Product{p}, Params{Search: "tactile"})
	assert.Empty(t, out)
}

func TestFilterCategoryExactMatch(t *testing.T) {
	a := product("a", 1, 0)
	a.Category = "keyboards"
	b := product("b", 1, 0)
	b.Category = "Keyboards" // case differs, must not match

	out := Filter([]models.Product{a, b}, Params{Category: "keyboards"})
	assert.Equal(t, []string{"a"}, names(out))
}

func TestFilterTagsUseOrSemantics(t *testing.T) {
	in := []models.Product{
		product("only-rgb", 1, 0, "rgb"),
		product("only-tkl", 1, 0, "tkl"),
		product("neither", 1, 0, "wireless"),
	}

	out := Filter(in, Params{Tags: []string{"rgb", "tkl"}})
	assert.ElementsMatch(t, []string{"only-rgb", "only-tkl"}, names(out))
}

func TestFilterTagRelevanceOutranksSortField(t *testing.T) {
	in := []models.Product{
		product("one-match-cheap", 5, 0, "rgb"),
		product("two-match-pricey", 500, 0, "rgb", "tkl"),
	}

	// Even sorting by price asc, the better tag match comes first.
	out := Filter(in, Params{Tags: []string{"rgb", "tkl"}, SortBy: SortPrice, Order: OrderAsc})
	assert.Equal(t, []string{"two-match-pricey", "one-match-cheap"}, names(out))
}

func TestFilterTagMatchCountIsNonIncreasingAcrossOutput(t *testing.T) {
	in := []models.Product{
		product("a", 10, 0, "rgb"),
		product("b", 20, 0, "rgb", "tkl", "hot-swap"),
		product("c", 30, 0, "tkl", "hot-swap"),
		product("d", 40, 0, "wireless"),
		product("e", 50, 0, "hot-swap"),
	}
	tags := []string{"rgb", "tkl", "hot-swap"}

	out := Filter(in, Params{Tags: tags, SortBy: SortPrice, Order: OrderAsc})
	require.NotEmpty(t, out)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t,
			TagMatchCount(out[i-1], tags),
			TagMatchCount(out[i], tags),
		)
	}
}

func TestFilterTagTiesBrokenBySortField(t *testing.T) {
	in := []models.Product{
		product("expensive", 90, 0, "rgb"),
		product("cheap", 10, 0, "rgb"),
	}

	out := Filter(in, Params{Tags: []string{"rgb"}, SortBy: SortPrice, Order: OrderAsc})
	assert.Equal(t, []string{"cheap", "expensive"}, names(out))
}

func TestFilterEmptyParamsMeanNoFilterNotMatchNothing(t *testing.T) {
	in := []models.Product{product("a", 1, 0), product("b", 2, 0)}

	out := Filter(in, Params{Search: "", Category: "", Tags: nil})
	assert.Len(t, out, 2)
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	in := []models.Product{
		product("b", 2, 0),
		product("a", 1, time.Hour),
	}

	_ = Filter(in, Params{SortBy: SortPrice, Order: OrderAsc})
	assert.Equal(t, []string{"b", "a"}, names(in))
}

func TestParseSortField(t *testing.T) {
	assert.Equal(t, SortPrice, ParseSortField("price"))
	assert.Equal(t, SortName, ParseSortField("name"))
	assert.Equal(t, SortCreatedAt, ParseSortField("created_at"))
	assert.Equal(t, SortCreatedAt, ParseSortField("garbage"))
	assert.Equal(t, SortCreatedAt, ParseSortField(""))
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, OrderAsc, ParseSortOrder("asc"))
	assert.Equal(t, OrderAsc, ParseSortOrder("ASC"))
	assert.Equal(t, OrderDesc, ParseSortOrder("desc"))
	assert.Equal(t, OrderDesc, ParseSortOrder(""))
	assert.Equal(t, OrderDesc, ParseSortOrder("sideways"))
}
