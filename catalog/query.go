package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Jrgn63/keyking/models"
)

type SortField string

const (
	SortPrice     SortField = "price"
	SortName      SortField = "name"
	SortCreatedAt SortField = "created_at"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Params are the optional list parameters. Zero values mean "no filter";
// an empty Params filters nothing and sorts by creation time, newest first.
type Params struct {
	Search   string
	Category string
	Tags     []string
	SortBy   SortField
	Order    SortOrder
}

// ParseSortField maps a query value onto a known sort field, defaulting to
// creation time. "createdAt" is accepted alongside "created_at".
func ParseSortField(s string) SortField {
	switch s {
	case string(SortPrice):
		return SortPrice
	case string(SortName):
		return SortName
	default:
		return SortCreatedAt
	}
}

func ParseSortOrder(s string) SortOrder {
	if strings.ToLower(s) == string(OrderAsc) {
		return OrderAsc
	}
	return OrderDesc
}

// Filter applies the category, search, and tag filters to a catalog snapshot
// and sorts the survivors. When tags are requested, products matching more of
// them rank first regardless of the sort field; the field then breaks ties.
// The input slice is not modified.
func Filter(products []models.Product, p Params) []models.Product {
	out := make([]models.Product, 0, len(products))
	search := strings.ToLower(p.Search)
	for _, prod := range products {
		if p.Category != "" && prod.Category != p.Category {
			continue
		}
		if search != "" && !matchesSearch(prod, search) {
			continue
		}
		if len(p.Tags) > 0 && TagMatchCount(prod, p.Tags) == 0 {
			continue
		}
		out = append(out, prod)
	}
	sortProducts(out, p)
	return out
}

// TagMatchCount counts how many of the requested tags the product carries.
func TagMatchCount(p models.Product, tags []string) int {
	n := 0
	for _, want := range tags {
		for _, have := range p.Tags {
			if have == want {
				n++
				break
			}
		}
	}
	return n
}

func matchesSearch(p models.Product, loweredSearch string) bool {
	return strings.Contains(strings.ToLower(p.Name), loweredSearch) ||
		strings.Contains(strings.ToLower(p.ShortDescription), loweredSearch) ||
		strings.Contains(strings.ToLower(p.LongDescription), loweredSearch)
}

func sortProducts(products []models.Product, p Params) {
	field := p.SortBy
	if field == "" {
		field = SortCreatedAt
	}
	asc := p.Order == OrderAsc

	var coll *collate.Collator
	if field == SortName {
		coll = collate.New(language.English)
	}

	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]

		if len(p.Tags) > 0 {
			am, bm := TagMatchCount(a, p.Tags), TagMatchCount(b, p.Tags)
			if am != bm {
				return am > bm
			}
		}

		var cmp int
		switch field {
		case SortPrice:
			switch {
			case a.Price < b.Price:
				cmp = -1
			case a.Price > b.Price:
				cmp = 1
			}
		case SortName:
			cmp = coll.CompareString(a.Name, b.Name)
		default:
			switch {
			case a.CreatedAt.Before(b.CreatedAt):
				cmp = -1
			case a.CreatedAt.After(b.CreatedAt):
				cmp = 1
			}
		}

		if asc {
			return cmp < 0
		}
		return cmp > 0
	})
}
