package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "all"

// Sort modes accepted by the view. Anything else falls back to SortNameAsc.
const (
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortSKUAsc    = "sku-asc"
	SortSKUDesc   = "sku-desc"
)

// ViewState is the ephemeral browse state: free-text query, selected
// category and sort mode. It is rebuilt from request parameters on every
// request and never persisted.
type ViewState struct {
	Query    string
	Category string
	Sort     string
}

// NormalizedViewState applies the documented defaults: empty query, the
// "all" category sentinel and name-ascending sort.
func NormalizedViewState(query, category, sortMode string) ViewState {
	if strings.TrimSpace(category) == "" {
		category = CategoryAll
	}
	switch sortMode {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc, SortSKUAsc, SortSKUDesc:
	default:
		sortMode = SortNameAsc
	}
	return ViewState{Query: query, Category: category, Sort: sortMode}
}

// DeriveView filters and orders the catalogue for display. Pure function:
// same inputs always produce the same output and the input slice is never
// mutated.
//
// Filter order: query substring match over the joined searchable fields,
// then exact (case-sensitive) category match, then the comparator sort.
// Descending modes are the stable negation of their ascending counterpart,
// so ties keep whatever order the negated comparator yields.
func DeriveView(catalog []Product, state ViewState) []Product {
	state = NormalizedViewState(state.Query, state.Category, state.Sort)
	query := strings.ToLower(strings.TrimSpace(state.Query))

	view := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if query != "" && !strings.Contains(p.Searchable(), query) {
			continue
		}
		if state.Category != CategoryAll && p.Category != state.Category {
			continue
		}
		view = append(view, p)
	}

	cmp := comparatorFor(state.Sort)
	sort.SliceStable(view, func(i, j int) bool {
		return cmp(view[i], view[j]) < 0
	})
	return view
}

// comparatorFor selects the base ascending comparator and negates it for the
// descending variants. No secondary sort key.
func comparatorFor(mode string) func(a, b Product) int {
	coll := collate.New(language.English)
	byName := func(a, b Product) int { return coll.CompareString(a.Name, b.Name) }
	bySKU := func(a, b Product) int { return coll.CompareString(a.SKU, b.SKU) }
	byPrice := func(a, b Product) int {
		switch {
		case a.PriceExVAT < b.PriceExVAT:
			return -1
		case a.PriceExVAT > b.PriceExVAT:
			return 1
		}
		return 0
	}

	switch mode {
	case SortNameDesc:
		return negate(byName)
	case SortPriceAsc:
		return byPrice
	case SortPriceDesc:
		return negate(byPrice)
	case SortSKUAsc:
		return bySKU
	case SortSKUDesc:
		return negate(bySKU)
	default:
		return byName
	}
}

func negate(cmp func(a, b Product) int) func(a, b Product) int {
	return func(a, b Product) int { return -cmp(a, b) }
}

// Categories returns the distinct non-empty category values present in the
// catalogue, lexicographically ordered. The "all" sentinel is not included;
// the view layer prepends it.
func Categories(catalog []Product) []string {
	seen := make(map[string]struct{}, len(catalog))
	var categories []string
	for _, p := range catalog {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}
