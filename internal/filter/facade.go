package filter

import "github.com/blackwell-systems/cellarctl/internal/catalog"

// Query is everything the presentation layer supplies for one recompute.
type Query struct {
	Search string
	State  State
	Sort   SortOption
}

// Result is the displayed wine sequence plus the filter badge count.
type Result struct {
	Wines       []catalog.Wine `json:"wines"`
	ActiveCount int            `json:"active_filter_count"`
}

// Filter returns the catalog's wines that pass Includes, in catalog order.
func Filter(env Env, search string, state State) []catalog.Wine {
	out := []catalog.Wine{}
	for _, w := range env.Catalog.Wines() {
		if Includes(env, w, search, state) {
			out = append(out, w)
		}
	}
	return out
}

// Apply filters then sorts the catalog.
func Apply(env Env, q Query) Result {
	return Result{
		Wines:       Sort(Filter(env, q.Search, q.State), q.Sort, env.Catalog),
		ActiveCount: q.State.ActiveCount(),
	}
}
