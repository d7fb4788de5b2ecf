package geo

import (
	"math"
	"sort"
	"strings"

	"github.com/BruksfildServices01/nearbiz/internal/textnorm"
)

// AllCategories disables the category filter. The mobile app sends "todas".
const AllCategories = "all"

// Place is anything the filter engine can rank.
type Place interface {
	// Location returns the place's coordinate and whether it is usable.
	Location() (Coordinate, bool)
	CategoryKey() string
	// SearchFields are matched against the search text.
	SearchFields() []string
}

type FilterOptions struct {
	MaxRadiusKm float64
	CategoryID  string
	SearchText  string
}

type Ranked[P Place] struct {
	Place      P
	DistanceKm float64
}

// FilterAndRank keeps the places within MaxRadiusKm of origin that match the
// category and search text, nearest first. Ties keep input order. The input
// slice is not modified.
func FilterAndRank[P Place](places []P, origin Coordinate, opts FilterOptions) []Ranked[P] {
	query := textnorm.Fold(opts.SearchText)
	category := strings.TrimSpace(opts.CategoryID)

	out := make([]Ranked[P], 0, len(places))
	for _, p := range places {
		loc, ok := p.Location()
		if !ok || !loc.Valid() {
			continue
		}

		d := Distance(origin, loc)
		if math.IsNaN(d) || d > opts.MaxRadiusKm {
			continue
		}

		if !IsAllCategories(category) && p.CategoryKey() != category {
			continue
		}

		if query != "" && !matchesAny(p.SearchFields(), query) {
			continue
		}

		out = append(out, Ranked[P]{Place: p, DistanceKm: d})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}

func IsAllCategories(category string) bool {
	switch textnorm.Fold(category) {
	case "", AllCategories, "todas", "todos":
		return true
	}
	return false
}

func matchesAny(fields []string, foldedQuery string) bool {
	for _, f := range fields {
		if strings.Contains(textnorm.Fold(f), foldedQuery) {
			return true
		}
	}
	return false
}
