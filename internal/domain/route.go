package domain

import (
	"fmt"
	"strings"
)

// SearchScope selects between intercity and intracity route search.
// The numeric value is sent upstream as SearchType.
type SearchScope int

const (
	SearchScopeIntracity SearchScope = 0
	SearchScopeIntercity SearchScope = 1
)

// SearchPathTypeBusOnly restricts the upstream path search to bus legs.
const SearchPathTypeBusOnly = 2

// DefaultLanguageCode - native language of the provider
const DefaultLanguageCode = 0

func (s SearchScope) String() string {
	switch s {
	case SearchScopeIntracity:
		return "intracity"
	case SearchScopeIntercity:
		return "intercity"
	default:
		return fmt.Sprintf("SearchScope(%d)", int(s))
	}
}

// ParseSearchScope parses "intercity" or "intracity" (case-insensitive).
func ParseSearchScope(s string) (SearchScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intercity":
		return SearchScopeIntercity, nil
	case "intracity":
		return SearchScopeIntracity, nil
	default:
		return 0, fmt.Errorf("unknown search scope %q", s)
	}
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RouteQuery is a single bus-only route lookup between two points
type RouteQuery struct {
	Start        Coordinate
	End          Coordinate
	LanguageCode int
	Scope        SearchScope
}

// TravelTimeResult holds the total travel time of the first returned path, in minutes.
type TravelTimeResult struct {
	TotalMinutes int
}
