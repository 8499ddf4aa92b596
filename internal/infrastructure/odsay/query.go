package odsay

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/travel-time-gateway/internal/domain"
)

// BuildQuery renders the searchPubTransPathT query string.
//
// Parameter order is fixed and every value is percent-encoded exactly once.
// Provider API keys may contain reserved characters like '+' and '/', which
// a second encoding pass would corrupt.
func BuildQuery(apiKey string, q domain.RouteQuery) string {
	params := [][2]string{
		{"apiKey", apiKey},
		{"SearchType", strconv.Itoa(int(q.Scope))},
		{"SY", formatCoordinate(q.Start.Lat)},
		{"SX", formatCoordinate(q.Start.Lon)},
		{"EY", formatCoordinate(q.End.Lat)},
		{"EX", formatCoordinate(q.End.Lon)},
		{"SearchPathType", strconv.Itoa(domain.SearchPathTypeBusOnly)},
		{"lang", strconv.Itoa(q.LanguageCode)},
		{"output", "json"},
	}

	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p[0])
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}

// formatCoordinate prints the shortest exact representation and keeps a
// decimal point on whole numbers (127 -> "127.0").
func formatCoordinate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// redactQuery hides the apiKey value for logging.
func redactQuery(rawURL string) string {
	idx := strings.Index(rawURL, "apiKey=")
	if idx < 0 {
		return rawURL
	}
	start := idx + len("apiKey=")
	end := strings.IndexByte(rawURL[start:], '&')
	if end < 0 {
		return rawURL[:start] + "***"
	}
	return rawURL[:start] + "***" + rawURL[start+end:]
}
