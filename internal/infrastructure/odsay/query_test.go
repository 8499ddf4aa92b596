package odsay

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travel-time-gateway/internal/domain"
)

func TestBuildQuery(t *testing.T) {
	query := domain.RouteQuery{
		Start:        domain.Coordinate{Lat: 37.5, Lon: 127.0},
		End:          domain.Coordinate{Lat: 35.1, Lon: 129.0},
		LanguageCode: 0,
	}

	t.Run("intercity", func(t *testing.T) {
		query.Scope = domain.SearchScopeIntercity
		got := BuildQuery("key", query)

		assert.Contains(t, got, "SY=37.5&SX=127.0&EY=35.1&EX=129.0&SearchPathType=2")
		assert.Contains(t, got, "SearchType=1")
		assert.Equal(t,
			"apiKey=key&SearchType=1&SY=37.5&SX=127.0&EY=35.1&EX=129.0&SearchPathType=2&lang=0&output=json",
			got)
	})

	t.Run("intracity", func(t *testing.T) {
		query.Scope = domain.SearchScopeIntracity
		got := BuildQuery("key", query)

		assert.Contains(t, got, "SY=37.5&SX=127.0&EY=35.1&EX=129.0&SearchPathType=2")
		assert.Contains(t, got, "SearchType=0")
	})

	t.Run("api key is encoded exactly once", func(t *testing.T) {
		got := BuildQuery("a+b/c=", query)

		assert.Contains(t, got, "apiKey=a%2Bb%2Fc%3D&")
		assert.NotContains(t, got, "%25")

		values, err := url.ParseQuery(got)
		require.NoError(t, err)
		assert.Equal(t, "a+b/c=", values.Get("apiKey"))
	})

	t.Run("language code", func(t *testing.T) {
		q := query
		q.LanguageCode = 1
		assert.Contains(t, BuildQuery("key", q), "&lang=1&output=json")
	})
}

func TestFormatCoordinate(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{127, "127.0"},
		{37.5, "37.5"},
		{-0.5, "-0.5"},
		{0, "0.0"},
		{126.97796919, "126.97796919"},
		{-122, "-122.0"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatCoordinate(tt.in))
		})
	}
}

func TestRedactQuery(t *testing.T) {
	assert.Equal(t,
		"https://api.test/path?apiKey=***&SX=1.0",
		redactQuery("https://api.test/path?apiKey=secret&SX=1.0"))
	assert.Equal(t,
		"https://api.test/path?apiKey=***",
		redactQuery("https://api.test/path?apiKey=secret"))
	assert.Equal(t,
		"https://api.test/path?SX=1.0",
		redactQuery("https://api.test/path?SX=1.0"))
}
