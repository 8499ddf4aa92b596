package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travel-time-gateway/internal/domain"
)

func TestFromViper(t *testing.T) {
	t.Run("intercity with all values", func(t *testing.T) {
		v := viper.New()
		v.Set("ODSAY_API_KEY", "secret/key+1")
		v.Set("ODSAY_API_URL", "https://example.test/searchPubTransPathT")
		v.Set("SEARCH_SCOPE", "intercity")
		v.Set("API_PORT", 9090)

		cfg, err := FromViper(v)
		require.NoError(t, err)
		assert.Equal(t, "secret/key+1", cfg.ODsay.APIKey)
		assert.Equal(t, "https://example.test/searchPubTransPathT", cfg.ODsay.BaseURL)
		assert.Equal(t, domain.SearchScopeIntercity, cfg.ODsay.Scope)
		assert.Equal(t, 10*time.Second, cfg.ODsay.RequestTimeout)
		assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddr())
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("missing api key", func(t *testing.T) {
		v := viper.New()
		v.Set("ODSAY_API_URL", "https://example.test")

		cfg, err := FromViper(v)
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "ODSAY_API_KEY")
	})

	t.Run("intercity requires base url", func(t *testing.T) {
		v := viper.New()
		v.Set("ODSAY_API_KEY", "key")

		cfg, err := FromViper(v)
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "ODSAY_API_URL")
	})

	t.Run("intracity falls back to default url", func(t *testing.T) {
		v := viper.New()
		v.Set("ODSAY_API_KEY", "key")
		v.Set("SEARCH_SCOPE", "Intracity")

		cfg, err := FromViper(v)
		require.NoError(t, err)
		assert.Equal(t, domain.SearchScopeIntracity, cfg.ODsay.Scope)
		assert.Equal(t, DefaultIntracityURL, cfg.ODsay.BaseURL)
	})

	t.Run("unknown scope", func(t *testing.T) {
		v := viper.New()
		v.Set("ODSAY_API_KEY", "key")
		v.Set("SEARCH_SCOPE", "regional")

		_, err := FromViper(v)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "SEARCH_SCOPE")
	})

	t.Run("custom timeout", func(t *testing.T) {
		v := viper.New()
		v.Set("ODSAY_API_KEY", "key")
		v.Set("ODSAY_API_URL", "https://example.test")
		v.Set("ODSAY_REQUEST_TIMEOUT", 3)

		cfg, err := FromViper(v)
		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, cfg.ODsay.RequestTimeout)
	})
}
