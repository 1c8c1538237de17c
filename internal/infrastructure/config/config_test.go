package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.App.Name)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2*time.Second, cfg.Cart.DebounceWindow)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Storage.Path)
	assert.NotEmpty(t, cfg.Serve.Addr)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("STOREFRONT_API_BASE_URL", "https://shop.example.com/api")
	t.Setenv("STOREFRONT_LOG_LEVEL", "debug")
	t.Setenv("STOREFRONT_CART_DEBOUNCE_WINDOW", "500ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 500*time.Millisecond, cfg.Cart.DebounceWindow)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Run("non-http base url", func(t *testing.T) {
		t.Setenv("STOREFRONT_API_BASE_URL", "ftp://example.com")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("tiny debounce window", func(t *testing.T) {
		t.Setenv("STOREFRONT_CART_DEBOUNCE_WINDOW", "10ms")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		t.Setenv("STOREFRONT_LOG_LEVEL", "verbose")
		_, err := Load()
		assert.Error(t, err)
	})
}
