package storefront

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teavault/storefront-analytics/pkg/analytics"
)

func TestGetSiteOrigin(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	// The emitter default and the config fallback are the same origin.
	assert.Equal(t, analytics.DefaultOrigin, GetSiteOrigin())

	viper.Set("site.origin", "https://shop.teavault.com")
	assert.Equal(t, "https://shop.teavault.com", GetSiteOrigin())
}

func TestGetCollectorUrl(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	assert.Empty(t, GetCollectorUrl())

	viper.Set("collector.url", "https://collector.teavault.com/events")
	assert.Equal(t, "https://collector.teavault.com/events", GetCollectorUrl())
}

func TestGetAccountIdFromConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("accountId", 1234567)

	accountId, err := GetAccountId()
	require.NoError(t, err)
	assert.Equal(t, 1234567, accountId)
}
