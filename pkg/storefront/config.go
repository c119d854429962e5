package storefront

import (
	"fmt"
	"os"
	"strconv"

	"github.com/newrelic/newrelic-client-go/pkg/region"
	"github.com/spf13/viper"

	"github.com/teavault/storefront-analytics/pkg/analytics"
)

func NewConfigWithFile(configFile string) error {
	viper.SetConfigFile(configFile)

	return newConfig()
}

func NewConfigWithPaths() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("configs")
	viper.AddConfigPath(".")

	return newConfig()
}

func newConfig() error {
	err := viper.ReadInConfig()
	if err != nil {
		return err
	}

	return nil
}

// GetSiteOrigin returns the origin used to build page_view locations.
func GetSiteOrigin() string {
	origin := viper.GetString("site.origin")
	if origin == "" {
		origin = os.Getenv("TEAVAULT_SITE_ORIGIN")
		if origin == "" {
			origin = analytics.DefaultOrigin
		}
	}

	return origin
}

// GetCollectorUrl returns the optional HTTP collector endpoint. An empty
// value means no collector sink is configured.
func GetCollectorUrl() string {
	collectorUrl := viper.GetString("collector.url")
	if collectorUrl == "" {
		collectorUrl = os.Getenv("TEAVAULT_COLLECTOR_URL")
	}

	return collectorUrl
}

func GetLicenseKey() (string, error) {
	licenseKey := viper.GetString("licenseKey")
	if licenseKey == "" {
		licenseKey = os.Getenv("NEW_RELIC_LICENSE_KEY")
		if licenseKey == "" {
			return "", fmt.Errorf("missing New Relic license key")
		}
	}

	return licenseKey, nil
}

func GetNrRegion() (region.Name, error) {
	nrRegion := viper.GetString("region")
	if nrRegion == "" {
		nrRegion = os.Getenv("NEW_RELIC_REGION")
		if nrRegion == "" {
			nrRegion = string(region.Default)
		}
	}

	r, err := region.Parse(nrRegion)
	if err != nil {
		return "", err
	}

	return r, nil
}

func GetAccountId() (int, error) {
	accountId := viper.GetInt("accountId")
	if accountId == 0 {
		eventsAccountId := os.Getenv("NEW_RELIC_ACCOUNT_ID")
		if eventsAccountId == "" {
			return 0, fmt.Errorf("missing New Relic account ID")
		}

		var err error

		accountId, err = strconv.Atoi(eventsAccountId)
		if err != nil {
			return 0, fmt.Errorf("invalid New Relic account ID %s", eventsAccountId)
		}
	}

	return accountId, nil
}
