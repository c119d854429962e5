package sink

import (
	"context"
	"fmt"
	"time"

	nrClient "github.com/newrelic/newrelic-client-go/newrelic"
	"github.com/newrelic/newrelic-client-go/pkg/config"
	"github.com/newrelic/newrelic-client-go/pkg/logging"
	"github.com/newrelic/newrelic-client-go/pkg/region"

	"github.com/teavault/storefront-analytics/pkg/analytics/build"
	"github.com/teavault/storefront-analytics/pkg/analytics/log"
	"github.com/teavault/storefront-analytics/pkg/analytics/model"
)

// NewRelicSink forwards each record to New Relic as a custom event through
// the batched events API. Delivery is best effort like every other sink:
// enqueue failures are logged and dropped.
type NewRelicSink struct {
	appName			string
	buildInfo		build.BuildInfo
	nrClient      	*nrClient.NewRelic
	dryRun			bool
	now 			func() time.Time
}

func NewNewRelicSink(
	ctx context.Context,
	appName, licenseKey string,
	accountId int,
	r region.Name,
	dryRun bool,
) (*NewRelicSink, error) {
	client, err := nrClient.New(
		nrClient.ConfigLogger(
			logging.NewLogrusLogger(logging.ConfigLoggerInstance(log.RootLogger)),
		),
		configLicenseKey(licenseKey),
		nrClient.ConfigRegion(r.String()),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating New Relic client: %w", err)
	}

	if !dryRun {
		if err := client.Events.BatchMode(ctx, accountId); err != nil {
			return nil, fmt.Errorf("error starting batch events mode: %w", err)
		}
	}

	return &NewRelicSink{
		appName:   appName,
		buildInfo: build.GetBuildInfo(),
		nrClient:  client,
		dryRun:    dryRun,
		now:       time.Now,
	}, nil
}

func (s *NewRelicSink) Record(name string, parameters map[string]any) {
	event := model.NewEvent(name, parameters, s.now())

	evt := map[string]interface{}{}

	evt["eventType"] = event.Name

	for k, v := range event.Parameters {
		evt[k] = v
	}

	evt["timestamp"] = event.Timestamp.UnixMilli()

	evt["instrumentation.name"] = s.appName
	evt["instrumentation.provider"] = "teavault"
	evt["instrumentation.version"] = s.buildInfo.Version

	if s.dryRun || log.IsDebugEnabled() {
		log.Debugf("event payload JSON follows")
		log.PrettyPrintJson(evt)

		if s.dryRun {
			return
		}
	}

	if err := s.nrClient.Events.EnqueueEvent(context.Background(), evt); err != nil {
		log.Warnf("failed to enqueue event %s: %v", event.Name, err)
	}
}

// Flush drains the batched event queue. Call once during shutdown.
func (s *NewRelicSink) Flush() error {
	if s.dryRun {
		return nil
	}

	return s.nrClient.Events.Flush()
}

func configLicenseKey(licenseKey string) nrClient.ConfigOption {
	return func(cfg *config.Config) error {
		cfg.LicenseKey = licenseKey
		return nil
	}
}
