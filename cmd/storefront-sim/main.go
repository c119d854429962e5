package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/nrlogrus"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/teavault/storefront-analytics/pkg/analytics"
	"github.com/teavault/storefront-analytics/pkg/analytics/build"
	"github.com/teavault/storefront-analytics/pkg/analytics/log"
	"github.com/teavault/storefront-analytics/pkg/analytics/sink"
	"github.com/teavault/storefront-analytics/pkg/analytics/video"
	"github.com/teavault/storefront-analytics/pkg/storefront"
)

const appName = "teavault-storefront-sim"

func main() {
	ctx := context.Background()

	parseArgs()

	if viper.GetBool("version") {
		showVersionAndExit()
	}

	loadConfig()

	err := setupLogging(log.RootLogger)
	fatalIfErr(err)

	app := setupApm(log.RootLogger)
	if app != nil {
		defer app.Shutdown(3 * time.Second)
	}

	queue := sink.NewQueueSink()

	emitter, nrSink, err := buildEmitter(ctx, queue)
	fatalIfErr(err)

	if nrSink != nil {
		defer func() {
			if err := nrSink.Flush(); err != nil {
				log.Warnf("flush event queue to New Relic failed: %v", err)
			}
		}()
	}

	runJourney(emitter)

	dumpQueue(queue)
}

func parseArgs() {
	pflag.Bool(
		"verbose",
		false,
		"enable verbose logging",
	)
	pflag.Bool(
		"dry_run",
		false,
		"print New Relic payloads instead of sending them",
	)
	pflag.Bool(
		"version",
		false,
		"display version information",
	)
	pflag.String(
		"config_path",
		"",
		"path to YML configuration file",
	)
	pflag.String(
		"env_prefix",
		"",
		"prefix to use for environment variable lookup",
	)

	pflag.Parse()

	viper.BindPFlags(pflag.CommandLine)
}

func loadConfig() {
	envPrefix := viper.GetString("env_prefix")

	viper.AutomaticEnv()
	if envPrefix != "" {
		viper.SetEnvPrefix(envPrefix)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	configPath := viper.GetString("config_path")

	var err error
	if configPath == "" {
		err = storefront.NewConfigWithPaths()
	} else {
		err = storefront.NewConfigWithFile(configPath)
	}

	// Every setting has a default or environment fallback, so a missing
	// config file is not fatal.
	if err != nil {
		log.Warnf("no configuration file loaded: %v", err)
	}
}

func setupLogging(logger *logrus.Logger) error {
	verbose := viper.GetBool("verbose")

	if viper.IsSet("log.fileName") {
		file, err := os.OpenFile(
			viper.GetString("log.fileName"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0666,
		)
		if err != nil {
			log.Warnf("failed to log to file, using default stderr: %s", err)
		} else {
			logger.Out = file
		}
	}

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
		return nil
	}

	logLevel := viper.GetString("log.level")
	if logLevel != "" {
		log.SetLevel(logLevel)
	}

	return nil
}

// setupApm instruments the simulator itself. The agent is nil safe, so a
// missing license key just means no APM data.
func setupApm(logger *logrus.Logger) *newrelic.Application {
	licenseKey := viper.GetString("licenseKey")
	if licenseKey == "" {
		licenseKey = os.Getenv("NEW_RELIC_LICENSE_KEY")
	}

	app, _ := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(licenseKey),
	)

	if app != nil {
		logger.SetFormatter(nrlogrus.NewFormatter(app, &logrus.TextFormatter{}))
	}

	return app
}

func buildEmitter(
	ctx context.Context,
	queue *sink.QueueSink,
) (*analytics.Emitter, *sink.NewRelicSink, error) {
	opts := []analytics.EmitterOpt{
		analytics.WithOrigin(storefront.GetSiteOrigin()),
		analytics.WithSink(queue),
		analytics.WithSink(sink.NewLogSink()),
	}

	if collectorUrl := storefront.GetCollectorUrl(); collectorUrl != "" {
		opts = append(opts, analytics.WithSink(sink.NewHTTPSink(collectorUrl)))
	}

	nrSink, err := buildNewRelicSink(ctx)
	if err != nil {
		return nil, nil, err
	}

	if nrSink != nil {
		opts = append(opts, analytics.WithSink(nrSink))
	}

	return analytics.NewEmitter(opts...), nrSink, nil
}

func buildNewRelicSink(ctx context.Context) (*sink.NewRelicSink, error) {
	licenseKey, err := storefront.GetLicenseKey()
	if err != nil {
		log.Debugf("New Relic sink not configured: %v", err)
		return nil, nil
	}

	accountId, err := storefront.GetAccountId()
	if err != nil {
		log.Debugf("New Relic sink not configured: %v", err)
		return nil, nil
	}

	nrRegion, err := storefront.GetNrRegion()
	if err != nil {
		return nil, err
	}

	return sink.NewNewRelicSink(
		ctx,
		appName,
		licenseKey,
		accountId,
		nrRegion,
		viper.GetBool("dry_run"),
	)
}

// runJourney replays one shopper visit: browse, add to cart, ask a
// question, grab the catalog PDF, and watch the featured brewing video.
func runJourney(emitter *analytics.Emitter) {
	catalog := storefront.DefaultCatalog()
	cart := storefront.NewCart(emitter)

	emitter.TrackPageView(storefront.PageName("/"), "/")
	emitter.TrackCTAClick("hero_shop_now", "Shop Now", "hero_section")
	emitter.TrackNavigation("Products", "cta_button")

	emitter.TrackPageView(storefront.PageName("/products"), "/products")

	if p, ok := catalog.FindProduct(3); ok {
		cart.Add(p)
	}

	timer := storefront.StartDownload(emitter, "product-catalog.pdf", "pdf", 250*time.Millisecond)
	defer timer.Stop()

	emitter.TrackNavigation("Product Detail", "product_list")
	emitter.TrackPageView(storefront.PageName("/products/1"), "/products/1")

	emitter.TrackPageView(storefront.PageName("/contact"), "/contact")

	form := storefront.NewContactForm(emitter)
	form.SetField("name", "Jordan")
	form.SetField("email", "jordan@example.com")
	form.SetField("subject", "product_inquiry")
	form.SetField("message", "How should I store loose leaf tea?")
	form.Submit()

	emitter.TrackOutboundClick("Instagram", "https://instagram.com/teavault")

	emitter.TrackPageView(storefront.PageName("/videos"), "/videos")
	watchFeaturedVideo(emitter, catalog.FeaturedVideo)

	// Let the download completion timer fire before the queue is dumped.
	time.Sleep(500 * time.Millisecond)

	fmt.Fprintln(os.Stderr, cart.Checkout())
}

func watchFeaturedVideo(emitter *analytics.Emitter, v storefront.Video) {
	session := video.NewSession(emitter, v.ID, v.Title)
	defer session.Close()

	const duration = 120.0

	session.OnPlay(0)
	session.OnTimeUpdate(12, duration)
	session.OnTimeUpdate(31, duration)

	session.OnSeekStart(31)
	session.OnSeekEnd(70)
	session.OnTimeUpdate(70, duration)

	session.OnPause(80, duration)
	session.OnPlay(80)

	session.OnTimeUpdate(109, duration)
	session.OnTimeUpdate(118, duration)
}

func dumpQueue(queue *sink.QueueSink) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(queue.Records()); err != nil {
		log.Errorf("failed to dump event queue: %v", err)
	}
}

func showVersionAndExit() {
	buildInfo := build.GetBuildInfo()

	fmt.Printf(
		"%s Version: %s, Platform: %s, GoVersion: %s, GitCommit: %s, BuildDate: %s\n",
		appName,
		buildInfo.Version,
		fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		runtime.Version(),
		buildInfo.Commit,
		buildInfo.Date,
	)
	os.Exit(0)
}

func fatalIfErr(err error) {
	if err != nil {
		log.Fatalf(err)
	}
}
