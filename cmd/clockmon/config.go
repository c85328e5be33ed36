package main

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/digitalocean/clockmon/internal/log"
	"github.com/digitalocean/clockmon/pkg/sampler"
)

var (
	config struct {
		debug            bool
		syslog           bool
		powermetricsPath string
		noSudo           bool
		webListenAddress string
		webListen        bool
	}

	errNoPowermetricsPath = errors.New("powermetrics path must not be empty")
)

const (
	defaultPowermetricsPath = "powermetrics"
	defaultWebListenAddress = "127.0.0.1:9101"

	// sampleInterval is the fixed delay between the end of one sample and
	// the start of the next
	sampleInterval = 2 * time.Second
)

func init() {
	kingpin.CommandLine.Name = "clockmon"
	kingpin.CommandLine.Help = "Print P-Cluster and E-Cluster CPU frequencies reported by powermetrics."

	kingpin.Flag("debug", "display debug information to stderr").
		Envar("CLOCKMON_DEBUG").
		BoolVar(&config.debug)

	kingpin.Flag("syslog", "enable logging to syslog").
		BoolVar(&config.syslog)

	kingpin.Flag("powermetrics-path", "powermetrics binary to invoke").
		Default(defaultPowermetricsPath).
		Envar("CLOCKMON_POWERMETRICS_PATH").
		StringVar(&config.powermetricsPath)

	kingpin.Flag("no-sudo", "run powermetrics directly instead of through sudo").
		Default("false").
		BoolVar(&config.noSudo)

	kingpin.Flag("web.listen", "enable a local endpoint for scrapeable prometheus metrics").
		Default("false").
		BoolVar(&config.webListen)

	kingpin.Flag("web.listen-address", `address of the prometheus metrics endpoint (ex. ":9101")`).
		Default(defaultWebListenAddress).
		Envar("CLOCKMON_WEB_LISTEN_ADDRESS").
		StringVar(&config.webListenAddress)
}

func checkConfig() error {
	if strings.TrimSpace(config.powermetricsPath) == "" {
		return errNoPowermetricsPath
	}
	if config.webListen {
		if _, _, err := net.SplitHostPort(config.webListenAddress); err != nil {
			return errors.Wrapf(err, "web listen address %q is not valid", config.webListenAddress)
		}
	}
	return nil
}

func initSampler() *sampler.Sampler {
	cfg := sampler.SudoConfig(config.powermetricsPath)
	if config.noSudo {
		cfg = sampler.DirectConfig(config.powermetricsPath)
	}

	s := sampler.New(cfg, sampler.ExecRunner{})
	c := s.Config()
	log.Debug("sampling with: %s %s", c.Command, strings.Join(c.Args, " "))
	return s
}

func initWebListener(g prometheus.Gatherer) {
	if !config.webListen {
		return
	}

	go func() {
		log.Info("serving metrics on %s", config.webListenAddress)
		err := http.ListenAndServe(config.webListenAddress, newMetricsHandler(g))
		if err != nil {
			log.Fatal("metrics listener failed: %+v", err)
		}
	}()
}

func newMetricsHandler(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return mux
}
