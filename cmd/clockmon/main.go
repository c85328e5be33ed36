package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/digitalocean/clockmon/internal/log"
	"github.com/digitalocean/clockmon/pkg/writer"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP, syscall.SIGINT)
	go func() {
		if sig := <-stop; sig != nil {
			log.Info("caught signal, shutting down: %s", sig.String())
		}
		cancel()
	}()

	// parse all command line flags
	kingpin.HelpFlag.Short('h')
	kingpin.Parse()

	if config.debug {
		log.SetLevel(log.LevelDebug)
	}

	if config.syslog {
		if err := log.InitSyslog(); err != nil {
			log.Error("failed to initialize syslog. Using standard logging: %+v", err)
		}
	}

	if err := checkConfig(); err != nil {
		log.Fatal("configuration failure: %+v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(buildInfo, sampleErrors, frequency)
	initWebListener(reg)

	w := writer.NewTable(os.Stdout)
	if err := w.WriteHeader(); err != nil {
		log.Fatal("failed to write header: %+v", err)
	}

	run(ctx, initSampler(), w, fixedInterval(sampleInterval), reg, os.Stderr)
}
