package main

import (
	"os"
	"runtime"
	"text/template"

	"github.com/alecthomas/kingpin/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	version   string
	revision  string
	buildDate string
	goVersion = runtime.Version()
)

var versionTmpl = template.Must(template.New("version").Parse(`
{{ .name }} (CPU Clock Monitor)

Version:     {{.version}}
Revision:    {{.revision}}
Build Date:  {{.buildDate}}
Go Version:  {{.goVersion}}
Platform:    {{.platform}}
`))

var buildInfo = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: "clockmon",
		Name:      "build_info",
		Help:      "A metric with a constant '1' value labeled by version from which clockmon was built.",
	},
	[]string{"version", "revision"},
)

func versionInfo() map[string]string {
	return map[string]string{
		"name":      "clockmon",
		"version":   version,
		"revision":  revision,
		"buildDate": buildDate,
		"goVersion": goVersion,
		"platform":  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func init() {
	buildInfo.WithLabelValues(version, revision).Set(1)
	kingpin.VersionFlag = kingpin.Flag("version", "Show the application version information").
		Short('v').
		PreAction(func(c *kingpin.ParseContext) error {
			versionTmpl.Execute(os.Stdout, versionInfo())
			os.Exit(0)
			return nil
		})
	kingpin.VersionFlag.Bool()
}
