// Package buildmetrics exposes build metadata as a Prometheus build_info gauge.
package buildmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/launchbynttdata/launch-build-info/buildinfo"
)

var labelNames = []string{
	buildinfo.FieldPackageVersion,
	"revision",
	buildinfo.FieldCompilerVersion,
	"target",
	"profile",
	"os",
}

type collector struct {
	desc   *prometheus.Desc
	labels []string
}

// NewCollector returns a collector for <namespace>_build_info, a constant 1
// labelled with the fields of info.
func NewCollector(namespace string, info buildinfo.Info) prometheus.Collector {
	return &collector{
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "build_info"),
			"Build metadata of the running binary. Always 1.",
			labelNames,
			nil,
		),
		labels: []string{
			info.PackageVersion.String(),
			info.Revision,
			info.CompilerVersion.String(),
			info.Target,
			info.Profile,
			info.OS.String(),
		},
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, 1, c.labels...)
}
