package daemon

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/stellar/txrep/cmd/txrep-rpc/internal/config"
	"github.com/stellar/txrep/support/logmetrics"
)

func (d *Daemon) registerMetrics() {
	// logMetricsHook is a metric which counts log lines emitted by txrep rpc
	logMetricsHook := logmetrics.New(prometheusNamespace)
	d.logger.AddHook(logMetricsHook)
	for _, counter := range logMetricsHook {
		d.metricsRegistry.MustRegister(counter)
	}

	buildInfoGauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: prometheusNamespace, Subsystem: "build", Name: "info"},
		[]string{"version", "goversion", "commit", "branch", "build_timestamp"},
	)
	buildInfoGauge.With(prometheus.Labels{
		"version":         config.Version,
		"commit":          config.CommitHash,
		"branch":          config.Branch,
		"build_timestamp": config.BuildTimestamp,
		"goversion":       runtime.Version(),
	}).Inc()

	d.metricsRegistry.MustRegister(collectors.NewGoCollector())
	d.metricsRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	d.metricsRegistry.MustRegister(buildInfoGauge)
}

func (d *Daemon) MetricsRegistry() *prometheus.Registry {
	return d.metricsRegistry
}
