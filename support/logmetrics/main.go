// Package logmetrics exposes log line counts as prometheus counters.
package logmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Metrics is a logrus hook counting emitted log lines per severity.
type Metrics map[logrus.Level]prometheus.Counter

// New creates a Metrics hook with one counter per logrus severity, all under
// the given namespace.
func New(namespace string) Metrics {
	m := Metrics{}
	for _, level := range logrus.AllLevels {
		m[level] = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "log",
			Name:        "messages_total",
			Help:        "total number of log lines emitted, by severity",
			ConstLabels: prometheus.Labels{"severity": level.String()},
		})
	}
	return m
}

func (m Metrics) Fire(e *logrus.Entry) error {
	m[e.Level].Inc()
	return nil
}

func (m Metrics) Levels() []logrus.Level {
	return logrus.AllLevels
}
