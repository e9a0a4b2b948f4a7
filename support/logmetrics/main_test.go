package logmetrics

import (
	"io"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, m Metrics, level logrus.Level) float64 {
	var metric dto.Metric
	require.NoError(t, m[level].Write(&metric))
	return metric.GetCounter().GetValue()
}

func TestCountsLogLinesPerSeverity(t *testing.T) {
	m := New("test")

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)
	logger.AddHook(m)

	logger.Info("one")
	logger.Info("two")
	logger.Warn("three")

	assert.Equal(t, 2.0, counterValue(t, m, logrus.InfoLevel))
	assert.Equal(t, 1.0, counterValue(t, m, logrus.WarnLevel))
	assert.Equal(t, 0.0, counterValue(t, m, logrus.ErrorLevel))
}

func TestLevelsCoverAllSeverities(t *testing.T) {
	m := New("test")
	assert.Equal(t, logrus.AllLevels, m.Levels())
	assert.Len(t, m, len(logrus.AllLevels))
}
