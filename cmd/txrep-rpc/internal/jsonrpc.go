package internal

import (
	"context"
	"net/http"
	"time"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/creachadair/jrpc2/jhttp"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stellar/txrep/cmd/txrep-rpc/internal/config"
	"github.com/stellar/txrep/cmd/txrep-rpc/internal/methods"
	"github.com/stellar/txrep/support/log"
)

const prometheusNamespace = "txrep_rpc"

// Handler is the HTTP handler which exposes the JSON RPC methods.
type Handler struct {
	bridge *jhttp.Bridge
	logger *log.Entry
	http.Handler
}

// Close closes all the resources held by this Handler instance.
// After Close is called the Handler instance will stop accepting JSON RPC requests.
func (h Handler) Close() {
	if err := h.bridge.Close(); err != nil {
		h.logger.WithError(err).Warn("could not close bridge")
	}
}

type HandlerParams struct {
	Logger          *log.Entry
	MetricsRegistry *prometheus.Registry
}

// NewJSONRPCHandler constructs a Handler instance.
func NewJSONRPCHandler(cfg *config.Config, params HandlerParams) Handler {
	bridgeOptions := jhttp.BridgeOptions{
		Server: &jrpc2.ServerOptions{
			Logger: func(text string) { params.Logger.Debug(text) },
		},
	}

	handlers := []struct {
		methodName string
		handler    jrpc2.Handler
	}{
		{
			methodName: "convertTransactionToTxrep",
			handler:    methods.NewTransactionToTxrepHandler(params.Logger),
		},
		{
			methodName: "convertTxrepToTransaction",
			handler:    methods.NewTxrepToTransactionHandler(params.Logger),
		},
		{
			methodName: "getHealth",
			handler:    methods.NewHealthCheck(),
		},
		{
			methodName: "getVersionInfo",
			handler:    methods.NewGetVersionInfoHandler(),
		},
	}

	handlersMap := handler.Map{}
	for _, entry := range handlers {
		requestDurationMetric := prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Namespace:  prometheusNamespace,
			Subsystem:  "json_rpc",
			Name:       "request_duration_seconds",
			Help:       "JSON RPC request duration",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			ConstLabels: prometheus.Labels{
				"endpoint": entry.methodName,
			},
		}, []string{"status"})
		params.MetricsRegistry.MustRegister(requestDurationMetric)
		handlersMap[entry.methodName] = instrumentedHandler(entry.handler, requestDurationMetric)
	}

	bridge := jhttp.NewBridge(handlersMap, &bridgeOptions)
	return Handler{
		bridge:  &bridge,
		logger:  params.Logger,
		Handler: bridge,
	}
}

func instrumentedHandler(h jrpc2.Handler, duration *prometheus.SummaryVec) jrpc2.Handler {
	return func(ctx context.Context, r *jrpc2.Request) (interface{}, error) {
		startTime := time.Now()
		result, err := h(ctx, r)
		status := "ok"
		if err != nil {
			status = "error"
		}
		duration.With(prometheus.Labels{"status": status}).Observe(time.Since(startTime).Seconds())
		return result, err
	}
}
