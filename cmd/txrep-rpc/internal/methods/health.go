package methods

import (
	"context"

	"github.com/creachadair/jrpc2"
)

type HealthCheckResult struct {
	Status string `json:"status"`
}

// NewHealthCheck returns a health check json rpc handler. The service is
// stateless, so a reachable process is a healthy one.
func NewHealthCheck() jrpc2.Handler {
	return NewHandler(func(_ context.Context) (HealthCheckResult, error) {
		return HealthCheckResult{Status: "healthy"}, nil
	})
}
