package methods

import (
	"context"

	"github.com/creachadair/jrpc2"

	"github.com/stellar/txrep/cmd/txrep-rpc/internal/config"
)

type GetVersionInfoResponse struct {
	Version        string `json:"version"`
	CommitHash     string `json:"commitHash"`
	BuildTimestamp string `json:"buildTimestamp"`
}

func NewGetVersionInfoHandler() jrpc2.Handler {
	return NewHandler(func(_ context.Context) (GetVersionInfoResponse, error) {
		return GetVersionInfoResponse{
			Version:        config.Version,
			CommitHash:     config.CommitHash,
			BuildTimestamp: config.BuildTimestamp,
		}, nil
	})
}
