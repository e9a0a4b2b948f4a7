package methods

import (
	"context"

	"github.com/creachadair/jrpc2"

	"github.com/stellar/txrep/support/log"
	"github.com/stellar/txrep/txrep"
)

type TransactionToTxrepRequest struct {
	TransactionEnvelope string `json:"transactionEnvelope"`
}

type TransactionToTxrepResponse struct {
	Txrep string `json:"txrep"`
}

// NewTransactionToTxrepHandler returns a json rpc handler which renders a
// base64-encoded transaction envelope in the human-readable txrep form.
func NewTransactionToTxrepHandler(logger *log.Entry) jrpc2.Handler {
	return NewHandler(func(_ context.Context, request TransactionToTxrepRequest) (TransactionToTxrepResponse, error) {
		text, err := txrep.ToTxrep(request.TransactionEnvelope)
		if err != nil {
			logger.WithError(err).Debug("could not convert transaction envelope")
			return TransactionToTxrepResponse{}, &jrpc2.Error{
				Code:    jrpc2.InvalidParams,
				Message: err.Error(),
			}
		}
		return TransactionToTxrepResponse{Txrep: text}, nil
	})
}

type TxrepToTransactionRequest struct {
	Txrep string `json:"txrep"`
}

type TxrepToTransactionResponse struct {
	TransactionEnvelope string `json:"transactionEnvelope"`
}

// NewTxrepToTransactionHandler returns a json rpc handler which parses txrep
// text back into a base64-encoded transaction envelope.
func NewTxrepToTransactionHandler(logger *log.Entry) jrpc2.Handler {
	return NewHandler(func(_ context.Context, request TxrepToTransactionRequest) (TxrepToTransactionResponse, error) {
		b64, err := txrep.FromTxrep(request.Txrep)
		if err != nil {
			logger.WithError(err).Debug("could not parse txrep text")
			return TxrepToTransactionResponse{}, &jrpc2.Error{
				Code:    jrpc2.InvalidParams,
				Message: err.Error(),
			}
		}
		return TxrepToTransactionResponse{TransactionEnvelope: b64}, nil
	})
}
