package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"go.uber.org/zap"
)

// UTXOFetcher reads spendable outputs from REST gateways.
type UTXOFetcher struct {
	gateway Gateway
	timeout Timeouts
	logger  *zap.Logger
}

// NewUTXOFetcher builds a fetcher over gateway.
func NewUTXOFetcher(gateway Gateway, timeouts Timeouts, logger *zap.Logger) *UTXOFetcher {
	return &UTXOFetcher{
		gateway: gateway,
		timeout: timeouts.withDefaults(),
		logger:  logger.Named("utxoFetcher"),
	}
}

// FetchUTXOs returns the normalised outputs of address held by endpoint.
func (f *UTXOFetcher) FetchUTXOs(ctx context.Context, endpoint model.Endpoint, address string) ([]model.UnspentOutput, error) {
	const op = "fetch utxos"
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, f.timeout.UTXOs)
	defer cancel()

	raw, err := f.gateway.UTXOs(callCtx, endpoint.BaseURL, address)
	if err != nil {
		return nil, endpointError(op, endpoint, err)
	}
	return normalizeUTXOs(op, endpoint, raw)
}

func normalizeUTXOs(op string, endpoint model.Endpoint, raw []kaspa.UTXO) ([]model.UnspentOutput, error) {
	utxos, err := kaspa.ToUnspentOutputs(raw)
	if err != nil {
		return nil, endpointError(op, endpoint, err)
	}
	if len(utxos) == 0 {
		return nil, newError(KindFunds, op, ErrNoSpendableOutputs)
	}
	return utxos, nil
}

// endpointError classifies a transport failure against endpoint.
func endpointError(op string, endpoint model.Endpoint, err error) error {
	cause := ErrEndpointUnavailable
	if errors.Is(err, kaspa.ErrMalformed) {
		cause = ErrMalformedResponse
	}
	return newError(KindEndpoint, op+" via "+endpoint.String(), fmt.Errorf("%w: %w", cause, err))
}
