package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/registry"
	"github.com/goodnatureofminers/utxo-broadcaster/pkg/safe"
	"github.com/goodnatureofminers/utxo-broadcaster/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultBalanceWorkers = 4

// BalanceReconciler reads balances from REST gateways and normalises the
// different response shapes.
type BalanceReconciler struct {
	gateway  Gateway
	registry Registry
	metrics  BalanceMetrics
	timeout  time.Duration
	workers  int
	logger   *zap.Logger
}

// NewBalanceReconciler builds a reconciler.
func NewBalanceReconciler(gateway Gateway, reg Registry, metrics BalanceMetrics, timeouts Timeouts, logger *zap.Logger) (*BalanceReconciler, error) {
	if gateway == nil {
		return nil, errors.New("gateway is required")
	}
	if reg == nil {
		return nil, errors.New("registry is required")
	}
	if metrics == nil {
		return nil, errors.New("balance metrics is required")
	}
	return &BalanceReconciler{
		gateway:  gateway,
		registry: reg,
		metrics:  metrics,
		timeout:  timeouts.withDefaults().Balance,
		workers:  defaultBalanceWorkers,
		logger:   logger.Named("balanceReconciler"),
	}, nil
}

// FetchBalance queries one endpoint and decodes the body with shape.
func (r *BalanceReconciler) FetchBalance(ctx context.Context, endpoint model.Endpoint, address string, shape model.BalanceShape) (model.Balance, error) {
	const op = "fetch balance"
	if err := ctx.Err(); err != nil {
		return model.Balance{}, err
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.gateway.Balance(callCtx, endpoint.BaseURL, address)
	if err != nil {
		return model.Balance{}, endpointError(op, endpoint, err)
	}
	available, pending, err := resp.Split(shape)
	if err != nil {
		return model.Balance{}, endpointError(op, endpoint, err)
	}
	if _, err := safe.Add(available, pending); err != nil {
		return model.Balance{}, endpointError(op, endpoint, fmt.Errorf("%w: %v", kaspa.ErrMalformed, err))
	}
	return model.NewBalance(address, model.Network(""), available, pending, endpoint.String()), nil
}

// RequestBalance never fails: when no gateway answers it returns a zero
// balance tagged with source "error" and the last error message.
func (r *BalanceReconciler) RequestBalance(ctx context.Context, address string, network model.Network) model.Balance {
	started := time.Now()
	balance, err := r.requestBalance(ctx, address, network)
	r.metrics.Observe(network, balance.Source, err, started)
	if err != nil {
		r.logger.Warn("balance unavailable",
			zap.String("address", address),
			zap.String("network", string(network)),
			zap.Error(err),
		)
		return model.ErrorBalance(address, network, err)
	}
	return balance
}

// RequestBalances refreshes several addresses concurrently.
func (r *BalanceReconciler) RequestBalances(ctx context.Context, addresses []string, network model.Network) []model.Balance {
	return workerpool.Map(ctx, r.workers, addresses,
		func(ctx context.Context, address string) model.Balance {
			return r.RequestBalance(ctx, address, network)
		},
		func(ctx context.Context, address string) model.Balance {
			return model.ErrorBalance(address, network, ctx.Err())
		},
	)
}

func (r *BalanceReconciler) requestBalance(ctx context.Context, address string, network model.Network) (model.Balance, error) {
	const op = "request balance"

	candidates, err := r.registry.CandidatesFor(network, model.TransportREST)
	if err != nil {
		if errors.Is(err, registry.ErrUnsupportedNetwork) {
			return model.Balance{}, newError(KindConfiguration, op, fmt.Errorf("%w: %q", ErrUnsupportedNetwork, network))
		}
		return model.Balance{}, newError(KindConfiguration, op, err)
	}
	if err := validateAddress(op, address, network, ErrInvalidDestination); err != nil {
		return model.Balance{}, err
	}
	if len(candidates) == 0 {
		return model.Balance{}, newError(KindConfiguration, op, fmt.Errorf("%w for %s", ErrNoEndpoints, network))
	}

	var lastErr error
	for _, endpoint := range candidates {
		if err := ctx.Err(); err != nil {
			return model.Balance{}, err
		}
		balance, err := r.FetchBalance(ctx, endpoint, address, endpoint.BalanceShape)
		if err != nil {
			r.logger.Debug("balance endpoint failed", zap.Stringer("endpoint", endpoint), zap.Error(err))
			lastErr = err
			continue
		}
		balance.Network = network
		return balance, nil
	}
	return model.Balance{}, lastErr
}

// validateAddress decodes address and checks its prefix against network.
func validateAddress(op, address string, network model.Network, invalid error) error {
	if _, err := kaspa.ValidateForNetwork(address, network); err != nil {
		if errors.Is(err, kaspa.ErrNetworkMismatch) {
			return newError(KindValidation, op, fmt.Errorf("%w: %v", ErrNetworkMismatch, err))
		}
		return newError(KindValidation, op, fmt.Errorf("%w: %v", invalid, err))
	}
	return nil
}
