package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"go.uber.org/zap"
)

// RPCTransport opens wRPC sessions against full nodes.
type RPCTransport struct {
	dialer   NodeDialer
	timeouts Timeouts
	logger   *zap.Logger
}

// NewRPCTransport returns a transport dialing through dialer.
func NewRPCTransport(dialer NodeDialer, timeouts Timeouts, logger *zap.Logger) *RPCTransport {
	return &RPCTransport{
		dialer:   dialer,
		timeouts: timeouts.withDefaults(),
		logger:   logger.Named("rpcTransport"),
	}
}

func (t *RPCTransport) Kind() model.TransportKind {
	return model.TransportRPC
}

func (t *RPCTransport) Open(ctx context.Context, endpoint model.Endpoint) (Session, error) {
	const op = "connect"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dialCtx, cancel := context.WithTimeout(ctx, t.timeouts.Connect)
	defer cancel()

	conn, err := t.dialer.Dial(dialCtx, endpoint.Host, endpoint.Port)
	if err != nil {
		return nil, endpointError(op, endpoint, err)
	}
	return &rpcSession{
		conn:     conn,
		endpoint: endpoint,
		timeouts: t.timeouts,
		logger:   t.logger.With(zap.Stringer("endpoint", endpoint)),
	}, nil
}

type rpcSession struct {
	conn     NodeConn
	endpoint model.Endpoint
	timeouts Timeouts
	logger   *zap.Logger
}

// Prepare waits for the node to report sync. A node that does not sync in
// time is still used.
func (s *rpcSession) Prepare(ctx context.Context) error {
	syncCtx, cancel := context.WithTimeout(ctx, s.timeouts.Sync)
	defer cancel()

	if err := s.conn.Sync(syncCtx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		s.logger.Warn("partial sync, proceeding with unsynced node", zap.Error(err))
	}
	return nil
}

func (s *rpcSession) FetchUTXOs(ctx context.Context, address string) ([]model.UnspentOutput, error) {
	const op = "fetch utxos"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	callCtx, cancel := context.WithTimeout(ctx, s.timeouts.UTXOs)
	defer cancel()

	raw, err := s.conn.UTXOsByAddress(callCtx, address)
	if err != nil {
		return nil, endpointError(op, s.endpoint, err)
	}
	return normalizeUTXOs(op, s.endpoint, raw)
}

func (s *rpcSession) Submit(ctx context.Context, tx *model.SignedTransaction) (string, error) {
	const op = "submit transaction"
	if err := ctx.Err(); err != nil {
		return "", err
	}
	callCtx, cancel := context.WithTimeout(ctx, s.timeouts.Submit)
	defer cancel()

	id, err := s.conn.SubmitTransaction(callCtx, kaspa.NewSubmitRequest(*tx))
	if err != nil {
		return "", endpointError(op, s.endpoint, err)
	}
	return checkTransactionID(op, s.endpoint, id)
}

func (s *rpcSession) Close() error {
	return s.conn.Close()
}

// RESTTransport submits through public REST gateways.
type RESTTransport struct {
	gateway  Gateway
	fetcher  *UTXOFetcher
	timeouts Timeouts
	logger   *zap.Logger
}

// NewRESTTransport returns a transport over gateway.
func NewRESTTransport(gateway Gateway, timeouts Timeouts, logger *zap.Logger) *RESTTransport {
	return &RESTTransport{
		gateway:  gateway,
		fetcher:  NewUTXOFetcher(gateway, timeouts, logger),
		timeouts: timeouts.withDefaults(),
		logger:   logger.Named("restTransport"),
	}
}

func (t *RESTTransport) Kind() model.TransportKind {
	return model.TransportREST
}

// Open returns a session without touching the network; the probe runs in
// Prepare.
func (t *RESTTransport) Open(ctx context.Context, endpoint model.Endpoint) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if endpoint.BaseURL == "" {
		return nil, newError(KindConfiguration, "open", fmt.Errorf("%w: %s has no base url", ErrNoEndpoints, endpoint))
	}
	return &restSession{transport: t, endpoint: endpoint}, nil
}

type restSession struct {
	transport *RESTTransport
	endpoint  model.Endpoint
}

func (s *restSession) Prepare(ctx context.Context) error {
	const op = "probe"
	if err := ctx.Err(); err != nil {
		return err
	}
	probeCtx, cancel := context.WithTimeout(ctx, s.transport.timeouts.Probe)
	defer cancel()

	if err := s.transport.gateway.Status(probeCtx, s.endpoint.BaseURL); err != nil {
		return endpointError(op, s.endpoint, err)
	}
	return nil
}

func (s *restSession) FetchUTXOs(ctx context.Context, address string) ([]model.UnspentOutput, error) {
	return s.transport.fetcher.FetchUTXOs(ctx, s.endpoint, address)
}

func (s *restSession) Submit(ctx context.Context, tx *model.SignedTransaction) (string, error) {
	const op = "submit transaction"
	if err := ctx.Err(); err != nil {
		return "", err
	}
	callCtx, cancel := context.WithTimeout(ctx, s.transport.timeouts.Submit)
	defer cancel()

	id, err := s.transport.gateway.SubmitTransaction(callCtx, s.endpoint.BaseURL, kaspa.NewSubmitRequest(*tx))
	if err != nil {
		return "", endpointError(op, s.endpoint, err)
	}
	return checkTransactionID(op, s.endpoint, id)
}

func (s *restSession) Close() error {
	return nil
}

func checkTransactionID(op string, endpoint model.Endpoint, id string) (string, error) {
	if id == "" {
		return "", endpointError(op, endpoint, fmt.Errorf("%w: empty transaction id", kaspa.ErrMalformed))
	}
	return id, nil
}
