package app

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/journal"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa/rest"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa/rpc"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/metrics"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/registry"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/repository/clickhouse"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/service"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/signer"
	"go.uber.org/zap"
)

// Engine is the public surface: balances, broadcasts and the endpoint list.
type Engine struct {
	network       model.Network
	registry      *registry.Registry
	reconciler    *service.BalanceReconciler
	orchestrators map[model.Network]*service.Orchestrator
	journal       *journal.Journal
	repository    *clickhouse.Repository
	logger        *zap.Logger
}

// NewEngine wires every collaborator. Call Start before use when a journal
// is configured and Close when done.
func NewEngine(cfg Config, logger *zap.Logger) (*Engine, error) {
	network, err := cfg.DefaultNetwork()
	if err != nil {
		return nil, err
	}
	reg, err := cfg.registry(network)
	if err != nil {
		return nil, err
	}
	timeouts := cfg.timeouts()

	e := &Engine{
		network:       network,
		registry:      reg,
		orchestrators: make(map[model.Network]*service.Orchestrator),
		logger:        logger.Named("engine"),
	}

	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, fmt.Errorf("journal repository: %w", err)
		}
		e.repository = repo
		e.journal = journal.New(repo, cfg.journal(), logger)
	}

	gateway := rest.NewClient(timeouts.Submit, cfg.RESTRPS, metrics.NewRESTGateway())
	e.reconciler, err = service.NewBalanceReconciler(gateway, reg, metrics.NewBalance(), timeouts, logger)
	if err != nil {
		return nil, err
	}

	deriver := signer.NewDeriver()
	builder, err := service.NewBuilder(signer.NewSchnorrSigner(deriver), cfg.Fee, logger)
	if err != nil {
		return nil, err
	}

	var j service.Journal
	if e.journal != nil {
		j = e.journal
	}
	restTransport := service.NewRESTTransport(gateway, timeouts, logger)
	broadcaster := metrics.NewBroadcaster()
	for _, n := range reg.Networks() {
		dialer := rpc.NewDialer(timeouts.Connect, cfg.RPCSecure, metrics.NewNodeRPC(n), logger)
		transports := []service.Transport{
			service.NewRPCTransport(nodeDialer{dialer: dialer}, timeouts, logger),
			restTransport,
		}
		o, err := service.NewOrchestrator(reg, transports, builder, deriver, broadcaster, j, timeouts, logger.With(zap.String("network", string(n))))
		if err != nil {
			return nil, err
		}
		e.orchestrators[n] = o
	}
	return e, nil
}

// Start runs the journal writer until ctx ends or Close is called.
func (e *Engine) Start(ctx context.Context) {
	if e.journal != nil {
		e.journal.Start(ctx)
	}
}

// Network is the network used when a caller names none.
func (e *Engine) Network() model.Network {
	return e.network
}

func (e *Engine) RequestBalance(ctx context.Context, address string, network model.Network) model.Balance {
	return e.reconciler.RequestBalance(ctx, address, network)
}

func (e *Engine) RequestBalances(ctx context.Context, addresses []string, network model.Network) []model.Balance {
	return e.reconciler.RequestBalances(ctx, addresses, network)
}

// RequestBroadcast routes the intent to the orchestrator of its network. An
// unknown network still goes through validation so the caller gets a
// configuration error.
func (e *Engine) RequestBroadcast(ctx context.Context, intent model.TransactionIntent) (*model.BroadcastResult, error) {
	o, ok := e.orchestrators[intent.Network]
	if !ok {
		o, ok = e.orchestrators[e.network]
	}
	if !ok {
		return nil, &service.Error{
			Kind: service.KindConfiguration,
			Op:   "broadcast",
			Err:  fmt.Errorf("%w: %q", service.ErrUnsupportedNetwork, intent.Network),
		}
	}
	return o.RequestBroadcast(ctx, intent)
}

// BroadcastBudget is the longest a single broadcast may run on any network
// the engine serves.
func (e *Engine) BroadcastBudget() time.Duration {
	var longest time.Duration
	for n, o := range e.orchestrators {
		budget, err := o.Budget(n)
		if err != nil {
			e.logger.Debug("network without broadcast budget", zap.String("network", string(n)), zap.Error(err))
			continue
		}
		longest = max(longest, budget)
	}
	return longest
}

// Endpoints lists the candidates of network in the order a broadcast tries
// them.
func (e *Engine) Endpoints(network model.Network) ([]model.Endpoint, error) {
	return e.registry.Candidates(network)
}

// Close flushes the journal and closes the store.
func (e *Engine) Close() error {
	if e.journal != nil {
		e.journal.Stop()
	}
	if e.repository != nil {
		if err := e.repository.Close(); err != nil {
			return fmt.Errorf("close journal repository: %w", err)
		}
	}
	return nil
}

// nodeDialer narrows *rpc.Conn to service.NodeConn without leaking a typed
// nil on failure.
type nodeDialer struct {
	dialer *rpc.Dialer
}

func (d nodeDialer) Dial(ctx context.Context, host string, port int) (service.NodeConn, error) {
	conn, err := d.dialer.Dial(ctx, host, port)
	if err != nil {
		return nil, err
	}
	return conn, nil
}
