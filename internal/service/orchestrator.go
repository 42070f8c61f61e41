package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/clock"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/kaspa"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/goodnatureofminers/utxo-broadcaster/internal/registry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is a step of a single broadcast.
type State string

const (
	StateIdle                 State = "idle"
	StateSelectingEndpoint    State = "selecting_endpoint"
	StateConnecting           State = "connecting"
	StateBuilding             State = "building"
	StateSubmitting           State = "submitting"
	StateRetryingNextEndpoint State = "retrying_next_endpoint"
	StateSucceeded            State = "succeeded"
	StateExhaustedFallback    State = "exhausted_fallback"
	StateAborted              State = "aborted"
)

// Terminal reports whether no step follows s.
func (s State) Terminal() bool {
	switch s {
	case StateSucceeded, StateExhaustedFallback, StateAborted:
		return true
	default:
		return false
	}
}

type stepFunc func(ctx context.Context, b *broadcast) State

// broadcast is the mutable state of one RequestBroadcast call.
type broadcast struct {
	id         string
	intent     model.TransactionIntent
	source     string
	candidates []model.Endpoint
	budget     clock.Budget
	next       int

	endpoint model.Endpoint
	started  time.Time
	session  Session
	tx       *model.SignedTransaction
	txID     string

	attempts []model.Attempt
	lastErr  error
	fatal    error
}

// Orchestrator submits transactions through the candidate endpoints of a
// network, one at a time, until one accepts.
type Orchestrator struct {
	registry   Registry
	transports []Transport
	builder    TransactionBuilder
	deriver    AddressDeriver
	metrics    BroadcastMetrics
	journal    Journal
	timeouts   Timeouts
	logger     *zap.Logger
	steps      map[State]stepFunc
}

// NewOrchestrator wires an orchestrator. Transports are tried in the order
// given. journal may be nil.
func NewOrchestrator(
	reg Registry,
	transports []Transport,
	builder TransactionBuilder,
	deriver AddressDeriver,
	metrics BroadcastMetrics,
	journal Journal,
	timeouts Timeouts,
	logger *zap.Logger,
) (*Orchestrator, error) {
	if reg == nil {
		return nil, errors.New("registry is required")
	}
	if len(transports) == 0 {
		return nil, errors.New("at least one transport is required")
	}
	if builder == nil {
		return nil, errors.New("builder is required")
	}
	if deriver == nil {
		return nil, errors.New("address deriver is required")
	}
	if metrics == nil {
		return nil, errors.New("broadcast metrics is required")
	}

	o := &Orchestrator{
		registry:   reg,
		transports: transports,
		builder:    builder,
		deriver:    deriver,
		metrics:    metrics,
		journal:    journal,
		timeouts:   timeouts.withDefaults(),
		logger:     logger.Named("orchestrator"),
	}
	o.steps = map[State]stepFunc{
		StateIdle:                 o.validate,
		StateSelectingEndpoint:    o.selectEndpoint,
		StateConnecting:           o.connect,
		StateBuilding:             o.build,
		StateSubmitting:           o.submit,
		StateRetryingNextEndpoint: o.retry,
	}
	return o, nil
}

// RequestBroadcast validates, builds and submits intent. Validation,
// configuration, funds and signing problems are returned as errors before or
// instead of trying further endpoints. Otherwise the result is either a
// success or a failure carrying the attempt trail and manual alternatives.
func (o *Orchestrator) RequestBroadcast(ctx context.Context, intent model.TransactionIntent) (*model.BroadcastResult, error) {
	started := time.Now()
	b := &broadcast{id: uuid.NewString(), intent: intent}
	logger := o.logger.With(zap.String("operation_id", b.id), zap.String("network", string(intent.Network)))

	final := o.run(ctx, b, logger)

	switch final {
	case StateSucceeded:
		o.metrics.ObserveOutcome(intent.Network, model.OutcomeSuccess, started)
		result := &model.BroadcastResult{
			OperationID: b.id,
			Outcome:     model.OutcomeSuccess,
			Network:     intent.Network,
			Success: &model.BroadcastSuccess{
				TransactionID:  b.txID,
				Endpoint:       b.endpoint,
				Transport:      b.endpoint.Kind,
				Fee:            b.tx.Fee,
				TriedEndpoints: b.attempts,
			},
		}
		logger.Info("transaction broadcast",
			zap.String("transaction_id", b.txID),
			zap.Stringer("endpoint", b.endpoint),
			zap.Int("failed_attempts", len(b.attempts)),
		)
		o.record(ctx, result)
		return result, nil
	case StateExhaustedFallback:
		o.metrics.ObserveOutcome(intent.Network, model.OutcomeFailure, started)
		result := o.exhausted(b)
		logger.Warn("broadcast exhausted every endpoint",
			zap.Int("attempts", len(b.attempts)),
			zap.Error(b.lastErr),
		)
		o.record(ctx, result)
		return result, nil
	default:
		o.metrics.ObserveOutcome(intent.Network, model.OutcomeFailure, started)
		logger.Warn("broadcast aborted", zap.Int("failed_attempts", len(b.attempts)), zap.Error(b.fatal))
		if b.endpoint.Kind == "" {
			return nil, b.fatal
		}
		aborted := o.aborted(b)
		o.record(ctx, aborted.result)
		return nil, aborted.err
	}
}

// run drives b through the transition table until a terminal state. The
// overall deadline is applied once the candidates are known.
func (o *Orchestrator) run(ctx context.Context, b *broadcast, logger *zap.Logger) State {
	defer o.closeSession(b, logger)

	state := StateIdle
	bounded := false
	for !state.Terminal() {
		step, ok := o.steps[state]
		if !ok {
			b.fatal = fmt.Errorf("no transition from state %q", state)
			return StateAborted
		}
		next := step(ctx, b)
		logger.Debug("state transition", zap.String("from", string(state)), zap.String("to", string(next)))
		if !bounded && next == StateSelectingEndpoint {
			var cancel context.CancelFunc
			ctx, cancel = clock.WithBudget(ctx, b.budget)
			defer cancel()
			bounded = true
		}
		state = next
	}
	return state
}

func (o *Orchestrator) validate(ctx context.Context, b *broadcast) State {
	const op = "validate intent"
	intent := b.intent

	if !intent.Network.Valid() {
		b.fatal = newError(KindConfiguration, op, fmt.Errorf("%w: %q", ErrUnsupportedNetwork, intent.Network))
		return StateAborted
	}
	if intent.Amount == 0 {
		b.fatal = newError(KindValidation, op, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount))
		return StateAborted
	}
	if err := validateAddress(op, intent.Destination, intent.Network, ErrInvalidDestination); err != nil {
		b.fatal = err
		return StateAborted
	}
	if intent.Material.Empty() {
		b.fatal = newError(KindValidation, op, fmt.Errorf("%w: no signing material", ErrSourceMismatch))
		return StateAborted
	}
	source, err := o.deriver.DeriveAddress(intent.Material, intent.Network)
	if err != nil {
		b.fatal = newError(KindSigning, op, fmt.Errorf("%w: derive source address: %w", ErrSigningFailed, err))
		return StateAborted
	}
	if intent.SourceAddress != "" {
		if err := validateAddress(op, intent.SourceAddress, intent.Network, ErrSourceMismatch); err != nil {
			b.fatal = err
			return StateAborted
		}
		if !sameAddress(intent.SourceAddress, source) {
			b.fatal = newError(KindValidation, op, fmt.Errorf("%w: %s", ErrSourceMismatch, intent.SourceAddress))
			return StateAborted
		}
	}
	b.source = source

	candidates, budget, err := o.candidates(op, intent.Network)
	if err != nil {
		b.fatal = err
		return StateAborted
	}
	b.candidates, b.budget = candidates, budget
	return StateSelectingEndpoint
}

// candidates lists the endpoints of network in attempt order together with
// the budget that covers a full attempt on each of them.
func (o *Orchestrator) candidates(op string, network model.Network) ([]model.Endpoint, clock.Budget, error) {
	var (
		out    []model.Endpoint
		budget clock.Budget
	)
	for _, transport := range o.transports {
		endpoints, err := o.registry.CandidatesFor(network, transport.Kind())
		if err != nil {
			if errors.Is(err, registry.ErrUnsupportedNetwork) {
				err = fmt.Errorf("%w: %v", ErrUnsupportedNetwork, err)
			}
			return nil, clock.Budget{}, newError(KindConfiguration, op, err)
		}
		for range endpoints {
			budget.Add(o.timeouts.attempt(transport.Kind()))
		}
		out = append(out, endpoints...)
	}
	if len(out) == 0 {
		return nil, clock.Budget{}, newError(KindConfiguration, op, fmt.Errorf("%w for %s", ErrNoEndpoints, network))
	}
	return out, budget, nil
}

// Budget returns the longest a broadcast on network may run before it is
// reported as exhausted.
func (o *Orchestrator) Budget(network model.Network) (time.Duration, error) {
	_, budget, err := o.candidates("broadcast budget", network)
	if err != nil {
		return 0, err
	}
	return budget.Total(), nil
}

func (o *Orchestrator) selectEndpoint(ctx context.Context, b *broadcast) State {
	if err := ctx.Err(); err != nil {
		b.lastErr = err
		return StateExhaustedFallback
	}
	if b.next >= len(b.candidates) {
		return StateExhaustedFallback
	}
	b.endpoint = b.candidates[b.next]
	b.next++
	b.started = time.Now()
	b.tx = nil
	return StateConnecting
}

func (o *Orchestrator) connect(ctx context.Context, b *broadcast) State {
	transport := o.transport(b.endpoint.Kind)
	if transport == nil {
		return o.fail(b, newError(KindConfiguration, "connect", fmt.Errorf("no transport for %s", b.endpoint.Kind)))
	}
	session, err := transport.Open(ctx, b.endpoint)
	if err != nil {
		return o.fail(b, err)
	}
	b.session = session
	if err := session.Prepare(ctx); err != nil {
		return o.fail(b, err)
	}
	return StateBuilding
}

func (o *Orchestrator) build(ctx context.Context, b *broadcast) State {
	utxos, err := b.session.FetchUTXOs(ctx, b.source)
	if err != nil {
		return o.fail(b, err)
	}
	tx, err := o.builder.Build(ctx, b.intent, b.source, utxos)
	if err != nil {
		return o.fail(b, err)
	}
	b.tx = tx
	return StateSubmitting
}

func (o *Orchestrator) submit(ctx context.Context, b *broadcast) State {
	id, err := b.session.Submit(ctx, b.tx)
	if err != nil {
		return o.fail(b, err)
	}
	b.txID = id
	o.metrics.ObserveAttempt(b.endpoint.Kind, nil, b.started)
	return StateSucceeded
}

// retry records the failed attempt and releases its session.
func (o *Orchestrator) retry(_ context.Context, b *broadcast) State {
	o.metrics.ObserveAttempt(b.endpoint.Kind, b.lastErr, b.started)
	b.attempts = append(b.attempts, model.Attempt{Endpoint: b.endpoint, Error: b.lastErr.Error()})
	o.logger.Warn("endpoint failed, trying next candidate",
		zap.String("operation_id", b.id),
		zap.Stringer("endpoint", b.endpoint),
		zap.Int("remaining", len(b.candidates)-b.next),
		zap.Error(b.lastErr),
	)
	o.closeSession(b, o.logger)
	return StateSelectingEndpoint
}

// fail routes err to the retry path or aborts when err must not be retried.
func (o *Orchestrator) fail(b *broadcast, err error) State {
	if IsFatal(err) {
		o.metrics.ObserveAttempt(b.endpoint.Kind, err, b.started)
		b.fatal = err
		return StateAborted
	}
	b.lastErr = err
	return StateRetryingNextEndpoint
}

func (o *Orchestrator) transport(kind model.TransportKind) Transport {
	for _, t := range o.transports {
		if t.Kind() == kind {
			return t
		}
	}
	return nil
}

func (o *Orchestrator) closeSession(b *broadcast, logger *zap.Logger) {
	if b.session == nil {
		return
	}
	if err := b.session.Close(); err != nil {
		logger.Debug("close session", zap.Stringer("endpoint", b.endpoint), zap.Error(err))
	}
	b.session = nil
}

func (o *Orchestrator) exhausted(b *broadcast) *model.BroadcastResult {
	cause := b.lastErr
	if cause == nil {
		cause = ErrNoEndpoints
	}
	err := newError(KindExhaustion, "broadcast", fmt.Errorf("%w after %d attempts: %w", ErrExhausted, len(b.attempts), cause))

	failure := model.NewBroadcastFailure(
		fmt.Sprintf("all %d endpoints failed: %v", len(b.candidates), cause),
		err,
	)
	failure.TriedEndpoints = b.attempts
	failure.Alternatives = Alternatives(b.intent.Network)
	failure.Troubleshooting = Troubleshoot(cause)
	failure.SourceAddress = b.source

	failure.Unsent = b.intent.Unsent(b.source)
	failure.Unsent.Fee = o.builder.Fee(b.intent)

	return &model.BroadcastResult{
		OperationID: b.id,
		Outcome:     model.OutcomeFailure,
		Network:     b.intent.Network,
		Failure:     failure,
	}
}

type abortedBroadcast struct {
	result *model.BroadcastResult
	err    *AbortedError
}

// aborted keeps the trail of a broadcast stopped by a fatal error at
// b.endpoint, so it reaches both the caller and the journal.
func (o *Orchestrator) aborted(b *broadcast) abortedBroadcast {
	attempts := make([]model.Attempt, 0, len(b.attempts)+1)
	attempts = append(attempts, b.attempts...)
	attempts = append(attempts, model.Attempt{Endpoint: b.endpoint, Error: b.fatal.Error()})

	failure := model.NewBroadcastFailure(b.fatal.Error(), b.fatal)
	failure.TriedEndpoints = attempts
	failure.SourceAddress = b.source
	failure.Unsent = b.intent.Unsent(b.source)
	failure.Unsent.Fee = o.builder.Fee(b.intent)

	return abortedBroadcast{
		result: &model.BroadcastResult{
			OperationID: b.id,
			Outcome:     model.OutcomeFailure,
			Network:     b.intent.Network,
			Failure:     failure,
		},
		err: &AbortedError{OperationID: b.id, Attempts: attempts, Err: b.fatal},
	}
}

func (o *Orchestrator) record(ctx context.Context, result *model.BroadcastResult) {
	if o.journal == nil {
		return
	}
	o.journal.Record(context.WithoutCancel(ctx), result)
}

func sameAddress(a, b string) bool {
	da, errA := kaspa.DecodeAddress(a)
	db, errB := kaspa.DecodeAddress(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return da.String() == db.String()
}
