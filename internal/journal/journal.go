// Package journal keeps a diagnostic trail of broadcasts. Rows are written
// asynchronously so a slow store never delays a broadcast.
package journal

import (
	"context"
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/goodnatureofminers/utxo-broadcaster/pkg/batcher"
	"github.com/goodnatureofminers/utxo-broadcaster/pkg/safe"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// enqueueWait bounds how long Record waits for room in a full queue.
const enqueueWait = 50 * time.Millisecond

// Journal converts broadcast results to attempt rows and batches them into
// the repository.
type Journal struct {
	batcher *batcher.Batcher[model.AttemptRecord]
	logger  *zap.Logger
	now     func() time.Time
	wait    time.Duration
}

// New builds a journal writing to repo.
func New(repo Repository, cfg batcher.Config, logger *zap.Logger) *Journal {
	logger = logger.Named("journal")
	return &Journal{
		batcher: batcher.New(logger, repo.InsertBroadcastAttempts, cfg),
		logger:  logger,
		now:     time.Now,
		wait:    enqueueWait,
	}
}

// Start runs the background writer until ctx ends or Stop is called.
func (j *Journal) Start(ctx context.Context) {
	j.batcher.Start(ctx)
}

// Stop flushes pending rows.
func (j *Journal) Stop() {
	j.batcher.Stop()
}

// Record queues the rows of result. Rows that find no room within a short
// wait are dropped and logged.
func (j *Journal) Record(ctx context.Context, result *model.BroadcastResult) {
	if result == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, j.wait)
	defer cancel()
	for _, rec := range j.records(result) {
		if err := j.batcher.Add(ctx, rec); err != nil {
			j.logger.Warn("journal row dropped",
				zap.String("operation_id", result.OperationID),
				zap.Uint16("position", rec.Position),
				zap.Error(err),
			)
		}
	}
}

func (j *Journal) records(result *model.BroadcastResult) []model.AttemptRecord {
	id, err := uuid.Parse(result.OperationID)
	if err != nil {
		id = uuid.New()
		j.logger.Debug("operation id replaced", zap.String("operation_id", result.OperationID), zap.Error(err))
	}
	return Records(id, result, j.now().UTC())
}

// Records flattens result into one row per endpoint attempt.
func Records(id uuid.UUID, result *model.BroadcastResult, now time.Time) []model.AttemptRecord {
	var (
		failed []model.Attempt
		out    []model.AttemptRecord
	)
	switch {
	case result.Success != nil:
		failed = result.Success.TriedEndpoints
	case result.Failure != nil:
		failed = result.Failure.TriedEndpoints
	}

	add := func(rec model.AttemptRecord) bool {
		pos, err := safe.Uint16(len(out))
		if err != nil {
			return false
		}
		rec.OperationID = id
		rec.Network = result.Network
		rec.Position = pos
		rec.CreatedAt = now
		out = append(out, rec)
		return true
	}

	for _, a := range failed {
		if !add(model.AttemptRecord{
			Endpoint:  a.Endpoint.String(),
			Transport: a.Endpoint.Kind,
			Outcome:   model.OutcomeFailure,
			Error:     a.Error,
		}) {
			return out
		}
	}

	switch {
	case result.Success != nil:
		add(model.AttemptRecord{
			Endpoint:      result.Success.Endpoint.String(),
			Transport:     result.Success.Transport,
			Outcome:       model.OutcomeSuccess,
			TransactionID: result.Success.TransactionID,
		})
	case result.Failure != nil && len(failed) == 0:
		add(model.AttemptRecord{
			Outcome: model.OutcomeFailure,
			Error:   result.Failure.Reason,
		})
	}
	return out
}
