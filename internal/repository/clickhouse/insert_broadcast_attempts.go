package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
)

const insertBroadcastAttemptsQuery = `
INSERT INTO broadcast_attempts (
	operation_id,
	network,
	position,
	endpoint,
	transport,
	outcome,
	error,
	transaction_id,
	created_at
) VALUES`

// InsertBroadcastAttempts stores journal rows in ClickHouse.
func (r *Repository) InsertBroadcastAttempts(ctx context.Context, records []model.AttemptRecord) error {
	start := time.Now()
	var err error
	written := 0
	defer func() {
		r.metrics.Observe("insert_broadcast_attempts", written, err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBroadcastAttemptsQuery)
	if err != nil {
		return fmt.Errorf("prepare broadcast attempts batch: %w", err)
	}

	for _, rec := range records {
		if err = batch.Append(
			rec.OperationID,
			string(rec.Network),
			rec.Position,
			rec.Endpoint,
			string(rec.Transport),
			string(rec.Outcome),
			rec.Error,
			rec.TransactionID,
			rec.CreatedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append broadcast attempt: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert broadcast attempts: %w", err)
	}
	written = len(records)
	return nil
}
