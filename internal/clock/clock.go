// Package clock holds the time budgeting helpers shared by the transports
// and the broadcast orchestrator.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d or returns the context error once ctx ends.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Budget accumulates the per call limits of a multi step operation.
type Budget struct {
	total time.Duration
}

// Add extends the budget by d. Non-positive values are ignored.
func (b *Budget) Add(d time.Duration) {
	if d > 0 {
		b.total += d
	}
}

// Total returns the accumulated budget.
func (b *Budget) Total() time.Duration {
	return b.total
}

// WithBudget derives a context that ends after the accumulated budget. An
// empty budget only adds cancellation.
func WithBudget(ctx context.Context, b Budget) (context.Context, context.CancelFunc) {
	if b.total <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, b.total)
}
