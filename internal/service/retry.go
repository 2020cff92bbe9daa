package service

import (
	"context"
	"time"
)

// retryPolicy retries a single unit of work with doubling backoff. Retries
// happen at subscription/order granularity so a transient failure on one unit
// never forces the rest of the batch to be reprocessed.
type retryPolicy struct {
	attempts int
	backoff  time.Duration
}

func (p retryPolicy) do(ctx context.Context, op func() error) error {
	attempts := p.attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	delay := p.backoff
	for i := 0; i < attempts; i++ {
		if err = op(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
