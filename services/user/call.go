package user

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// call runs fn after the simulated round trip, all under CallTimeout.
// A deadline or cancellation at any point surfaces as ErrCallTimeout.
func (s *DefaultUserService) call(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	if s.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.CallTimeout)
		defer cancel()
	}

	if s.Latency > 0 {
		timer := time.NewTimer(s.Latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return fmt.Errorf("%w: %s: %v", ErrCallTimeout, op, ctx.Err())
		}
	} else if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCallTimeout, op, err)
	}

	if err := fn(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Errorf("%w: %s: %v", ErrCallTimeout, op, err)
		}
		return err
	}
	return nil
}
