// Package directory provides the upstream doctor directory source. The real
// deployment would call a remote API; this source resolves a compiled-in
// dataset after a fixed delay so the rest of the system exercises the same
// asynchronous load path.
package directory

import (
	"context"
	"time"

	"docconnect/internal/domain/entity"
)

type Source struct {
	delay time.Duration
}

func NewSource(delay time.Duration) *Source {
	return &Source{delay: delay}
}

// Fetch resolves the full directory after the configured delay. There is no
// pagination and no filtering; the only failure mode is a cancelled context.
func (s *Source) Fetch(ctx context.Context) ([]entity.Doctor, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return Seed(), nil
}
