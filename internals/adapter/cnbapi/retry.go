package cnbapi

import (
	"fmt"
	"log"
)

// DefaultMaxAttempts bounds how often a single date's fetch is retried.
const DefaultMaxAttempts = 10

// RetryPolicy retries an operation immediately up to MaxAttempts times.
// The feed endpoint fails transiently rather than rate-limiting, so no
// delay is inserted between attempts.
type RetryPolicy struct {
	MaxAttempts int
}

func (p RetryPolicy) Do(op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		log.Printf("Attempt %d/%d failed: %v", attempt, attempts, err)
	}

	return fmt.Errorf("giving up after %d attempts: %w", attempts, err)
}
