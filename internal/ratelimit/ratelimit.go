// Package ratelimit paces outbound Google API calls and retries quota errors.
package ratelimit

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Limiter struct {
	limiter *rate.Limiter
	cfg     Config

	mu                sync.Mutex
	consecutiveErrors int
}

type Config struct {
	// Delay is the minimum spacing between calls.
	Delay             time.Duration
	BackoffMultiplier float64
	MaxDelay          time.Duration
	MaxAttempts       int
}

func DefaultConfig() Config {
	return Config{
		Delay:             200 * time.Millisecond,
		BackoffMultiplier: 2.0,
		MaxDelay:          30 * time.Second,
		MaxAttempts:       5,
	}
}

func New(cfg Config) *Limiter {
	if cfg.Delay <= 0 {
		cfg = DefaultConfig()
	}
	rps := float64(time.Second) / float64(cfg.Delay)
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		cfg:     cfg,
	}
}

// Do runs fn under the rate limit, retrying with exponential backoff when the
// error looks like a quota rejection. Any other error returns immediately.
func (l *Limiter) Do(ctx context.Context, fn func() error) error {
	for attempt := 0; attempt < l.cfg.MaxAttempts; attempt++ {
		if err := l.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait: %w", err)
		}

		err := fn()
		if err == nil {
			l.reset()
			return nil
		}

		if !isQuotaError(err) {
			return err
		}

		wait := l.backoff()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return fmt.Errorf("max retry attempts (%d) exceeded", l.cfg.MaxAttempts)
}

func (l *Limiter) backoff() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.consecutiveErrors++
	wait := time.Duration(math.Min(
		float64(l.cfg.Delay)*math.Pow(l.cfg.BackoffMultiplier, float64(l.consecutiveErrors-1)),
		float64(l.cfg.MaxDelay),
	))
	return wait
}

func (l *Limiter) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.consecutiveErrors = 0
}

func isQuotaError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "quota")
}
