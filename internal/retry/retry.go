package retry

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/amishk599/prepkit/internal/model"
)

var _ model.KVStore = (*RetryStore)(nil)

// RetryStore is a decorator that retries transient storage failures with
// exponential backoff and jitter before delegating to the wrapped KVStore.
type RetryStore struct {
	inner      model.KVStore
	maxRetries int
	baseDelay  time.Duration
	retryable  func(error) bool
	logger     *slog.Logger
	sleep      func(time.Duration)
}

// NewRetryStore wraps a KVStore with retry logic.
// maxRetries is the number of additional attempts after the first failure.
// baseDelay is the delay before the first retry, doubled on each subsequent retry.
// retryable decides which errors are transient; nil retries nothing.
func NewRetryStore(inner model.KVStore, maxRetries int, baseDelay time.Duration, retryable func(error) bool, logger *slog.Logger) *RetryStore {
	if retryable == nil {
		retryable = func(error) bool { return false }
	}
	return &RetryStore{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		retryable:  retryable,
		logger:     logger,
		sleep:      time.Sleep,
	}
}

func (s *RetryStore) Get(key string) (string, bool, error) {
	var value string
	var ok bool
	err := s.do("get", key, func() error {
		var err error
		value, ok, err = s.inner.Get(key)
		return err
	})
	return value, ok, err
}

func (s *RetryStore) Set(key, value string) error {
	return s.do("set", key, func() error { return s.inner.Set(key, value) })
}

func (s *RetryStore) Delete(key string) error {
	return s.do("delete", key, func() error { return s.inner.Delete(key) })
}

// do runs op, retrying while it fails with a retryable error.
func (s *RetryStore) do(op, key string, fn func() error) error {
	err := fn()
	if err == nil || !s.retryable(err) {
		return err
	}

	lastErr := err
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		delay := s.backoffDelay(attempt)

		s.logger.Warn("retrying after transient storage error",
			"op", op,
			"key", key,
			"attempt", attempt,
			"max_retries", s.maxRetries,
			"delay", delay,
			"error", lastErr,
		)
		s.sleep(delay)

		err = fn()
		if err == nil {
			return nil
		}
		if !s.retryable(err) {
			return err
		}
		lastErr = err
	}

	return lastErr
}

// backoffDelay computes the delay for a given attempt with ±30% jitter.
func (s *RetryStore) backoffDelay(attempt int) time.Duration {
	// Exponential: baseDelay * 2^(attempt-1)
	delay := s.baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
	}

	jitter := float64(delay) * 0.3
	return time.Duration(float64(delay) + (rand.Float64()*2-1)*jitter)
}
