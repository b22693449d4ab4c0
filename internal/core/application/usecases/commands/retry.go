package commands

import (
	"context"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const storageRetryInterval = 100 * time.Millisecond

// isTransientStorageError reports whether an error is worth one more attempt:
// lock contention and serialization failures resolve themselves once the
// competing transaction finishes. Domain and validation errors never match.
func isTransientStorageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "could not serialize access")
}

// retryTransient runs op, re-driving it once after a short pause when it
// fails with a transient storage error. Every operation spans one transaction,
// so re-driving the whole op is safe. All other errors surface immediately.
func retryTransient(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(storageRetryInterval), 1), ctx)

	return backoff.Retry(func() error {
		err := op()
		if err == nil || isTransientStorageError(err) {
			return err
		}
		return backoff.Permanent(err)
	}, policy)
}

// retryTransientData is retryTransient for operations that produce a value.
func retryTransientData[T any](ctx context.Context, op func() (T, error)) (T, error) {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(storageRetryInterval), 1), ctx)

	return backoff.RetryWithData(func() (T, error) {
		v, err := op()
		if err == nil || isTransientStorageError(err) {
			return v, err
		}
		return v, backoff.Permanent(err)
	}, policy)
}
