// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/MKhiriev/pwdmngr/internal/logger"
)

const (
	retryInitialInterval = 100 * time.Millisecond
	retryMaxInterval     = 2 * time.Second
	retryMultiplier      = 2.0
)

// withRetry runs op until it succeeds, fails with an error the dialect
// classifies as [NonRetryable], ctx is done, or db.maxRetries retries have
// been spent. The last error of op is returned unchanged.
func (db *DB) withRetry(ctx context.Context, funcName string, op func() error) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = retryInitialInterval
	exp.MaxInterval = retryMaxInterval
	exp.Multiplier = retryMultiplier
	exp.Reset()

	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(max(db.maxRetries, 0))), ctx)

	f := func() error {
		err := op()
		if err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) == NonRetryable {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, d time.Duration) {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", funcName).
			Dur("retry_in", d).
			Msg("transient database error")
	}

	return backoff.RetryNotify(f, policy, notify)
}
