// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import (
	"context"
	"log/slog"
	"time"
)

// RetryWithDelay retries an operation with a fixed delay between attempts.
// maxAttempts <= 0 means retry indefinitely until the operation succeeds or
// the context is canceled. The delay is constant; it does not escalate.
// Returns the error from the last attempt when a positive maxAttempts is
// exhausted, or ctx.Err() on cancellation.
func RetryWithDelay(ctx context.Context, operation func() error, maxAttempts int, delay time.Duration) error {
	var lastErr error
	for attempt := 1; ; attempt++ {
		// Check context before attempting
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				slog.Debug("operation succeeded after retry", "attempt", attempt)
			}
			return nil
		}

		// Don't sleep after the last attempt
		if maxAttempts > 0 && attempt == maxAttempts {
			return lastErr
		}

		slog.Warn("operation failed, will retry", "attempt", attempt, "delay", delay, "error", lastErr)

		// Sleep with context awareness
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			// Continue to next attempt
		}
	}
}
