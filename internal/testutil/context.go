package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds a test step when the caller passes no timeout.
const DefaultTimeout = 5 * time.Second

// deadlineSlack is left before the test binary deadline so cleanup can run.
const deadlineSlack = time.Second

// Context returns a context that expires after timeout or shortly before the
// test deadline, whichever comes first. Cancellation is tied to test cleanup.
// Benchmarks carry no deadline, so the clamp only applies to tests.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if holder, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := holder.Deadline(); ok {
			if remaining := time.Until(deadline) - deadlineSlack; remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
