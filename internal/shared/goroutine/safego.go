// Package goroutine runs fire-and-forget work, such as request notifications,
// detached from the HTTP request that triggered it.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

// DefaultTimeout bounds a detached task when the caller passes zero.
const DefaultTimeout = 30 * time.Second

// Detach runs fn in a new goroutine. The context keeps the values of parent
// but not its cancellation, and expires after timeout. A returned error is
// logged at error level together with fields; a panic is logged with the
// stack and swallowed.
func Detach(parent context.Context, log logger.Interface, task string, timeout time.Duration, fn func(ctx context.Context) error, fields ...any) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), timeout)

	go func() {
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("background task panicked",
					append([]any{"task", task, "panic", fmt.Sprint(r), "stack", string(debug.Stack())}, fields...)...)
			}
		}()

		if err := fn(ctx); err != nil {
			log.Errorw("background task failed",
				append([]any{"task", task, "error", err}, fields...)...)
		}
	}()
}
