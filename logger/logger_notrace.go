//go:build !debug_trace
// +build !debug_trace

// logger_notrace.go turns Tracef into a no-op unless the debug_trace build tag is set.

package logger

import (
	"context"
)

// Tracef is just a shorthand for Logf(ctx, logger.LevelTrace, ...)
func Tracef(ctx context.Context, format string, args ...any) {}
