package logger

import "context"

// Noop discards all log output.
type Noop struct{}

func (Noop) InfofCtx(ctx context.Context, template string, args ...any)  {}
func (Noop) ErrorfCtx(ctx context.Context, template string, args ...any) {}
