package spy

import (
	"context"

	"github.com/kbukum/spykit/logger"
)

// Interaction log entries recorded by the scoping protocol.
const (
	MethodEnter = "Enter"
	MethodExit  = "Exit"
)

// AsyncScoped is a recording proxy that additionally implements the
// Enter/Exit resource-scoping protocol. The intended call order is
// Enter, the scoped work, Exit - but nothing enforces it: out-of-order
// or repeated calls are simply recorded, deliberately.
type AsyncScoped struct {
	*Proxy
}

// newAsyncScoped is the Kind constructor for AsyncScopedKind.
func newAsyncScoped(cfg Config) Recorder {
	return &AsyncScoped{Proxy: newProxy(cfg)}
}

// Enter acquires the scope: it records the call and resolves to the
// proxy itself so the surrounding scope can bind it as its resource
// handle. The context check is the operation's single suspension point.
func (s *AsyncScoped) Enter(ctx context.Context) (*AsyncScoped, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.record(MethodEnter, nil)
	if s.cfg.LogCalls {
		s.log().Debug("scope entered", logger.Fields(logger.FieldProxy, s.cfg.Name))
	}
	return s, nil
}

// Exit releases the scope: it records the call together with whatever
// error is propagating out of the scope, discards that error, and
// returns nil - an in-flight error is never suppressed.
func (s *AsyncScoped) Exit(ctx context.Context, cause error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.record(MethodExit, []any{cause})
	if s.cfg.LogCalls {
		s.log().Debug("scope exited", logger.Fields(logger.FieldProxy, s.cfg.Name))
	}
	return nil
}

// Scope runs fn between Enter and a guaranteed Exit. The error returned
// by fn is passed to Exit, which records and discards it; Scope returns
// fn's error untouched.
func Scope(ctx context.Context, s *AsyncScoped, fn func(context.Context, *AsyncScoped) error) error {
	handle, err := s.Enter(ctx)
	if err != nil {
		return err
	}
	fnErr := fn(ctx, handle)
	_ = handle.Exit(ctx, fnErr)
	return fnErr
}
