package spytest

import (
	"context"
	"testing"

	"github.com/kbukum/spykit/spy"
)

// THelper provides testing.T integration for spy construction.
type THelper struct {
	t   *testing.T
	ctx context.Context
}

// T wraps a testing.T to provide helper methods. Construction failures
// fail the test; expectations installed on helper-built proxies are
// verified automatically when the test ends.
func T(t *testing.T) *THelper {
	return &THelper{
		t:   t,
		ctx: context.Background(),
	}
}

// WithContext sets a custom context for the helper.
func (h *THelper) WithContext(ctx context.Context) *THelper {
	h.ctx = ctx
	return h
}

// Factory builds a spy factory for the target, failing the test on a
// construction error.
func (h *THelper) Factory(target any, opts ...spy.FactoryOption) *spy.Factory {
	h.t.Helper()
	f, err := spy.NewFactory(target, opts...)
	if err != nil {
		h.t.Fatalf("failed to build spy factory: %v", err)
	}
	return f
}

// New calls the factory for a proxy, failing the test on error and
// registering an AssertExpectations check for when the test ends.
func (h *THelper) New(f *spy.Factory, opts ...spy.ProxyOption) spy.Recorder {
	h.t.Helper()
	p, err := f.New(opts...)
	if err != nil {
		h.t.Fatalf("failed to build %s proxy: %v", f.Name(), err)
	}
	h.t.Cleanup(func() {
		p.Interactions().AssertExpectations(h.t)
	})
	return p
}

// Proxy builds a factory for the target and calls it once, combining
// Factory and New for the common single-proxy case.
func (h *THelper) Proxy(target any, opts ...spy.FactoryOption) spy.Recorder {
	h.t.Helper()
	return h.New(h.Factory(target, opts...))
}

// Scoped builds an async scoped proxy around the target and registers
// an Exit call for when the test ends, so the scope is always released.
func (h *THelper) Scoped(target any, opts ...spy.FactoryOption) *spy.AsyncScoped {
	h.t.Helper()
	f := h.Factory(target, append(opts, spy.WithKind(spy.AsyncScopedKind))...)
	p := h.New(f)
	s, ok := p.(*spy.AsyncScoped)
	if !ok {
		h.t.Fatalf("expected an async scoped proxy from %s, got %T", f.Name(), p)
	}
	return s
}

// Enter acquires the scope and registers a matching Exit with
// testing.T, so the scope is released however the test ends.
func (h *THelper) Enter(s *spy.AsyncScoped) *spy.AsyncScoped {
	h.t.Helper()
	handle, err := s.Enter(h.ctx)
	if err != nil {
		h.t.Fatalf("failed to enter scope: %v", err)
	}
	h.t.Cleanup(func() {
		if err := handle.Exit(h.ctx, nil); err != nil {
			h.t.Errorf("failed to exit scope: %v", err)
		}
	})
	return handle
}
