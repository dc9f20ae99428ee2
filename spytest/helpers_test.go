package spytest_test

import (
	"testing"

	"github.com/kbukum/spykit/spy"
	"github.com/kbukum/spykit/spytest"
)

type greeter struct {
	Prefix string
}

func (g *greeter) Greet(name string) string { return g.Prefix + name }

func TestProxy_BuildsWorkingSpy(t *testing.T) {
	proxy := spytest.T(t).Proxy(spy.TargetOf[greeter](), spy.WithArgs("hello "))

	rets, err := proxy.Call("Greet", "world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rets.String(0); got != "hello world" {
		t.Errorf("expected 'hello world', got %q", got)
	}
	proxy.Interactions().AssertCalled(t, "Greet", "world")
}

func TestFactoryAndNew_ShareOneInstance(t *testing.T) {
	h := spytest.T(t)
	factory := h.Factory(spy.TargetOf[greeter](), spy.WithArgs("hi "))

	first := h.New(factory)
	second := h.New(factory)

	if first.Instance() != second.Instance() {
		t.Error("expected both proxies to share the factory instance")
	}
	if _, err := first.Call("Greet", "there"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second.Interactions().AssertNotCalled(t, "Greet")
}

func TestScoped_RecordsProtocol(t *testing.T) {
	h := spytest.T(t)
	scoped := h.Scoped(spy.TargetOf[greeter]())

	handle := h.Enter(scoped)
	if handle != scoped {
		t.Error("expected Enter to resolve to the proxy itself")
	}
	scoped.Interactions().AssertCalled(t, spy.MethodEnter)
}
