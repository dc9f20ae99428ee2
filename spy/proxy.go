package spy

import (
	"context"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/spykit/errors"
	"github.com/kbukum/spykit/logger"
	"github.com/kbukum/spykit/observability"
)

// Recorder is the surface every proxy kind implements.
type Recorder interface {
	// Name returns the proxy's display name.
	Name() string
	// ID returns the proxy's identifier.
	ID() uuid.UUID
	// Doc returns the documentation copied from the wrapped instance.
	Doc() string
	// Target returns the spied type.
	Target() reflect.Type
	// Contract returns the effective member contract.
	Contract() *Contract
	// Instance returns the shared instance calls forward to.
	Instance() any
	// Interactions returns the proxy's interaction log for assertions
	// and for configuring expectations.
	Interactions() *mock.Mock
	// Call invokes a member of the contract by name.
	Call(method string, args ...any) (mock.Arguments, error)
	// CallContext is Call with a context for tracing and cancellation.
	CallContext(ctx context.Context, method string, args ...any) (mock.Arguments, error)
}

// Proxy forwards permitted calls to the factory's shared instance and
// records every interaction in its embedded mock. The mock's full query
// surface applies: AssertCalled, AssertNumberOfCalls, On, Calls.
type Proxy struct {
	mock.Mock
	cfg Config
}

func newProxy(cfg Config) *Proxy {
	return &Proxy{cfg: cfg}
}

// Name returns the proxy's display name.
func (p *Proxy) Name() string { return p.cfg.Name }

// ID returns the proxy's identifier.
func (p *Proxy) ID() uuid.UUID { return p.cfg.ID }

// Doc returns the documentation copied from the wrapped instance.
func (p *Proxy) Doc() string { return p.cfg.Doc }

// Target returns the spied type.
func (p *Proxy) Target() reflect.Type { return p.cfg.contract.Target() }

// Contract returns the effective member contract.
func (p *Proxy) Contract() *Contract { return p.cfg.contract }

// Instance returns the shared instance calls forward to. Proxies never
// copy the instance: side effects through one proxy are visible through
// every proxy of the same factory.
func (p *Proxy) Instance() any { return p.cfg.ForwardTarget() }

// Interactions returns the proxy's interaction log.
func (p *Proxy) Interactions() *mock.Mock { return &p.Mock }

// Call invokes a member of the contract by name. The call is recorded;
// unless this proxy was configured with different behavior for the
// member (WithReturn or an expectation installed via Interactions), it
// is forwarded to the identically named method of the shared instance
// and the real results are returned.
//
// A member outside the contract fails with a CONTRACT_VIOLATION error.
func (p *Proxy) Call(method string, args ...any) (mock.Arguments, error) {
	return p.CallContext(context.Background(), method, args...)
}

// CallContext is Call with a context: when the proxy has a tracer, the
// recorded call becomes a span in that context.
func (p *Proxy) CallContext(ctx context.Context, method string, args ...any) (mock.Arguments, error) {
	if !p.cfg.contract.Allows(method) {
		err := errors.ContractViolation(method, p.Target().Name()).WithDetail("proxy", p.cfg.Name)
		p.log().Warn("contract violation", logger.ErrorFields("call", err))
		return nil, err
	}

	if p.cfg.Tracer != nil {
		var span trace.Span
		ctx, span = p.cfg.Tracer.Start(ctx, "spy.call")
		observability.SetSpanAttribute(ctx, logger.FieldTarget, p.Target().Name())
		observability.SetSpanAttribute(ctx, logger.FieldMethod, method)
		observability.SetSpanAttribute(ctx, logger.FieldProxy, p.cfg.Name)
		observability.SetSpanAttribute(ctx, logger.FieldProxyID, p.cfg.ID.String())
		defer span.End()
	}
	if p.cfg.LogCalls {
		p.log().Debug("recording call", logger.Fields(
			logger.FieldProxy, p.cfg.Name,
			logger.FieldMethod, method,
			logger.FieldArgs, len(args),
		))
	}

	// Configured behavior wins over forwarding.
	if rets, ok := p.cfg.returns[method]; ok {
		p.record(method, args)
		return rets, nil
	}
	if p.hasExpectation(method) {
		// Expectations installed through the interaction log follow the
		// mock's own matching and return semantics.
		return p.MethodCalled(method, args...), nil
	}

	rets, err := p.forwardCall(method, args)
	if err != nil {
		return nil, err
	}
	p.record(method, args)
	return rets, nil
}

// hasExpectation reports whether the caller configured the member
// through the interaction log.
func (p *Proxy) hasExpectation(method string) bool {
	for _, c := range p.ExpectedCalls {
		if c.Method == method {
			return true
		}
	}
	return false
}

// record appends the call to the interaction log.
func (p *Proxy) record(method string, args []any) {
	if args == nil {
		args = []any{}
	}
	p.Calls = append(p.Calls, mock.Call{
		Parent:    &p.Mock,
		Method:    method,
		Arguments: mock.Arguments(args),
	})
}

// forwardCall invokes the real method on the shared instance.
func (p *Proxy) forwardCall(method string, args []any) (mock.Arguments, error) {
	m := p.cfg.forward.MethodByName(method)
	mt := m.Type()
	numIn := mt.NumIn()

	if mt.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, errors.InvalidArgument(method, fmt.Sprintf("needs at least %d arguments, got %d", numIn-1, len(args)))
		}
	} else if len(args) != numIn {
		return nil, errors.InvalidArgument(method, fmt.Sprintf("needs %d arguments, got %d", numIn, len(args)))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if mt.IsVariadic() && i >= numIn-1 {
			pt = mt.In(numIn - 1).Elem()
		} else {
			pt = mt.In(i)
		}
		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(pt) {
			return nil, errors.InvalidArgument(method, fmt.Sprintf("cannot use %T as %s for argument %d", arg, pt, i))
		}
		in[i] = av
	}

	out := m.Call(in)
	rets := make(mock.Arguments, len(out))
	for i, o := range out {
		rets[i] = o.Interface()
	}
	return rets, nil
}

func (p *Proxy) log() *logger.Logger {
	if p.cfg.Logger != nil {
		return p.cfg.Logger
	}
	return logger.WithComponent("spy")
}
