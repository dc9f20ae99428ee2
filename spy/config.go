package spy

import (
	"reflect"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/spykit/logger"
)

// Config is the effective configuration of a single proxy. The exported
// fields are caller-adjustable through ProxyOptions; the contract, strict
// contract, and forward target are reserved and always come from the
// factory, whatever a caller passed for them.
type Config struct {
	// Name is the proxy's display name, "<TargetName>()" by default.
	Name string `json:"name" validate:"required"`
	// Doc is the proxy's documentation text, copied from the instance.
	Doc string `json:"-" validate:"-"`
	// ID identifies the proxy in logs and traces.
	ID uuid.UUID `json:"id" validate:"-"`
	// Logger receives the proxy's structured log events.
	Logger *logger.Logger `json:"-" validate:"-"`
	// Tracer, when set, emits one span per recorded call.
	Tracer trace.Tracer `json:"-" validate:"-"`
	// LogCalls emits a debug log line per recorded call.
	LogCalls bool `json:"log_calls"`

	// Per-proxy configured behavior: method name to canned results.
	returns map[string]mock.Arguments

	// Reserved fields, forced by the factory after the merge.
	contract *Contract
	strict   *Contract
	forward  reflect.Value
}

// Contract returns the effective member contract.
func (c *Config) Contract() *Contract { return c.contract }

// StrictContract returns the strict member contract. It always equals
// the effective contract; both are the target's own member set.
func (c *Config) StrictContract() *Contract { return c.strict }

// ForwardTarget returns the instance calls are forwarded to.
func (c *Config) ForwardTarget() any {
	if !c.forward.IsValid() {
		return nil
	}
	return c.forward.Interface()
}

// ProxyOption configures a single proxy produced by a factory call.
type ProxyOption func(*Config)

// WithName sets the proxy's display name.
func WithName(name string) ProxyOption {
	return func(c *Config) { c.Name = name }
}

// WithID sets the proxy's identifier.
func WithID(id uuid.UUID) ProxyOption {
	return func(c *Config) { c.ID = id }
}

// WithProxyLogger sets the logger the proxy emits events through.
func WithProxyLogger(l *logger.Logger) ProxyOption {
	return func(c *Config) { c.Logger = l }
}

// WithTracer makes the proxy emit one span per recorded call.
func WithTracer(t trace.Tracer) ProxyOption {
	return func(c *Config) { c.Tracer = t }
}

// WithLogCalls toggles a debug log line per recorded call.
func WithLogCalls(enabled bool) ProxyOption {
	return func(c *Config) { c.LogCalls = enabled }
}

// WithReturn configures canned results for a method on this proxy.
// Calls to the method are recorded but not forwarded; the given values
// are returned instead.
func WithReturn(method string, values ...any) ProxyOption {
	return func(c *Config) {
		if c.returns == nil {
			c.returns = make(map[string]mock.Arguments)
		}
		c.returns[method] = mock.Arguments(values)
	}
}

// WithContract sets the member contract. Accepted for interface
// symmetry, but the factory always overrides it with the target's own
// contract.
func WithContract(contract *Contract) ProxyOption {
	return func(c *Config) { c.contract = contract }
}

// WithStrictContract sets the strict member contract. The factory
// always overrides it with the target's own contract.
func WithStrictContract(contract *Contract) ProxyOption {
	return func(c *Config) { c.strict = contract }
}

// WithForwardTarget sets the instance calls forward to. The factory
// always overrides it with its own singleton instance.
func WithForwardTarget(instance any) ProxyOption {
	return func(c *Config) { c.forward = reflect.ValueOf(instance) }
}

// reserved carries the three factory-owned configuration fields.
type reserved struct {
	contract *Contract
	strict   *Contract
	forward  reflect.Value
}

// mergeConfig assembles a proxy configuration with the documented
// precedence, lowest to highest: defaults, caller options, reserved
// fields. The reserved fields win unconditionally; caller-supplied
// values for them are discarded, not merged.
func mergeConfig(defaults Config, opts []ProxyOption, res reserved) Config {
	cfg := defaults
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg.contract = res.contract
	cfg.strict = res.strict
	cfg.forward = res.forward
	return cfg
}
