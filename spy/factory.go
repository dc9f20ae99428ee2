package spy

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"github.com/kbukum/spykit/errors"
	"github.com/kbukum/spykit/logger"
	"github.com/kbukum/spykit/util"
	"github.com/kbukum/spykit/validation"
)

// Kind is a proxy implementation installable on a factory. Recording is
// the default; AsyncScopedKind adds the Enter/Exit scoping protocol.
type Kind struct {
	// Name identifies the kind in factory usage text and logs.
	Name string
	// New constructs a proxy of this kind from a merged configuration.
	New func(cfg Config) Recorder
}

// Recording is the default proxy kind: forward, record, enforce contract.
var Recording = Kind{
	Name: "RecordingProxy",
	New:  func(cfg Config) Recorder { return newProxy(cfg) },
}

// AsyncScopedKind produces proxies that additionally implement the
// Enter/Exit resource-scoping protocol.
var AsyncScopedKind = Kind{
	Name: "AsyncScopedRecordingProxy",
	New:  newAsyncScoped,
}

// TargetOf returns the target type descriptor for T, the usual way to
// name a spy target:
//
//	factory, err := spy.NewFactory(spy.TargetOf[Calculator]())
func TargetOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Initializer lets a target run constructor logic after its fields are
// filled. An Init error from factory construction propagates to the
// NewFactory caller unmodified.
type Initializer interface {
	Init() error
}

// Documented is implemented by targets that carry their own usage text;
// proxies copy it as their documentation.
type Documented interface {
	Doc() string
}

// factoryOptions collects NewFactory configuration.
type factoryOptions struct {
	kind   *Kind
	args   []any
	fields map[string]any
	log    *logger.Logger
}

// FactoryOption configures a spy factory.
type FactoryOption func(*factoryOptions)

// WithKind installs a proxy kind on the factory. The default is the
// package default kind (Recording unless Configure changed it).
func WithKind(kind Kind) FactoryOption {
	return func(o *factoryOptions) { o.kind = &kind }
}

// WithArgs supplies positional constructor arguments: they fill the
// target's exported fields in declaration order.
func WithArgs(args ...any) FactoryOption {
	return func(o *factoryOptions) { o.args = args }
}

// WithFieldValues supplies named constructor arguments by field name.
func WithFieldValues(fields map[string]any) FactoryOption {
	return func(o *factoryOptions) { o.fields = fields }
}

// WithFactoryLogger sets the logger the factory and its proxies use.
func WithFactoryLogger(l *logger.Logger) FactoryOption {
	return func(o *factoryOptions) { o.log = l }
}

// Factory owns exactly one instance of its target and manufactures
// recording proxies around it. The instance is created once, at factory
// construction, and never replaced.
type Factory struct {
	target   reflect.Type
	contract *Contract
	instance reflect.Value
	kind     Kind
	id       uuid.UUID
	log      *logger.Logger
}

// NewFactory validates the target, constructs its singleton instance,
// and returns a factory that produces recording proxies around it.
//
// The target must be a struct type descriptor (see TargetOf). A function
// target and an already-constructed instance both fail with an
// INVALID_TARGET error. Errors raised while constructing the instance
// propagate to the caller unmodified.
func NewFactory(target any, opts ...FactoryOption) (*Factory, error) {
	t, err := resolveTarget(target)
	if err != nil {
		return nil, err
	}

	var o factoryOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.kind == nil {
		kind := defaultKind()
		o.kind = &kind
	}
	if o.log == nil {
		o.log = logger.WithComponent("spy")
	}

	instance, err := construct(t, o.args, o.fields)
	if err != nil {
		// Construction failures are the target's own errors; surface
		// them verbatim.
		return nil, err
	}

	f := &Factory{
		target:   t,
		contract: newContract(t),
		instance: instance,
		kind:     *o.kind,
		id:       uuid.New(),
		log:      o.log,
	}
	f.log.Debug("spy factory constructed", logger.Fields(
		logger.FieldFactory, f.Name(),
		logger.FieldTarget, t.Name(),
		logger.FieldKind, f.kind.Name,
	))
	return f, nil
}

// resolveTarget checks that target is a spyable type descriptor.
func resolveTarget(target any) (reflect.Type, error) {
	if target == nil {
		return nil, errors.InvalidTarget("received nil")
	}

	if t, ok := target.(reflect.Type); ok {
		switch t.Kind() {
		case reflect.Struct:
			return t, nil
		case reflect.Func:
			return nil, errors.FunctionTarget()
		default:
			return nil, errors.InvalidTarget(fmt.Sprintf("received a %s type, not a struct type", t.Kind()))
		}
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() == reflect.Func {
		return nil, errors.FunctionTarget()
	}

	// Anything else is an already-constructed instance.
	t := rv.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	return nil, errors.InstanceTarget(name)
}

// construct builds the singleton instance: a fresh value of the target
// type with positional args filling exported fields in declaration
// order and named args filling fields by name, then the target's Init
// hook if it has one.
func construct(target reflect.Type, args []any, fields map[string]any) (reflect.Value, error) {
	pv := reflect.New(target)
	sv := pv.Elem()

	var exported []reflect.StructField
	for i := 0; i < target.NumField(); i++ {
		f := target.Field(i)
		if f.PkgPath == "" {
			exported = append(exported, f)
		}
	}

	if len(args) > len(exported) {
		return reflect.Value{}, fmt.Errorf("%s takes at most %d constructor arguments, got %d", target.Name(), len(exported), len(args))
	}
	for i, arg := range args {
		if err := setField(sv, exported[i], arg); err != nil {
			return reflect.Value{}, err
		}
	}

	for _, name := range util.SortedKeys(fields) {
		f, ok := target.FieldByName(name)
		if !ok || f.PkgPath != "" {
			return reflect.Value{}, fmt.Errorf("%s has no constructor field %q", target.Name(), name)
		}
		if err := setField(sv, f, fields[name]); err != nil {
			return reflect.Value{}, err
		}
	}

	if init, ok := pv.Interface().(Initializer); ok {
		if err := init.Init(); err != nil {
			return reflect.Value{}, err
		}
	}
	return pv, nil
}

func setField(sv reflect.Value, f reflect.StructField, arg any) error {
	fv := sv.FieldByIndex(f.Index)
	if arg == nil {
		fv.Set(reflect.Zero(f.Type))
		return nil
	}
	av := reflect.ValueOf(arg)
	if !av.Type().AssignableTo(f.Type) {
		return fmt.Errorf("cannot use %T as %s for field %s of %s", arg, f.Type, f.Name, sv.Type().Name())
	}
	fv.Set(av)
	return nil
}

// Instance returns the singleton instance this factory owns. Every
// proxy from this factory forwards to this same value.
func (f *Factory) Instance() any { return f.instance.Interface() }

// Target returns the target type this factory spies on.
func (f *Factory) Target() reflect.Type { return f.target }

// Contract returns the target's member contract.
func (f *Factory) Contract() *Contract { return f.contract }

// Kind returns the proxy kind this factory produces.
func (f *Factory) Kind() Kind { return f.kind }

// ID returns the factory's identifier.
func (f *Factory) ID() uuid.UUID { return f.id }

// Name returns the factory's derived name, "<TargetName>SpyFactory".
func (f *Factory) Name() string { return f.target.Name() + "SpyFactory" }

const usageTemplate = `%[1]s wraps the instance of %[2]s with a proxy that records interactions.

The wrapped instance that was created along with this factory is used in every call to the factory. The factory can be called repeatedly to create differently configured proxies, but the instance will always be the same; it is accessible through the factory's Instance accessor.

Options passed to a factory call configure the %[3]s proxy as it is constructed, with the exception of the contract, strict-contract, and forward-target options, which are always overridden by the factory.`

// Usage returns the factory's synthesized usage documentation. The text
// is generated deterministically from the target and kind names.
func (f *Factory) Usage() string {
	return fmt.Sprintf(usageTemplate, f.Name(), f.target.Name(), f.kind.Name)
}

// New is the factory's call operator: it manufactures a new proxy of
// the factory's kind around the shared instance. Each proxy carries an
// independent interaction log.
func (f *Factory) New(opts ...ProxyOption) (Recorder, error) {
	defaults := Config{
		Name:     f.target.Name() + "()",
		ID:       uuid.New(),
		Logger:   f.log,
		LogCalls: settings().logCalls,
	}
	if settings().traceCalls {
		defaults.Tracer = defaultTracer()
	}

	cfg := mergeConfig(defaults, opts, reserved{
		contract: f.contract,
		strict:   f.contract,
		forward:  f.instance,
	})
	cfg.Doc = docFor(f.instance.Interface(), f.target.Name())

	if err := validation.Validate(&cfg); err != nil {
		return nil, err
	}

	proxy := f.kind.New(cfg)
	f.log.Debug("proxy created", logger.Fields(
		logger.FieldProxy, cfg.Name,
		logger.FieldProxyID, cfg.ID.String(),
		logger.FieldKind, f.kind.Name,
	))
	return proxy, nil
}

// docFor copies the instance's documentation onto the proxy, falling
// back to a synthesized line when the instance has none.
func docFor(instance any, targetName string) string {
	if d, ok := instance.(Documented); ok {
		return d.Doc()
	}
	return fmt.Sprintf("Records interactions with a real %s instance.", targetName)
}
