package spy

import (
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/spykit/errors"
)

func TestMergeConfig_OptionsOverrideDefaults(t *testing.T) {
	defaults := Config{Name: "calculator()", LogCalls: false}
	id := uuid.New()

	cfg := mergeConfig(defaults, []ProxyOption{
		WithName("renamed"),
		WithID(id),
		WithLogCalls(true),
	}, reserved{})

	if cfg.Name != "renamed" {
		t.Errorf("expected option name to win, got %q", cfg.Name)
	}
	if cfg.ID != id {
		t.Errorf("expected option id to win, got %s", cfg.ID)
	}
	if !cfg.LogCalls {
		t.Error("expected LogCalls option to win")
	}
}

func TestMergeConfig_LastOptionWins(t *testing.T) {
	cfg := mergeConfig(Config{}, []ProxyOption{
		WithName("first"),
		WithName("second"),
	}, reserved{})
	if cfg.Name != "second" {
		t.Errorf("expected last name to win, got %q", cfg.Name)
	}
}

func TestMergeConfig_ReservedFieldsAlwaysWin(t *testing.T) {
	target := TargetOf[calculator]()
	factoryContract := newContract(target)
	callerContract := newContract(TargetOf[counterTarget]())

	instance := &calculator{Base: 1}
	f, err := NewFactory(target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := mergeConfig(Config{}, []ProxyOption{
		WithName("n"),
		WithContract(callerContract),
		WithStrictContract(callerContract),
		WithForwardTarget(instance),
	}, reserved{
		contract: factoryContract,
		strict:   factoryContract,
		forward:  f.instance,
	})

	if cfg.Contract() != factoryContract {
		t.Error("expected reserved contract to override the caller's")
	}
	if cfg.StrictContract() != factoryContract {
		t.Error("expected reserved strict contract to override the caller's")
	}
	if cfg.ForwardTarget() != f.Instance() {
		t.Error("expected reserved forward target to override the caller's")
	}
}

func TestMergeConfig_NilOptionsIgnored(t *testing.T) {
	cfg := mergeConfig(Config{Name: "kept"}, []ProxyOption{nil, WithLogCalls(true), nil}, reserved{})
	if cfg.Name != "kept" || !cfg.LogCalls {
		t.Errorf("unexpected merge result: %+v", cfg)
	}
}

func TestFactoryNew_EmptyNameRejected(t *testing.T) {
	f, err := NewFactory(TargetOf[calculator]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = f.New(WithName(""))
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestFactoryNew_ReservedOptionsDiscarded(t *testing.T) {
	f, err := NewFactory(TargetOf[calculator]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := &calculator{Base: 99}
	p, err := f.New(
		WithContract(newContract(TargetOf[counterTarget]())),
		WithStrictContract(newContract(TargetOf[counterTarget]())),
		WithForwardTarget(other),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Contract() != f.Contract() {
		t.Error("expected the factory contract on the proxy")
	}
	if p.Instance() != f.Instance() {
		t.Error("expected the factory instance on the proxy")
	}
}
