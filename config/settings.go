package config

import (
	"fmt"

	"github.com/kbukum/spykit/logger"
	"github.com/kbukum/spykit/util"
)

// Proxy kind names accepted by RecorderSettings.DefaultKind.
const (
	KindRecording   = "recording"
	KindAsyncScoped = "async_scoped"
)

// RecorderSettings controls the default behavior of recording proxies.
type RecorderSettings struct {
	// LogCalls makes every recorded call emit a debug log line.
	LogCalls bool `yaml:"log_calls" mapstructure:"log_calls"`
	// TraceCalls makes every recorded call emit an OpenTelemetry span.
	TraceCalls bool `yaml:"trace_calls" mapstructure:"trace_calls"`
	// DefaultKind is the proxy kind factories use when none is given.
	DefaultKind string `yaml:"default_kind" mapstructure:"default_kind"`
}

// ApplyDefaults applies default values to recorder settings.
func (r *RecorderSettings) ApplyDefaults() {
	if r.DefaultKind == "" {
		r.DefaultKind = KindRecording
	}
}

// Validate validates recorder settings.
func (r *RecorderSettings) Validate() error {
	validKinds := []string{KindRecording, KindAsyncScoped}
	if !util.Contains(validKinds, r.DefaultKind) {
		return fmt.Errorf("recorder.default_kind must be one of %v (got: %s)", validKinds, r.DefaultKind)
	}
	return nil
}

// Settings contains all spykit configuration.
type Settings struct {
	Logging  logger.Config    `yaml:"logging" mapstructure:"logging"`
	Recorder RecorderSettings `yaml:"recorder" mapstructure:"recorder"`
}

// ApplyDefaults applies default values to all settings.
func (s *Settings) ApplyDefaults() {
	s.Logging.ApplyDefaults()
	s.Recorder.ApplyDefaults()
}

// Validate validates all settings.
func (s *Settings) Validate() error {
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("settings.logging: %w", err)
	}
	if err := s.Recorder.Validate(); err != nil {
		return fmt.Errorf("settings.recorder: %w", err)
	}
	return nil
}
