package spy

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/spykit/config"
	"github.com/kbukum/spykit/logger"
	"github.com/kbukum/spykit/observability"
)

// packageSettings are the ambient defaults new factories consult. They
// never change what a proxy records or forwards.
type packageSettings struct {
	logCalls   bool
	traceCalls bool
	kind       Kind
}

var pkgSettings = packageSettings{kind: Recording}

func settings() packageSettings { return pkgSettings }

func defaultKind() Kind { return pkgSettings.kind }

func defaultTracer() trace.Tracer { return observability.DefaultTracer() }

// Configure applies loaded settings as the package defaults:
//
//	settings, err := config.Load()
//	if err == nil {
//	    spy.Configure(settings)
//	}
//
// Typically called once in TestMain. Factories created afterwards pick
// up the logging level, per-call logging/tracing, and default kind.
func Configure(s config.Settings) {
	logger.Init(s.Logging)
	pkgSettings = packageSettings{
		logCalls:   s.Recorder.LogCalls,
		traceCalls: s.Recorder.TraceCalls,
		kind:       KindFor(s.Recorder.DefaultKind),
	}
}

// KindFor maps a configured kind name to a proxy kind. Unknown names
// fall back to Recording.
func KindFor(name string) Kind {
	switch name {
	case config.KindAsyncScoped:
		return AsyncScopedKind
	default:
		return Recording
	}
}
