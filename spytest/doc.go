// Package spytest provides testing.T integration for spy factories.
//
// The spytest package wraps the spy package's two-step construction
// (build a factory, then call it for proxies) into helpers that fail
// the test on error and register cleanup with testing.T.
//
// # Quick Start
//
//	func TestMyFeature(t *testing.T) {
//	    proxy := spytest.T(t).Proxy(spy.TargetOf[Calculator]())
//	    // expectations installed on proxy.Interactions() are verified
//	    // automatically when the test ends
//	}
//
// Separate factory and proxy construction when a test needs multiple
// proxies around the same instance:
//
//	h := spytest.T(t)
//	factory := h.Factory(spy.TargetOf[Calculator](), spy.WithArgs(10))
//	first := h.New(factory)
//	second := h.New(factory)
//
// # Thread Safety
//
// Helpers assume single-threaded test execution, matching the spy
// package's own contract.
package spytest
