// Package spy builds recording test doubles around real instances.
//
// A factory owns exactly one instance of a target struct type and
// manufactures proxies that forward permitted calls to that instance
// while recording every interaction in a testify mock log:
//
//	factory, err := spy.NewFactory(spy.TargetOf[Calculator]())
//	proxy, err := factory.New()
//	result, err := proxy.Call("Add", 2, 3)
//	proxy.Interactions().AssertCalled(t, "Add", 2, 3)
//
// Calls to members outside the target's contract fail with a
// CONTRACT_VIOLATION error - the proxy's core value is catching drift
// between a test double and the real interface. The AsyncScoped proxy
// kind adds the Enter/Exit resource-scoping protocol for spying on
// scoped resources.
//
// The package assumes single-threaded test execution: the shared
// instance is unsynchronized and concurrent use from multiple
// goroutines is the caller's responsibility.
package spy
