package spy

import (
	stderrors "errors"
	"strings"
)

// Test targets. The spy core only sees their reflected shape, so they
// stay deliberately small.

var (
	errDivideByZero = stderrors.New("divide by zero")
	errInitBoom     = stderrors.New("init blew up")
)

// calculator carries mutable state so tests can observe that every
// proxy of a factory shares the one instance.
type calculator struct {
	Base int
}

func (c *calculator) Add(a, b int) int { return c.Base + a + b }

func (c *calculator) SetBase(v int) { c.Base = v }

func (c *calculator) Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, errDivideByZero
	}
	return a / b, nil
}

func (c *calculator) Describe(label *string) string {
	if label == nil {
		return "unlabeled"
	}
	return *label
}

// joiner exercises variadic forwarding.
type joiner struct{}

func (j *joiner) Join(sep string, parts ...string) string {
	return strings.Join(parts, sep)
}

// counterTarget observes whether a call actually reached the instance.
type counterTarget struct {
	N int
}

func (c *counterTarget) Bump() int {
	c.N++
	return c.N
}

// flakyTarget fails construction on demand.
type flakyTarget struct {
	Fail bool
}

func (f *flakyTarget) Init() error {
	if f.Fail {
		return errInitBoom
	}
	return nil
}

// documentedClient carries its own usage text.
type documentedClient struct{}

func (d *documentedClient) Doc() string { return "A documented client." }

func (d *documentedClient) Ping() string { return "pong" }

// adder is the substitutability interface for calculator.
type adder interface {
	Add(a, b int) int
}
