// Package logger provides structured logging for spykit built on zerolog.
//
// Spy factories and proxies log through a component-tagged logger so a
// noisy test run can be diagnosed by turning the level up to debug. The
// global logger defaults to warn to stay quiet under normal test output.
package logger
