// Package config loads spykit settings from spykit.yml, .env files, and
// SPYKIT_* environment variables.
//
// Settings control the ambient behavior of spies (logging level, whether
// proxies log or trace recorded calls, the default proxy kind); they never
// change what a spy records or forwards. Test suites typically call
//
//	settings, _ := config.Load()
//	spy.Configure(settings)
//
// once in TestMain.
package config
