// Package util provides generic utility functions for spykit packages.
//
// It includes pointer helpers, map utilities, and small slice operations
// shared by the spy core and its supporting packages.
package util
