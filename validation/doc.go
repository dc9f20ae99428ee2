// Package validation provides struct-tag based validation for spykit
// configuration types, producing coded spykit errors.
package validation
