// Package errs provides standardized error types for the dispatch service.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) used with errors.Is
//   - a struct type carrying the details, usable with errors.As
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// The HTTP adapter maps the sentinels onto status codes, so domain packages
// only need to pick the right kind.
package errs
