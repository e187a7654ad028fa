package shared

import "errors"

// Sentinel errors shared across subsystems. Per-subsystem verification
// failure taxonomies live in their own packages (participation.VerifyErr,
// header.ValidateErr, admission.AdmitErr, ...) as enumerated types; these
// name cross-cutting conditions. No package in this module returns
// them.
var (
	// ErrNotInitialized names a component used before its explicit setup
	// (e.g. a dataset build).
	ErrNotInitialized = errors.New("shared: not initialized")

	// ErrClosed names a component used after it has been shut down.
	ErrClosed = errors.New("shared: closed")
)
