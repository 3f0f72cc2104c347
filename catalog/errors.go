// Package catalog resolves storefront filter/sort/search requests into
// bounded, ordered result sets against the backing store.
package catalog

import "fmt"

// ValidationReason is a machine-readable code for rejected caller input.
type ValidationReason string

const (
	ReasonInvalidSearchLength ValidationReason = "invalid-search-length"
	ReasonInvalidPrice        ValidationReason = "invalid-price"
	ReasonInvalidLimit        ValidationReason = "invalid-limit"
)

// ValidationError rejects malformed caller input before any store access.
type ValidationError struct {
	Reason  ValidationReason
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%s): %s", e.Reason, e.Message)
}

// CapabilityUnavailableError signals that the store's fuzzy-search capability
// cannot serve the request. It is recovered locally by the substring fallback
// and never surfaced to the caller.
type CapabilityUnavailableError struct {
	Capability string
	Err        error
}

func (e *CapabilityUnavailableError) Error() string {
	return fmt.Sprintf("capability %q unavailable: %v", e.Capability, e.Err)
}

func (e *CapabilityUnavailableError) Unwrap() error { return e.Err }

// DataAccessError is a generic backing-store failure (unreachable, query
// rejected). Detail is environment-gated at the HTTP boundary.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access failed during %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// ConfigurationError means an expected schema object is absent from the
// backing store: setup is incomplete, not a transient outage. Hint carries
// the remediation.
type ConfigurationError struct {
	Missing string
	Hint    string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("store setup incomplete, missing %s: %v", e.Missing, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
