package wikidot

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the requested thread, post or page does not exist.
	ErrNotFound = errors.New("not found")
	// ErrIdentityMismatch means the service returned an entity other than the one asked for.
	ErrIdentityMismatch = errors.New("identity mismatch")
	// ErrForbidden maps the AMC "no_permission" status.
	ErrForbidden = errors.New("no permission to perform this action")
	// ErrLoginRequired is returned by operations that need an authenticated session.
	ErrLoginRequired = errors.New("login required")
	// ErrNoElement means an expected element was missing from a response document.
	ErrNoElement = errors.New("expected element not found")
)

// StatusError is an AMC response whose status field was neither "ok" nor "no_permission".
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("AMC error status: %s", e.Status)
	}
	return fmt.Sprintf("AMC error status: %s (%s)", e.Status, e.Message)
}
