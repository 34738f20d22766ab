// Package article provides the use cases behind the article REST endpoints.
// It composes the repository (entity store), the access policy, and entity
// validation into the list, create, patch, and delete operations.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	// Handlers translate this to a 400 Bad Request: that is the observed
	// behavior of the original endpoint and is kept for compatibility.
	ErrArticleNotFound = errors.New("article not found")
)

// AccessDeniedError indicates an authorization failure. The message may
// include a policy-supplied reason and is safe to surface to the caller.
type AccessDeniedError struct {
	Message string
}

func (e *AccessDeniedError) Error() string {
	return e.Message
}

// ClientSafe reports that the message carries no internal detail and may be
// returned to the caller as the denial reason.
func (e *AccessDeniedError) ClientSafe() bool { return true }

// BadRequestError indicates malformed, missing, or contradictory input.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// ClientSafe reports that the message carries no internal detail and may be
// returned to the caller verbatim.
func (e *BadRequestError) ClientSafe() bool { return true }
