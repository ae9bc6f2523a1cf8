package common

import "errors"

// Error taxonomy shared across services. Handlers map these onto HTTP status
// codes; anything else is treated as a transient store failure.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrNotFound         = errors.New("not found")
	ErrBlocked          = errors.New("conversation blocked between these users")
	ErrEmptyContent     = errors.New("message content is empty")
	ErrInvalidInput     = errors.New("invalid input")
)
