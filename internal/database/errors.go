package database

import "fmt"

// ConnectionError means the selected backend could not be reached or the
// encrypted-transport requirement was not met. It is fatal to the calling
// operation; there is no silent fallback to the other backend.
type ConnectionError struct {
	Backend string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s connection failed: %v", e.Backend, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError wraps a failed statement with the original query text and
// the backend name for diagnostics. It is never swallowed at this layer.
type QueryError struct {
	Backend string
	Query   string
	Err     error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed on %s: %v | query: %s", e.Backend, e.Err, e.Query)
}

func (e *QueryError) Unwrap() error { return e.Err }
