package edimax

import "fmt"

// ConnectionError is returned when the plug cannot be reached at all,
// either during the construction-time auth probe or on a later request.
type ConnectionError struct {
	Host string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("edimax: cannot reach %s: %v", e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// TransportError is returned when the plug answers with a non-2xx HTTP
// status. The response body is not parsed in that case.
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("edimax: http %d", e.StatusCode)
}

// ProtocolError is returned when the HTTP exchange succeeded but the XML
// payload is malformed, misses expected elements, or carries a value the
// operation cannot accept.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string { return "edimax: " + e.Reason }
