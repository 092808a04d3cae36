package sender

import "fmt"

// Reports a failed connect or reconnect (DNS, socket, or TLS handshake)
type ConnectError struct {
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// Reports a write or flush failure on an established connection
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Reports that a well-known endpoint could not be resolved
type ResolveError struct {
	Endpoint string
	Err      error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("failed to resolve %s: %v", e.Endpoint, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
