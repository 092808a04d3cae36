package sender

import "gosyslog/pkg/syslog"

// Capability set shared by all transports
//
// Senders are blocking: each call completes or fails on the caller's
// goroutine. A single sender is not safe for unsynchronized concurrent use -
// stream reconnects mutate shared connection state, so concurrent callers
// must serialize send/flush behind their own mutex.
type Sender interface {
	// Formats per RFC 3164 and transmits one message
	SendRFC3164(severity syslog.Severity, message string) error
	// Formats per RFC 5424 and transmits one message
	// Empty msgID renders as NILVALUE
	SendRFC5424(severity syslog.Severity, msgID string, elements []syslog.SDElement, message string) error
	// Transmits pre-formatted message bytes
	SendFormatted(formatted []byte) error
	// Forces buffered bytes to the OS send buffer - no-op for datagram
	// transports, does not wait for peer acknowledgement
	Flush() error
	// Releases the underlying transport
	Close() error
	// Default message fields, mutable between sends
	Context() *syslog.Context
}

// Stream transport connection state
type connState int

const (
	stateConnected connState = iota
	stateDisconnected
)
