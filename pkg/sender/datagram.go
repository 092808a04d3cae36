package sender

import (
	"net"

	"gosyslog/pkg/syslog"
)

// Shared behavior for connectionless transports (UDP, unix datagram)
// One send is one outbound packet - no framing, no connection state machine
type datagramSender struct {
	conn    net.Conn
	context *syslog.Context
}

func newDatagram(conn net.Conn) datagramSender {
	return datagramSender{
		conn:    conn,
		context: syslog.NewContext(),
	}
}

// Formats per RFC 3164 and sends one packet
func (s *datagramSender) SendRFC3164(severity syslog.Severity, message string) (err error) {
	err = s.SendFormatted([]byte(s.context.FormatRFC3164(severity, message)))
	return
}

// Formats per RFC 5424 and sends one packet
func (s *datagramSender) SendRFC5424(severity syslog.Severity, msgID string, elements []syslog.SDElement, message string) (err error) {
	err = s.SendFormatted([]byte(s.context.FormatRFC5424(severity, msgID, elements, message)))
	return
}

// Sends exactly the formatted bytes as one packet, no terminator added
// OS-level send failures surface immediately with no retry
func (s *datagramSender) SendFormatted(formatted []byte) (err error) {
	_, err = s.conn.Write(formatted)
	if err != nil {
		err = &IOError{Op: "send datagram", Err: err}
	}
	return
}

// Datagram sends are synchronous and complete on return
func (s *datagramSender) Flush() (err error) {
	return
}

// Releases the socket
func (s *datagramSender) Close() (err error) {
	err = s.conn.Close()
	return
}

// Default message fields, mutable between sends
func (s *datagramSender) Context() *syslog.Context {
	return s.context
}
