package sender

import (
	"bufio"
	"net"

	"gosyslog/pkg/syslog"
)

// Message terminator for RFC 6587 §3.4.2 non-transparent framing
const framePostfix string = "\n"

// Shared behavior for connection-oriented transports (TCP, TLS, unix stream)
//
// Holds a two-state connection machine. A write failure transitions to
// disconnected and surfaces the error; the next send attempts exactly one
// reconnect before writing. Message text containing a bare LF is passed
// through as-is and will be read as a frame boundary by the receiver.
type streamSender struct {
	addr    string
	dial    func() (net.Conn, error)
	postfix string
	context *syslog.Context

	conn   net.Conn
	writer *bufio.Writer
	state  connState
}

func newStream(addr string, dial func() (net.Conn, error), conn net.Conn) streamSender {
	return streamSender{
		addr:    addr,
		dial:    dial,
		postfix: framePostfix,
		context: syslog.NewContext(),
		conn:    conn,
		writer:  bufio.NewWriter(conn),
		state:   stateConnected,
	}
}

// Formats per RFC 3164 and writes one framed message
func (s *streamSender) SendRFC3164(severity syslog.Severity, message string) (err error) {
	err = s.SendFormatted([]byte(s.context.FormatRFC3164(severity, message)))
	return
}

// Formats per RFC 5424 and writes one framed message
func (s *streamSender) SendRFC5424(severity syslog.Severity, msgID string, elements []syslog.SDElement, message string) (err error) {
	err = s.SendFormatted([]byte(s.context.FormatRFC5424(severity, msgID, elements, message)))
	return
}

// Writes the formatted bytes plus the frame terminator to the buffered
// connection. If disconnected, attempts exactly one reconnect first.
func (s *streamSender) SendFormatted(formatted []byte) (err error) {
	if s.state == stateDisconnected {
		err = s.reconnect()
		if err != nil {
			return
		}
	}

	_, err = s.writer.Write(formatted)
	if err == nil {
		_, err = s.writer.WriteString(s.postfix)
	}
	if err != nil {
		s.state = stateDisconnected
		err = &IOError{Op: "write message", Err: err}
	}
	return
}

// Forces buffered bytes to the OS send buffer
// Does not wait for peer acknowledgement. Flush never reconnects: bytes
// buffered before a connection failure are gone, and only the next send
// attempts recovery.
func (s *streamSender) Flush() (err error) {
	err = s.writer.Flush()
	if err != nil {
		s.state = stateDisconnected
		err = &IOError{Op: "flush", Err: err}
	}
	return
}

// Single reconnect attempt - remains disconnected on failure
// Bytes buffered on the previous connection are lost
func (s *streamSender) reconnect() (err error) {
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}

	conn, err := s.dial()
	if err != nil {
		err = &ConnectError{Addr: s.addr, Err: err}
		return
	}

	s.conn = conn
	s.writer = bufio.NewWriter(conn)
	s.state = stateConnected
	return
}

// Replaces the frame terminator
// Default is LF; some receivers expect CRLF or no terminator at all
func (s *streamSender) SetPostfix(postfix string) {
	s.postfix = postfix
}

// Closes the connection and leaves the sender disconnected
func (s *streamSender) Close() (err error) {
	if s.conn == nil {
		return
	}
	err = s.conn.Close()
	s.conn = nil
	s.state = stateDisconnected
	return
}

// Default message fields, mutable between sends
func (s *streamSender) Context() *syslog.Context {
	return s.context
}
