package sender

import (
	"net"

	"gosyslog/internal/network"
)

// Sends messages to a TCP socket with RFC 6587 non-transparent framing
type TCPSender struct {
	streamSender
}

// TCP sender for the well-known syslog port (514)
func TCPWellKnown() (sender *TCPSender, err error) {
	sender, err = TCP("127.0.0.1:514")
	return
}

// TCP sender for the given address
func TCP(address string) (sender *TCPSender, err error) {
	sender, err = TCPTimeout(address, network.Timeouts{})
	return
}

// TCP sender with socket timeouts fixed at construction
// Reconnects reuse the same timeouts
func TCPTimeout(address string, timeouts network.Timeouts) (sender *TCPSender, err error) {
	dial := func() (net.Conn, error) {
		return network.Dial("tcp", address, timeouts)
	}

	conn, err := dial()
	if err != nil {
		err = &ConnectError{Addr: address, Err: err}
		return
	}

	sender = &TCPSender{newStream(address, dial, conn)}
	return
}
