package sender

import (
	"gosyslog/internal/network"
)

// Sends messages to a UDP socket (RFC 5426 transport), one packet per message
type UDPSender struct {
	datagramSender
}

// UDP sender for the well-known syslog port (514)
func UDPWellKnown() (sender *UDPSender, err error) {
	sender, err = UDP("127.0.0.1:514")
	return
}

// UDP sender for the given address
func UDP(address string) (sender *UDPSender, err error) {
	sender, err = UDPTimeout(address, network.Timeouts{})
	return
}

// UDP sender with socket timeouts fixed at construction
func UDPTimeout(address string, timeouts network.Timeouts) (sender *UDPSender, err error) {
	conn, err := network.Dial("udp", address, timeouts)
	if err != nil {
		err = &ConnectError{Addr: address, Err: err}
		return
	}

	sender = &UDPSender{newDatagram(conn)}
	return
}
