package sender

import (
	"errors"
	"fmt"
	"net"

	"golang.org/x/sys/unix"

	"gosyslog/internal/network"
)

// Conventional local syslog socket paths, in probing order
var localSyslogPaths = []string{"/dev/log", "/var/run/syslog", "/var/run/log"}

// Sends messages to a unix datagram socket, one packet per message
type UnixDatagramSender struct {
	datagramSender
}

// Unix datagram sender for the given socket path
func UnixDatagram(path string) (sender *UnixDatagramSender, err error) {
	conn, err := network.Dial("unixgram", path, network.Timeouts{})
	if err != nil {
		err = &ConnectError{Addr: path, Err: err}
		return
	}

	sender = &UnixDatagramSender{newDatagram(conn)}
	return
}

// Sends messages to a unix stream socket with RFC 6587 framing
type UnixStreamSender struct {
	streamSender
}

// Unix stream sender for the given socket path
func UnixStream(path string) (sender *UnixStreamSender, err error) {
	dial := func() (net.Conn, error) {
		return network.Dial("unix", path, network.Timeouts{})
	}

	conn, err := dial()
	if err != nil {
		err = &ConnectError{Addr: path, Err: err}
		return
	}

	sender = &UnixStreamSender{newStream(path, dial, conn)}
	return
}

// Unix sender for the given socket path
// Tries datagram first and falls back to stream when the socket on the
// other end is stream-oriented
func Unix(path string) (sender Sender, err error) {
	dgramSender, err := UnixDatagram(path)
	if err == nil {
		sender = dgramSender
		return
	}
	if errors.Is(err, unix.EPROTOTYPE) {
		strSender, streamErr := UnixStream(path)
		if streamErr == nil {
			sender = strSender
		}
		err = streamErr
	}
	return
}

// Unix sender for the local syslog daemon
// Probes the conventional socket paths (datagram before stream) and returns
// the first that accepts a connection
func UnixWellKnown() (sender Sender, err error) {
	for _, netType := range []string{"unixgram", "unix"} {
		for _, path := range localSyslogPaths {
			conn, dialErr := network.Dial(netType, path, network.Timeouts{})
			if dialErr != nil {
				continue
			}
			if netType == "unixgram" {
				sender = &UnixDatagramSender{newDatagram(conn)}
			} else {
				dial := func() (net.Conn, error) {
					return network.Dial("unix", path, network.Timeouts{})
				}
				sender = &UnixStreamSender{newStream(path, dial, conn)}
			}
			return
		}
	}

	err = &ResolveError{
		Endpoint: "local syslog socket",
		Err:      fmt.Errorf("no conventional socket path accepted a connection: %v", localSyslogPaths),
	}
	return
}
