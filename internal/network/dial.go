package network

import (
	"net"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// Socket timeouts fixed at construction time
// Zero values leave the OS defaults in place
type Timeouts struct {
	Connect time.Duration // stream connect timeout
	Send    time.Duration // kernel send timeout (SO_SNDTIMEO)
}

// Dials the remote endpoint with timeouts applied once at socket creation
// Any per-message timeout behavior is delegated to the kernel send timeout
func Dial(network string, address string, timeouts Timeouts) (conn net.Conn, err error) {
	// Using x/sys/unix package for more up-to-date syscall numbers
	dialer := net.Dialer{
		Timeout: timeouts.Connect,
		Control: func(netw, addr string, c syscall.RawConn) error {
			if timeouts.Send <= 0 {
				return nil
			}
			var sockErr error
			ctrlErr := c.Control(func(fd uintptr) {
				tv := unix.NsecToTimeval(timeouts.Send.Nanoseconds())
				sockErr = unix.SetsockoptTimeval(int(fd), unix.SOL_SOCKET, unix.SO_SNDTIMEO, &tv)
			})
			if ctrlErr != nil {
				return ctrlErr
			}
			return sockErr
		},
	}

	conn, err = dialer.Dial(network, address)
	return
}
