package sender

import (
	"crypto/tls"
	"net"

	"gosyslog/internal/network"
)

// Sends messages over TLS (RFC 5425 transport) with RFC 6587 framing
// Handshake failures at connect or reconnect time surface as ConnectError
type TLSSender struct {
	streamSender
}

// TLS sender for the well-known syslog-over-TLS port (6514)
func TLSWellKnown(config *tls.Config) (sender *TLSSender, err error) {
	sender, err = TLS("127.0.0.1:6514", config)
	return
}

// TLS sender for the given address
// A nil config uses the defaults; the server name is derived from the
// address when the config does not carry one
func TLS(address string, config *tls.Config) (sender *TLSSender, err error) {
	sender, err = TLSTimeout(address, config, network.Timeouts{})
	return
}

// TLS sender with socket timeouts fixed at construction
func TLSTimeout(address string, config *tls.Config, timeouts network.Timeouts) (sender *TLSSender, err error) {
	if config == nil {
		config = &tls.Config{}
	}
	if config.ServerName == "" {
		host, _, splitErr := net.SplitHostPort(address)
		if splitErr == nil {
			config = config.Clone()
			config.ServerName = host
		}
	}

	dial := func() (conn net.Conn, err error) {
		raw, err := network.Dial("tcp", address, timeouts)
		if err != nil {
			return
		}
		tlsConn := tls.Client(raw, config)
		err = tlsConn.Handshake()
		if err != nil {
			raw.Close()
			return
		}
		conn = tlsConn
		return
	}

	conn, err := dial()
	if err != nil {
		err = &ConnectError{Addr: address, Err: err}
		return
	}

	sender = &TLSSender{newStream(address, dial, conn)}
	return
}
