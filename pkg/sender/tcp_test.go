package sender

import (
	"bufio"
	"errors"
	"net"
	"testing"

	"gosyslog/pkg/syslog"
)

func TestTCPSenderFraming(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	defer listener.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, acceptErr := listener.Accept()
		if acceptErr == nil {
			accepted <- conn
		}
	}()

	tcpSender, err := TCP(listener.Addr().String())
	if err != nil {
		t.Fatalf("failed to create sender: %v", err)
	}
	defer tcpSender.Close()

	server := <-accepted
	defer server.Close()

	if err = tcpSender.SendFormatted([]byte("<14>hello")); err != nil {
		t.Fatalf("failed to send: %v", err)
	}
	if err = tcpSender.Flush(); err != nil {
		t.Fatalf("failed to flush: %v", err)
	}

	line, err := bufio.NewReader(server).ReadString('\n')
	if err != nil {
		t.Fatalf("failed to read line: %v", err)
	}
	if line != "<14>hello\n" {
		t.Fatalf("framed line: expected %q, got %q", "<14>hello\n", line)
	}
}

func TestTCPSenderRFC5424(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	defer listener.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, acceptErr := listener.Accept()
		if acceptErr == nil {
			accepted <- conn
		}
	}()

	tcpSender, err := TCP(listener.Addr().String())
	if err != nil {
		t.Fatalf("failed to create sender: %v", err)
	}
	defer tcpSender.Close()

	server := <-accepted
	defer server.Close()

	element, err := syslog.NewSDElement("exampleSDID@32473")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	element.AddParam("iut", "3")

	tcpSender.Context().Hostname = "host"
	tcpSender.Context().AppName = ""
	tcpSender.Context().ProcID = ""

	if err = tcpSender.SendRFC5424(syslog.Error, "", []syslog.SDElement{element}, "disk full"); err != nil {
		t.Fatalf("failed to send: %v", err)
	}
	if err = tcpSender.Flush(); err != nil {
		t.Fatalf("failed to flush: %v", err)
	}

	line, err := bufio.NewReader(server).ReadString('\n')
	if err != nil {
		t.Fatalf("failed to read line: %v", err)
	}

	parser := `host - - - [exampleSDID@32473 iut="3"] disk full` + "\n"
	if len(line) < len(parser) || line[len(line)-len(parser):] != parser {
		t.Fatalf("expected line ending %q, got %q", parser, line)
	}
	if line[:5] != "<11>1" {
		t.Fatalf("expected <11>1 prefix, got %q", line)
	}
}

func TestTCPConnectRefusedIsConnectError(t *testing.T) {
	// Grab a port that nothing is listening on
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	address := listener.Addr().String()
	listener.Close()

	_, err = TCP(address)
	if err == nil {
		t.Fatalf("expected connect error for refused connection")
	}
	var connErr *ConnectError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected ConnectError, got %T: %v", err, err)
	}
}
