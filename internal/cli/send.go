package cli

import (
	"bufio"
	"context"
	"crypto/tls"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"gosyslog/internal/logctx"
	"gosyslog/pkg/sender"
	"gosyslog/pkg/syslog"
)

func SendMode(ctx context.Context, cmdOpts []CommandSet, commandName string, args []string) {
	commandFlags := flag.NewFlagSet(commandName, flag.ExitOnError)
	transport := commandFlags.String("transport", "udp", "Transport: udp, tcp, tls, unix, beats")
	address := commandFlags.String("address", "", "Remote address or socket path (empty uses the well-known endpoint)")
	rfc := commandFlags.String("rfc", "3164", "Wire format: 3164 or 5424")
	facilityName := commandFlags.String("facility", "user", "Syslog facility keyword")
	severityName := commandFlags.String("severity", "info", "Syslog severity keyword")
	tag := commandFlags.String("tag", "", "Override the app name (tag)")
	msgID := commandFlags.String("msgid", "", "RFC 5424 message ID")
	insecure := commandFlags.Bool("insecure", false, "Skip TLS certificate verification")

	commandFlags.Usage = func() {
		PrintHelpMenu(commandFlags, commandName, cmdOpts)
	}
	commandFlags.Parse(args)

	facility, err := syslog.ParseFacility(*facilityName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	severity, err := syslog.ParseSeverity(*severityName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	message := strings.Join(commandFlags.Args(), " ")
	if message == "" {
		message = readMessage()
	}
	if message == "" {
		fmt.Fprintf(os.Stderr, "Error: no message to send\n")
		os.Exit(1)
	}

	logSender, err := openSender(*transport, *address, *insecure)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logSender.Close()

	logSender.Context().Facility = facility
	if *tag != "" {
		logSender.Context().AppName = *tag
	}

	logctx.LogEvent(ctx, logctx.VerbosityProgress, "Sending %s.%s message over %s\n", *facilityName, *severityName, *transport)

	switch *rfc {
	case "3164":
		err = logSender.SendRFC3164(severity, message)
	case "5424":
		err = logSender.SendRFC5424(severity, *msgID, nil, message)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown wire format: %s\n", *rfc)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sending message: %v\n", err)
		os.Exit(1)
	}

	err = logSender.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error flushing message: %v\n", err)
		os.Exit(1)
	}

	logctx.LogEvent(ctx, logctx.VerbosityStandard, "Message sent\n")
}

// Reads the message body from stdin when no arguments are given
func readMessage() (message string) {
	// Only prompt if in terminal
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Message: ")
	}

	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	message = strings.TrimSpace(input)
	return
}

// Opens the requested transport, falling back to its well-known endpoint
// when no address is given
func openSender(transport string, address string, insecure bool) (logSender sender.Sender, err error) {
	switch transport {
	case "udp":
		if address == "" {
			logSender, err = sender.UDPWellKnown()
		} else {
			logSender, err = sender.UDP(address)
		}
	case "tcp":
		if address == "" {
			logSender, err = sender.TCPWellKnown()
		} else {
			logSender, err = sender.TCP(address)
		}
	case "tls":
		config := &tls.Config{InsecureSkipVerify: insecure}
		if address == "" {
			logSender, err = sender.TLSWellKnown(config)
		} else {
			logSender, err = sender.TLS(address, config)
		}
	case "unix":
		if address == "" {
			logSender, err = sender.UnixWellKnown()
		} else {
			logSender, err = sender.Unix(address)
		}
	case "beats":
		if address == "" {
			err = fmt.Errorf("beats transport requires an address")
		} else {
			logSender, err = sender.Beats(address)
		}
	default:
		err = fmt.Errorf("unknown transport: %s", transport)
	}
	return
}
