package sender

import (
	"time"

	lumberjack "github.com/elastic/go-lumber/client/v2"

	"gosyslog/pkg/syslog"
)

const defaultBeatsTimeout = 3 * time.Second

// Sends messages to a beats (lumberjack v2) endpoint on the same capability
// set as the socket transports. The client is synchronous: one send is one
// acknowledged event batch of size one, so Flush is a no-op.
type BeatsSender struct {
	sink    *lumberjack.SyncClient
	context *syslog.Context
}

// Beats sender for the given endpoint
func Beats(endpoint string) (sender *BeatsSender, err error) {
	sender, err = BeatsTimeout(endpoint, defaultBeatsTimeout)
	return
}

// Beats sender with an explicit dial/send timeout
func BeatsTimeout(endpoint string, timeout time.Duration) (sender *BeatsSender, err error) {
	compression := lumberjack.CompressionLevel(0)

	ljClient, err := lumberjack.SyncDial(endpoint, compression, lumberjack.Timeout(timeout))
	if err != nil {
		err = &ConnectError{Addr: endpoint, Err: err}
		return
	}

	sender = &BeatsSender{
		sink:    ljClient,
		context: syslog.NewContext(),
	}
	return
}

// Formats per RFC 3164 and sends one event
func (s *BeatsSender) SendRFC3164(severity syslog.Severity, message string) (err error) {
	err = s.sendEvent(s.context.FormatRFC3164(severity, message), severity)
	return
}

// Formats per RFC 5424 and sends one event
func (s *BeatsSender) SendRFC5424(severity syslog.Severity, msgID string, elements []syslog.SDElement, message string) (err error) {
	err = s.sendEvent(s.context.FormatRFC5424(severity, msgID, elements, message), severity)
	return
}

// Sends pre-formatted message bytes as one event
// Severity metadata is unknown for pre-formatted input and defaults to info
func (s *BeatsSender) SendFormatted(formatted []byte) (err error) {
	err = s.sendEvent(string(formatted), syslog.Info)
	return
}

// Wraps the formatted message in beats event fields and sends it
func (s *BeatsSender) sendEvent(formatted string, severity syslog.Severity) (err error) {
	fields := map[string]interface{}{
		// Minimum required fields
		"@timestamp": time.Now(),
		"message":    formatted,

		// Common fields
		"host": map[string]interface{}{
			"name":     s.context.Hostname,
			"hostname": s.context.Hostname,
		},
		"process": map[string]interface{}{
			"pid": s.context.ProcID,
		},

		// Syslog compat fields
		"log": map[string]interface{}{
			"syslog": map[string]interface{}{
				"appname": s.context.AppName,
				"facility": map[string]interface{}{
					"code": s.context.Facility.Code(),
					"name": s.context.Facility.String(),
				},
				"priority": syslog.Priority(s.context.Facility, severity),
				"severity": map[string]interface{}{
					"code": severity.Code(),
					"name": severity.String(),
				},
			},
		},
	}
	events := []interface{}{fields}

	_, err = s.sink.Send(events)
	if err != nil {
		err = &IOError{Op: "send event", Err: err}
	}
	return
}

// Beats sends are acknowledged synchronously
func (s *BeatsSender) Flush() (err error) {
	return
}

// Gracefully stops the client
func (s *BeatsSender) Close() (err error) {
	err = s.sink.Close()
	return
}

// Default message fields, mutable between sends
func (s *BeatsSender) Context() *syslog.Context {
	return s.context
}
