package syslog

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func fixedClock(instant time.Time) func() time.Time {
	return func() time.Time {
		return instant
	}
}

func TestFormatRFC3164(t *testing.T) {
	instant := time.Date(2024, time.October, 11, 22, 14, 15, 0, time.UTC)

	tests := []struct {
		name     string
		context  Context
		severity Severity
		message  string
		want     string
	}{
		{
			name:     "all fields",
			context:  Context{Facility: User, Hostname: "Server01", AppName: "MyApp", ProcID: "1234"},
			severity: Error,
			message:  "disk full",
			want:     "<11>Oct 11 22:14:15 Server01 MyApp[1234]: disk full",
		},
		{
			name:     "no procid",
			context:  Context{Facility: User, Hostname: "Server01", AppName: "MyApp"},
			severity: Error,
			message:  "disk full",
			want:     "<11>Oct 11 22:14:15 Server01 MyApp: disk full",
		},
		{
			name:     "absent hostname and tag",
			context:  *EmptyContext(),
			severity: Info,
			message:  "hello",
			want:     "<14>Oct 11 22:14:15 - -: hello",
		},
		{
			name:     "empty message omits colon",
			context:  Context{Facility: Daemon, Hostname: "host", AppName: "app"},
			severity: Notice,
			message:  "",
			want:     "<29>Oct 11 22:14:15 host app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.context.SetClock(fixedClock(instant))
			got := tt.context.FormatRFC3164(tt.severity, tt.message)
			if got != tt.want {
				t.Fatalf("FormatRFC3164: expected %q, got %q", tt.want, got)
			}
			if strings.HasSuffix(got, "\n") {
				t.Fatalf("formatted message must not carry a trailing newline: %q", got)
			}
		})
	}
}

func TestFormatRFC3164SpacePaddedDay(t *testing.T) {
	context := Context{Facility: User, Hostname: "host", AppName: "app"}
	context.SetClock(fixedClock(time.Date(2024, time.October, 3, 7, 8, 9, 0, time.UTC)))

	got := context.FormatRFC3164(Info, "hi")
	want := "<14>Oct  3 07:08:09 host app: hi"
	if got != want {
		t.Fatalf("FormatRFC3164: expected %q, got %q", want, got)
	}
}

func TestFormatRFC3164FieldOrderRoundTrip(t *testing.T) {
	context := Context{Facility: User, Hostname: "Server01", AppName: "MyApp", ProcID: "99"}
	context.SetClock(fixedClock(time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)))

	got := context.FormatRFC3164(Warning, "something happened")

	// A conforming RFC 3164 parser recovers hostname, tag and message
	parser := regexp.MustCompile(`^<(\d+)>(\w{3} [ \d]\d \d\d:\d\d:\d\d) (\S+) ([^\[:]+)\[(\d+)\]: (.*)$`)
	fields := parser.FindStringSubmatch(got)
	if fields == nil {
		t.Fatalf("output did not match RFC 3164 shape: %q", got)
	}
	if fields[1] != "12" {
		t.Errorf("PRI: expected 12, got %s", fields[1])
	}
	if fields[3] != "Server01" {
		t.Errorf("hostname: expected Server01, got %s", fields[3])
	}
	if fields[4] != "MyApp" {
		t.Errorf("tag: expected MyApp, got %s", fields[4])
	}
	if fields[5] != "99" {
		t.Errorf("procid: expected 99, got %s", fields[5])
	}
	if fields[6] != "something happened" {
		t.Errorf("message: expected 'something happened', got %q", fields[6])
	}
}

func TestFormatRFC5424(t *testing.T) {
	instant := time.Date(2024, time.October, 11, 22, 14, 15, 3000, time.UTC)

	element, err := NewSDElement("exampleSDID@32473")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	element.AddParam("iut", "3")

	tests := []struct {
		name     string
		context  Context
		severity Severity
		msgID    string
		elements []SDElement
		message  string
		want     string
	}{
		{
			name:     "spec example with structured data",
			context:  Context{Facility: User, Hostname: "Server01"},
			severity: Error,
			elements: []SDElement{element},
			message:  "disk full",
			want:     `<11>1 2024-10-11T22:14:15.000003Z Server01 - - - [exampleSDID@32473 iut="3"] disk full`,
		},
		{
			name:     "all fields",
			context:  Context{Facility: Local4, Hostname: "host", AppName: "app", ProcID: "8710"},
			severity: Notice,
			msgID:    "ID47",
			elements: []SDElement{element},
			message:  "event",
			want:     `<165>1 2024-10-11T22:14:15.000003Z host app 8710 ID47 [exampleSDID@32473 iut="3"] event`,
		},
		{
			name:     "all absent fields render NILVALUE",
			context:  *EmptyContext(),
			severity: Info,
			message:  "hello",
			want:     "<14>1 2024-10-11T22:14:15.000003Z - - - - - hello",
		},
		{
			name:     "empty message omitted",
			context:  Context{Facility: User, Hostname: "host"},
			severity: Info,
			message:  "",
			want:     "<14>1 2024-10-11T22:14:15.000003Z host - - - -",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.context.SetClock(fixedClock(instant))
			got := tt.context.FormatRFC5424(tt.severity, tt.msgID, tt.elements, tt.message)
			if got != tt.want {
				t.Fatalf("FormatRFC5424: expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatRFC5424TimestampIsUTC(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	context := Context{Facility: User, Hostname: "host"}
	context.SetClock(fixedClock(time.Date(2024, time.March, 1, 1, 30, 0, 0, zone)))

	got := context.FormatRFC5424(Info, "", nil, "hi")
	want := "<14>1 2024-03-01T00:30:00.000000Z host - - - - hi"
	if got != want {
		t.Fatalf("FormatRFC5424: expected %q, got %q", want, got)
	}
}

func TestFormatRFC5424Truncation(t *testing.T) {
	context := Context{
		Facility: User,
		Hostname: strings.Repeat("h", 300),
		AppName:  strings.Repeat("a", 64),
		ProcID:   strings.Repeat("p", 200),
	}
	context.SetClock(fixedClock(time.Date(2024, time.October, 11, 22, 14, 15, 0, time.UTC)))

	got := context.FormatRFC5424(Info, strings.Repeat("m", 40), nil, "hi")

	fields := strings.Split(got, " ")
	if len(fields[2]) != 255 {
		t.Errorf("hostname: expected truncation to 255, got %d", len(fields[2]))
	}
	if len(fields[3]) != 48 {
		t.Errorf("app-name: expected truncation to 48, got %d", len(fields[3]))
	}
	if len(fields[4]) != 128 {
		t.Errorf("procid: expected truncation to 128, got %d", len(fields[4]))
	}
	if len(fields[5]) != 32 {
		t.Errorf("msgid: expected truncation to 32, got %d", len(fields[5]))
	}
}

func TestEmptyContext(t *testing.T) {
	context := EmptyContext()

	if context.Facility != User {
		t.Errorf("facility: expected user, got %s", context.Facility)
	}
	if context.Hostname != "" || context.AppName != "" || context.ProcID != "" {
		t.Errorf("expected blank fields, got %q %q %q", context.Hostname, context.AppName, context.ProcID)
	}
}

func TestNewContextDefaults(t *testing.T) {
	context := NewContext()

	if context.Facility != User {
		t.Errorf("facility: expected user, got %s", context.Facility)
	}
	if context.ProcID == "" {
		t.Errorf("procid: expected discovered pid, got empty")
	}
	if context.AppName == "" {
		t.Errorf("app name: expected discovered executable name, got empty")
	}
}
