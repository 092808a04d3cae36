// Renders syslog messages according to RFC 3164 and RFC 5424
package syslog

import (
	"strconv"
	"strings"
)

// Formats the message per RFC 3164 (BSD syslog):
// '<PRI>Mmm dd hh:mm:ss HOSTNAME TAG[pid]: MSG' with no trailing newline.
// Hostname and tag pass through verbatim - embedded whitespace is not
// validated here and will confuse conforming receivers.
// The timestamp is captured from the context clock in local time.
func (c *Context) FormatRFC3164(severity Severity, message string) string {
	var line strings.Builder
	line.WriteByte('<')
	line.WriteString(strconv.Itoa(Priority(c.Facility, severity)))
	line.WriteByte('>')
	line.WriteString(c.clock().Format(timestampRFC3164))
	line.WriteByte(' ')
	line.WriteString(orNil(c.Hostname))
	line.WriteByte(' ')
	line.WriteString(orNil(c.AppName))
	if c.ProcID != "" {
		line.WriteString("[" + c.ProcID + "]")
	}
	if message != "" {
		line.WriteString(": " + message)
	}
	return line.String()
}

// Formats the message per RFC 5424 (The Syslog Protocol):
// '<PRI>1 TIMESTAMP HOSTNAME APP-NAME PROCID MSGID SD MSG'.
// Absent fields render as NILVALUE; overlong fields are truncated to the
// RFC caps. The timestamp is rendered in UTC with microsecond precision.
// Embedded LFs in the message text are not stripped or escaped - with
// non-transparent stream framing the receiver will treat them as frame
// boundaries.
func (c *Context) FormatRFC5424(severity Severity, msgID string, elements []SDElement, message string) string {
	var line strings.Builder
	line.WriteByte('<')
	line.WriteString(strconv.Itoa(Priority(c.Facility, severity)))
	line.WriteString(">1 ")
	line.WriteString(c.clock().UTC().Format(timestampRFC5424))
	line.WriteByte(' ')
	line.WriteString(orNil(truncate(c.Hostname, maxHostnameLen)))
	line.WriteByte(' ')
	line.WriteString(orNil(truncate(c.AppName, maxAppNameLen)))
	line.WriteByte(' ')
	line.WriteString(orNil(truncate(c.ProcID, maxProcIDLen)))
	line.WriteByte(' ')
	line.WriteString(orNil(truncate(msgID, maxMsgIDLen)))
	line.WriteByte(' ')
	if len(elements) == 0 {
		line.WriteString(NILVALUE)
	} else {
		for _, element := range elements {
			line.WriteString(element.String())
		}
	}
	if message != "" {
		line.WriteString(" " + message)
	}
	return line.String()
}

// Substitutes NILVALUE for absent fields
func orNil(value string) string {
	if value == "" {
		return NILVALUE
	}
	return value
}

// Truncates value to at most max bytes
func truncate(value string, max int) string {
	if len(value) > max {
		return value[:max]
	}
	return value
}
