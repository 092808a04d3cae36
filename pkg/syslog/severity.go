package syslog

import "fmt"

// Syslog message severity as defined in RFC 5424 §6.2.1
// Encodes to the low 3 bits of the PRI value
type Severity int

const (
	Emergency Severity = 0 // system is unusable
	Alert     Severity = 1 // action must be taken immediately
	Critical  Severity = 2 // critical conditions
	Error     Severity = 3 // error conditions
	Warning   Severity = 4 // warning conditions
	Notice    Severity = 5 // normal but significant condition
	Info      Severity = 6 // informational messages
	Debug     Severity = 7 // debug-level messages
)

// Keyword names as used by syslog daemon configuration
var severityToName = map[Severity]string{
	Emergency: "emerg",
	Alert:     "alert",
	Critical:  "crit",
	Error:     "err",
	Warning:   "warning",
	Notice:    "notice",
	Info:      "info",
	Debug:     "debug",
}

// Populated from severityToName at startup
var nameToSeverity = make(map[string]Severity)

func init() {
	for severity, name := range severityToName {
		nameToSeverity[name] = severity
	}
}

// Numeric code for the PRI calculation
func (s Severity) Code() int {
	return int(s)
}

// Whether the severity is one of the eight defined levels
func (s Severity) Valid() bool {
	return s >= Emergency && s <= Debug
}

// Keyword name of the severity (or decimal fallback for invalid values)
func (s Severity) String() (name string) {
	name, exists := severityToName[s]
	if !exists {
		name = fmt.Sprintf("severity(%d)", int(s))
	}
	return
}

// Convert severity keyword name to Severity
func ParseSeverity(name string) (severity Severity, err error) {
	severity, exists := nameToSeverity[name]
	if !exists {
		err = fmt.Errorf("unknown severity name: %s", name)
	}
	return
}
