package syslog

import "fmt"

// Syslog message facility as defined in RFC 5424 §6.2.1
// Encodes to a 5-bit value, shifted left by 3 in the PRI calculation
type Facility int

const (
	Kern     Facility = 0  // kernel messages
	User     Facility = 1  // user-level messages
	Mail     Facility = 2  // mail system
	Daemon   Facility = 3  // system daemons
	Auth     Facility = 4  // security/authorization messages
	Syslog   Facility = 5  // messages generated internally by syslogd
	LPR      Facility = 6  // line printer subsystem
	News     Facility = 7  // network news subsystem
	UUCP     Facility = 8  // UUCP subsystem
	Cron     Facility = 9  // clock daemon
	AuthPriv Facility = 10 // security/authorization messages
	FTP      Facility = 11 // FTP daemon
	NTP      Facility = 12 // NTP subsystem
	Audit    Facility = 13 // log audit
	LogAlert Facility = 14 // log alert
	Clock    Facility = 15 // clock daemon (note 2)
	Local0   Facility = 16 // local use 0
	Local1   Facility = 17 // local use 1
	Local2   Facility = 18 // local use 2
	Local3   Facility = 19 // local use 3
	Local4   Facility = 20 // local use 4
	Local5   Facility = 21 // local use 5
	Local6   Facility = 22 // local use 6
	Local7   Facility = 23 // local use 7
)

// Keyword names as used by syslog daemon configuration
var facilityToName = map[Facility]string{
	Kern:     "kern",
	User:     "user",
	Mail:     "mail",
	Daemon:   "daemon",
	Auth:     "auth",
	Syslog:   "syslog",
	LPR:      "lpr",
	News:     "news",
	UUCP:     "uucp",
	Cron:     "cron",
	AuthPriv: "authpriv",
	FTP:      "ftp",
	NTP:      "ntp",
	Audit:    "audit",
	LogAlert: "alert",
	Clock:    "clock",
	Local0:   "local0",
	Local1:   "local1",
	Local2:   "local2",
	Local3:   "local3",
	Local4:   "local4",
	Local5:   "local5",
	Local6:   "local6",
	Local7:   "local7",
}

// Populated from facilityToName at startup
var nameToFacility = make(map[string]Facility)

func init() {
	for facility, name := range facilityToName {
		nameToFacility[name] = facility
	}
}

// Numeric code for the PRI calculation
func (f Facility) Code() int {
	return int(f)
}

// Whether the facility is one of the 24 defined facilities
func (f Facility) Valid() bool {
	return f >= Kern && f <= Local7
}

// Keyword name of the facility (or decimal fallback for invalid values)
func (f Facility) String() (name string) {
	name, exists := facilityToName[f]
	if !exists {
		name = fmt.Sprintf("facility(%d)", int(f))
	}
	return
}

// Convert facility keyword name to Facility
func ParseFacility(name string) (facility Facility, err error) {
	facility, exists := nameToFacility[name]
	if !exists {
		err = fmt.Errorf("unknown facility name: %s", name)
	}
	return
}

// PRI value as defined in RFC 5424 §6.2.1: facility*8 + severity
// Always in [0,191] for valid enum inputs
func Priority(facility Facility, severity Severity) int {
	return facility.Code()<<3 | severity.Code()
}
