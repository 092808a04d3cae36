package syslog

const (
	// NILVALUE denotes an intentionally absent RFC 5424 field
	NILVALUE string = "-"

	// RFC 5424 field length caps (§6.2)
	// Overlong values are truncated before rendering - policy is uniform
	// across all transports
	maxHostnameLen int = 255
	maxAppNameLen  int = 48
	maxProcIDLen   int = 128
	maxMsgIDLen    int = 32

	// SD-NAME and SD-ID share the same length cap (§6.3.3)
	maxSDNameLen int = 32

	// Timestamp layouts
	// RFC 3164 §4.1.2: 'Mmm dd hh:mm:ss' with a space-padded day
	timestampRFC3164 string = "Jan _2 15:04:05"
	// RFC 5424 §6.2.3: RFC 3339 with microsecond precision, UTC
	timestampRFC5424 string = "2006-01-02T15:04:05.000000Z07:00"
)
