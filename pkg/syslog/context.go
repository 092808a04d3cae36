package syslog

import (
	"time"

	"gosyslog/internal/hostinfo"
)

// Shared default fields for constructing syslog messages
// Empty string fields render as absent (NILVALUE for RFC 5424)
type Context struct {
	Facility Facility
	Hostname string
	AppName  string
	ProcID   string

	// Timestamp source - defaults to time.Now, substitutable for tests
	now func() time.Time
}

// Context constructor with system default values
func NewContext() (context *Context) {
	info := hostinfo.Discover()
	context = &Context{
		Facility: User,
		Hostname: info.Hostname,
		AppName:  info.AppName,
		ProcID:   info.ProcID,
	}
	return
}

// Context constructor with all fields blank
func EmptyContext() (context *Context) {
	context = &Context{
		Facility: User,
	}
	return
}

// Replaces the timestamp source used at format time
func (c *Context) SetClock(now func() time.Time) {
	c.now = now
}

// Current time from the configured clock
func (c *Context) clock() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}
