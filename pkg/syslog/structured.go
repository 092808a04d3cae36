// Structured data model for RFC 5424 §6.3
package syslog

import (
	"fmt"
	"strings"
)

// SD-IDs registered by RFC 5424 §9.2 - usable without an enterprise suffix
var registeredSDIDs = map[string]bool{
	"timeQuality": true,
	"origin":      true,
	"meta":        true,
}

// Single name/value parameter of an SD element
type SDParam struct {
	Name  string
	Value string
}

// Renders the parameter as PARAM-NAME="escaped-PARAM-VALUE"
func (p SDParam) String() string {
	return p.Name + `="` + escapeParamValue(p.Value) + `"`
}

// Backslash-escapes the characters RFC 5424 §6.3.3 requires: '\', '"', ']'
func escapeParamValue(value string) string {
	var escaped strings.Builder
	for _, c := range value {
		switch c {
		case '\\', '"', ']':
			escaped.WriteByte('\\')
		}
		escaped.WriteRune(c)
	}
	return escaped.String()
}

// Structured data element: an SD-ID plus ordered parameters
// Insertion order is preserved and duplicate names are emitted as-is
type SDElement struct {
	ID     string
	params []SDParam
}

// SDElement constructor - validates the SD-ID against RFC 5424 §6.3.2
func NewSDElement(id string) (element SDElement, err error) {
	err = validateSDID(id)
	if err != nil {
		return
	}
	element = SDElement{ID: id}
	return
}

// Appends a parameter after validating its name
func (e *SDElement) AddParam(name string, value string) (err error) {
	err = validateSDName("PARAM-NAME", name)
	if err != nil {
		return
	}
	e.params = append(e.params, SDParam{Name: name, Value: value})
	return
}

// Parameters in insertion order
func (e *SDElement) Params() []SDParam {
	return e.params
}

// Renders the element as [SD-ID name="value" ...]
func (e SDElement) String() string {
	var rendered strings.Builder
	rendered.WriteByte('[')
	rendered.WriteString(e.ID)
	for _, param := range e.params {
		rendered.WriteByte(' ')
		rendered.WriteString(param.String())
	}
	rendered.WriteByte(']')
	return rendered.String()
}

// SD-NAME = 1*32PRINTUSASCII except '=', SP, ']', '"' (RFC 5424 §6.3.3)
func validateSDName(kind string, name string) (err error) {
	if name == "" {
		err = fmt.Errorf("%s must not be empty", kind)
		return
	}
	if len(name) > maxSDNameLen {
		err = fmt.Errorf("%s must not exceed %d characters: %s", kind, maxSDNameLen, name)
		return
	}
	for _, c := range name {
		switch {
		case c == '=' || c == ']' || c == ' ' || c == '"':
			err = fmt.Errorf("%s must not contain %q: %s", kind, c, name)
			return
		case c < 33 || c > 126:
			err = fmt.Errorf("%s must only contain printable ASCII characters: %s", kind, name)
			return
		}
	}
	return
}

// SD-ID follows the SD-NAME charset and must carry an IANA enterprise
// suffix ('name@enterpriseNumber') unless it is a registered ID
func validateSDID(id string) (err error) {
	err = validateSDName("SD-ID", id)
	if err != nil {
		return
	}
	if !strings.ContainsRune(id, '@') && !registeredSDIDs[id] {
		err = fmt.Errorf("SD-ID must contain '@' or be one of the registered IDs: %s", id)
	}
	return
}
