// Discovers process-wide default message fields (hostname, app name, pid)
package hostinfo

import (
	"os"
	"path/filepath"
	"strconv"
)

// Default field values resolved from the running process
type Info struct {
	Hostname string
	AppName  string
	ProcID   string
}

// Resolves default fields once per call - fields that cannot be discovered
// are left empty and render as absent downstream
func Discover() (info Info) {
	hostname, err := os.Hostname()
	if err == nil {
		info.Hostname = hostname
	}

	executable, err := os.Executable()
	if err == nil {
		info.AppName = filepath.Base(executable)
	}

	info.ProcID = strconv.Itoa(os.Getpid())
	return
}
