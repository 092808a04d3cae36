package hostinfo

import (
	"os"
	"strconv"
	"testing"
)

func TestDiscover(t *testing.T) {
	info := Discover()

	hostname, err := os.Hostname()
	if err == nil && info.Hostname != hostname {
		t.Errorf("hostname: expected %q, got %q", hostname, info.Hostname)
	}

	if info.ProcID != strconv.Itoa(os.Getpid()) {
		t.Errorf("procid: expected %d, got %q", os.Getpid(), info.ProcID)
	}

	if info.AppName == "" {
		t.Errorf("app name: expected test binary name, got empty")
	}
}
