package notifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-ps"
)

type fakeProcess struct {
	pid        int
	executable string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 0 }
func (p fakeProcess) Executable() string { return p.executable }

func writeLockfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jot-notifier.lock")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateTrayProcess(t *testing.T) {
	origFind := findProcessFunc
	t.Cleanup(func() { findProcessFunc = origFind })
	findProcessFunc = func(pid int) (ps.Process, error) {
		return fakeProcess{pid: pid, executable: "jot-tray"}, nil
	}

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", "8765|1234|s3cret", false},
		{"missing parts", "8765|1234", true},
		{"empty secret", "8765|1234| ", true},
		{"bad port", "notaport|1234|s3cret", true},
		{"port out of range", "70000|1234|s3cret", true},
		{"bad pid", "8765|abc|s3cret", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLockfile(t, tt.content)
			port, secret, err := validateTrayProcess(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateTrayProcess() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && (port != "8765" || secret != "s3cret") {
				t.Errorf("got port=%q secret=%q", port, secret)
			}
		})
	}
}

func TestValidateTrayProcessRejectsImpostor(t *testing.T) {
	origFind := findProcessFunc
	t.Cleanup(func() { findProcessFunc = origFind })
	findProcessFunc = func(pid int) (ps.Process, error) {
		return fakeProcess{pid: pid, executable: "definitely-not-the-tray"}, nil
	}

	path := writeLockfile(t, "8765|1234|s3cret")
	if _, _, err := validateTrayProcess(path); err == nil {
		t.Error("expected error for wrong executable name")
	}
}

func TestValidateTrayProcessMissingLockfile(t *testing.T) {
	if _, _, err := validateTrayProcess(filepath.Join(t.TempDir(), "nope.lock")); err == nil {
		t.Error("expected error for missing lockfile")
	}
}
