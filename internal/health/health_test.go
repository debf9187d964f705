package health

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/marden/nodeglass/internal/catalog"
	"github.com/marden/nodeglass/internal/conf"
)

func modelFrom(t *testing.T, text string) *conf.Model {
	t.Helper()
	doc, _ := conf.Parse(text)
	return conf.NewModel(doc, catalog.Default())
}

func writePidFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bitcoind.pid")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write pid file: %v", err)
	}
	return path
}

func TestCheckNoPidConfigured(t *testing.T) {
	st := Check(modelFrom(t, "server=1\n"))
	if st.State != NoPidFileConfigured {
		t.Fatalf("state = %v, want NoPidFileConfigured", st.State)
	}
	if st.Running() {
		t.Fatal("Running() = true")
	}
}

func TestCheckPidFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.pid")
	st := Check(modelFrom(t, "pid="+path+"\n"))
	if st.State != PidFileMissing {
		t.Fatalf("state = %v, want PidFileMissing", st.State)
	}
	if st.PidPath != path {
		t.Fatalf("PidPath = %q, want %q", st.PidPath, path)
	}
}

func TestCheckPidFileUnreadableContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not a number", "not_a_number\n"},
		{"empty", ""},
		{"zero", "0\n"},
		{"negative", "-5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePidFile(t, tt.content)
			st := CheckPath(path)
			if st.State != PidFileUnreadable {
				t.Fatalf("state = %v, want PidFileUnreadable", st.State)
			}
		})
	}
}

func TestCheckProcessNotRunning(t *testing.T) {
	// Pid far beyond any default pid_max allocation.
	path := writePidFile(t, "999999999\n")
	st := CheckPath(path)
	if st.State != ProcessNotRunning {
		t.Fatalf("state = %v, want ProcessNotRunning", st.State)
	}
	if st.Pid != 999999999 {
		t.Fatalf("Pid = %d", st.Pid)
	}
}

func TestCheckProcessRunning(t *testing.T) {
	// Our own pid is certainly alive.
	path := writePidFile(t, fmt.Sprintf("%d\n", os.Getpid()))
	st := CheckPath(path)
	if st.State != ProcessRunning {
		t.Fatalf("state = %v, want ProcessRunning", st.State)
	}
	if st.Pid != os.Getpid() {
		t.Fatalf("Pid = %d, want %d", st.Pid, os.Getpid())
	}
	if !st.Running() {
		t.Fatal("Running() = false")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOk bool
	}{
		{"absolute path", "pid=/run/bitcoind.pid\n", "/run/bitcoind.pid", true},
		{"relative joined with datadir", "datadir=/mnt/btc\npid=bitcoind.pid\n", "/mnt/btc/bitcoind.pid", true},
		{"relative without datadir", "pid=bitcoind.pid\n", "bitcoind.pid", true},
		{"not configured", "server=1\n", "", false},
		{"blank value", "pid=\n", "", false},
		{"empty document", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := Resolve(modelFrom(t, tt.text))
			if ok != tt.wantOk || path != tt.want {
				t.Fatalf("Resolve = %q, %v, want %q, %v", path, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestTargetCheck(t *testing.T) {
	var target Target

	// Zero value: nothing configured.
	if st := target.Check(); st.State != NoPidFileConfigured {
		t.Fatalf("zero target state = %v", st.State)
	}

	path := writePidFile(t, fmt.Sprintf("%d", os.Getpid()))
	target.Set(path, true)
	if st := target.Check(); st.State != ProcessRunning {
		t.Fatalf("state after Set = %v, want ProcessRunning", st.State)
	}

	target.Set("", false)
	if st := target.Check(); st.State != NoPidFileConfigured {
		t.Fatalf("state after unset = %v", st.State)
	}
}

func TestTargetSetFromModel(t *testing.T) {
	var target Target

	path := writePidFile(t, fmt.Sprintf("%d", os.Getpid()))
	target.SetFromModel(modelFrom(t, "pid="+path+"\n"))
	if st := target.Check(); st.State != ProcessRunning {
		t.Fatalf("state = %v, want ProcessRunning", st.State)
	}

	target.SetFromModel(modelFrom(t, "server=1\n"))
	if st := target.Check(); st.State != NoPidFileConfigured {
		t.Fatalf("state after re-resolve = %v", st.State)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{NoPidFileConfigured, "no pid file configured"},
		{PidFileMissing, "pid file missing"},
		{PidFileUnreadable, "pid file unreadable"},
		{ProcessNotRunning, "node not running"},
		{ProcessRunning, "node running"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Fatalf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
