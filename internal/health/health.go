package health

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/marden/nodeglass/internal/catalog"
	"github.com/marden/nodeglass/internal/conf"
)

// State classifies the outcome of one liveness check.
type State int

const (
	// NoPidFileConfigured means the configuration names no pid file.
	NoPidFileConfigured State = iota
	// PidFileMissing means the configured path does not exist.
	PidFileMissing
	// PidFileUnreadable means the file could not be read or did not
	// contain a process id.
	PidFileUnreadable
	// ProcessNotRunning means no process exists with the recorded pid.
	ProcessNotRunning
	// ProcessRunning means a process with the recorded pid exists.
	ProcessRunning
)

// String returns a short operator-facing description.
func (s State) String() string {
	switch s {
	case NoPidFileConfigured:
		return "no pid file configured"
	case PidFileMissing:
		return "pid file missing"
	case PidFileUnreadable:
		return "pid file unreadable"
	case ProcessNotRunning:
		return "node not running"
	case ProcessRunning:
		return "node running"
	default:
		return "unknown"
	}
}

// Status is the result of one check, derived fresh each time. Pid is set
// for ProcessRunning and ProcessNotRunning; PidPath for every state that
// got as far as resolving a path. A Status is best-effort by design: a pid
// can be recycled between reading the file and probing the process, so
// callers treat it as advisory and re-check on demand.
type Status struct {
	State   State
	Pid     int
	PidPath string
}

// Running reports whether the node process was seen alive.
func (s Status) Running() bool {
	return s.State == ProcessRunning
}

// Check resolves the pid-file path from the model and probes the process it
// names. See CheckPath for the path-level semantics.
func Check(m *conf.Model) Status {
	path, ok := Resolve(m)
	if !ok {
		return Status{State: NoPidFileConfigured}
	}
	return CheckPath(path)
}

// CheckPath maps pid-file state to a Status: missing file, unreadable or
// non-numeric content, dead pid, or a live process.
func CheckPath(path string) Status {
	st := Status{PidPath: path}

	if _, err := os.Stat(path); err != nil {
		st.State = PidFileMissing
		return st
	}

	data, err := os.ReadFile(path)
	if err != nil {
		st.State = PidFileUnreadable
		return st
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		st.State = PidFileUnreadable
		return st
	}

	st.Pid = pid
	if pidAlive(pid) {
		st.State = ProcessRunning
	} else {
		st.State = ProcessNotRunning
	}
	return st
}

// Resolve extracts the configured pid-file path from the model's default
// section. A relative path is resolved against datadir when that is set,
// matching how bitcoind places its own pid file. ok is false when no pid
// file is configured (including the empty-document case).
func Resolve(m *conf.Model) (path string, ok bool) {
	v, ok, err := m.Get(conf.DefaultSection, catalog.PidFileKey)
	if err != nil || !ok || strings.TrimSpace(v.Str) == "" {
		return "", false
	}
	path = strings.TrimSpace(v.Str)

	if !filepath.IsAbs(path) {
		if d, dok, derr := m.Get(conf.DefaultSection, "datadir"); derr == nil && dok && d.Str != "" {
			path = filepath.Join(d.Str, path)
		}
	}
	return path, true
}

// Target is a small thread-safe holder for the resolved pid-file path,
// shared between the UI (which re-resolves after loads and saves) and the
// background poller.
type Target struct {
	mu         sync.RWMutex
	path       string
	configured bool
}

// Set records the current pid-file path, or marks none configured.
func (t *Target) Set(path string, configured bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.path = path
	t.configured = configured
}

// SetFromModel re-resolves the path from the model.
func (t *Target) SetFromModel(m *conf.Model) {
	path, ok := Resolve(m)
	t.Set(path, ok)
}

// Check probes the currently recorded target.
func (t *Target) Check() Status {
	t.mu.RLock()
	path, configured := t.path, t.configured
	t.mu.RUnlock()

	if !configured {
		return Status{State: NoPidFileConfigured}
	}
	return CheckPath(path)
}
