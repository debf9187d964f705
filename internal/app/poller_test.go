package app

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/marden/nodeglass/internal/health"
	"github.com/marden/nodeglass/internal/state"
)

func TestStartPoller_PopulatesStore(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "bitcoind.pid")
	pid := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(pidFile, []byte(pid+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	target := &health.Target{}
	target.Set(pidFile, true)

	store := &state.Store{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	StartPoller(ctx, store, target, 10*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snap := store.Snapshot()
		if snap.HasHealth {
			if snap.Health.State != health.ProcessRunning {
				t.Fatalf("State = %v, want ProcessRunning", snap.Health.State)
			}
			if snap.Health.Pid != os.Getpid() {
				t.Fatalf("Pid = %d, want %d", snap.Health.Pid, os.Getpid())
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("poller never populated the store")
}

func TestStartPoller_SeesTargetChanges(t *testing.T) {
	target := &health.Target{}
	target.Set("", false)

	store := &state.Store{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	StartPoller(ctx, store, target, 10*time.Millisecond)

	waitForState := func(want health.State) {
		t.Helper()
		deadline := time.Now().Add(2 * time.Second)
		for time.Now().Before(deadline) {
			snap := store.Snapshot()
			if snap.HasHealth && snap.Health.State == want {
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
		t.Fatalf("store never reached state %v", want)
	}

	waitForState(health.NoPidFileConfigured)

	target.Set(filepath.Join(t.TempDir(), "absent.pid"), true)
	waitForState(health.PidFileMissing)
}
