package state

import (
	"testing"
	"time"

	"github.com/marden/nodeglass/internal/health"
)

func TestStore_ZeroValueReady(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.HasHealth {
		t.Fatal("HasHealth = true before first update, want false")
	}
	if !snap.LastChecked.IsZero() {
		t.Fatalf("LastChecked = %v before first update, want zero", snap.LastChecked)
	}
}

func TestStore_UpdateAndSnapshot(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update(health.Status{State: health.ProcessRunning, Pid: 123, PidPath: "/run/bitcoind.pid"})

	snap := s.Snapshot()
	if !snap.HasHealth {
		t.Fatal("HasHealth = false after update, want true")
	}
	if snap.Health.State != health.ProcessRunning || snap.Health.Pid != 123 {
		t.Fatalf("Health = %#v, want running pid=123", snap.Health)
	}
	if snap.LastChecked.Before(before) {
		t.Fatalf("LastChecked = %v, want >= %v", snap.LastChecked, before)
	}
}

func TestStore_UpdateReplacesPreviousStatus(t *testing.T) {
	var s Store

	s.Update(health.Status{State: health.ProcessRunning, Pid: 7})
	s.Update(health.Status{State: health.PidFileMissing, PidPath: "/tmp/gone.pid"})

	snap := s.Snapshot()
	if snap.Health.State != health.PidFileMissing {
		t.Fatalf("State = %v, want PidFileMissing", snap.Health.State)
	}
	if snap.Health.Pid != 0 {
		t.Fatalf("Pid = %d, want 0 after full replacement", snap.Health.Pid)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	var s Store

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			s.Update(health.Status{State: health.ProcessRunning, Pid: i})
		}
	}()
	for i := 0; i < 1000; i++ {
		_ = s.Snapshot()
	}
	<-done
}
