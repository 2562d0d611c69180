package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestProfilerCaptureLifecycle(t *testing.T) {
	dir := t.TempDir()
	p, err := NewProfiler(dir)
	if err != nil {
		t.Fatalf("NewProfiler: %v", err)
	}
	p.captureDuration = 20 * time.Millisecond

	if p.IsProfiling() {
		t.Fatal("Expected idle profiler before the first capture")
	}
	if err := p.CaptureProfile("test"); err != nil {
		t.Fatalf("CaptureProfile: %v", err)
	}
	if !p.IsProfiling() {
		t.Error("Expected IsProfiling while a capture runs")
	}
	if err := p.CaptureProfile("again"); !errors.Is(err, errProfileCooldown) {
		t.Errorf("Expected errProfileCooldown, got %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for p.IsProfiling() {
		if time.Now().After(deadline) {
			t.Fatal("capture did not finish")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cpu, _ := filepath.Glob(filepath.Join(dir, "*.cpu.prof"))
	traces, _ := filepath.Glob(filepath.Join(dir, "*.trace"))
	if len(cpu) != 1 || len(traces) != 1 {
		t.Fatalf("Expected one profile and one trace, got %v %v", cpu, traces)
	}
	if info, err := os.Stat(traces[0]); err != nil || info.Size() == 0 {
		t.Errorf("Expected a non-empty trace file, got %v (err %v)", info, err)
	}
}

func TestProfilerBusyAfterCooldown(t *testing.T) {
	p, err := NewProfiler(t.TempDir())
	if err != nil {
		t.Fatalf("NewProfiler: %v", err)
	}
	p.isProfiling = true
	if err := p.CaptureProfile("busy"); !errors.Is(err, errProfileBusy) {
		t.Errorf("Expected errProfileBusy, got %v", err)
	}
}
