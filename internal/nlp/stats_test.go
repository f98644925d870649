package nlp

import (
	"testing"
	"time"
)

func TestModelStatsSnapshotPercentiles(t *testing.T) {
	stats := NewModelStats(time.Hour)
	stats.Record("/summarize", 100)
	stats.Record("/summarize", 200)
	stats.Record("/summarize", 300)
	stats.Record("/summarize", 400)
	stats.Record("/summarize", 500)

	snap, ok := stats.Snapshot()["/summarize"]
	if !ok {
		t.Fatal("expected a snapshot for the recorded endpoint")
	}
	if snap.Count != 5 {
		t.Fatalf("expected count=5, got %d", snap.Count)
	}
	if snap.MinMs != 100 {
		t.Fatalf("expected min=100, got %d", snap.MinMs)
	}
	if snap.MaxMs != 500 {
		t.Fatalf("expected max=500, got %d", snap.MaxMs)
	}
	if snap.AvgMs != 300 {
		t.Fatalf("expected avg=300, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 300 {
		t.Fatalf("expected p50=300, got %f", snap.P50Ms)
	}
	if snap.P95Ms != 480 {
		t.Fatalf("expected p95=480, got %f", snap.P95Ms)
	}
	if snap.P99Ms != 496 {
		t.Fatalf("expected p99=496, got %f", snap.P99Ms)
	}
}

func TestModelStatsKeyedPerEndpoint(t *testing.T) {
	stats := NewModelStats(time.Hour)
	stats.Record("/annotate", 10)
	stats.Record("/generate-question", 1000)

	snaps := stats.Snapshot()
	if len(snaps) != 2 {
		t.Fatalf("expected 2 endpoints, got %d", len(snaps))
	}
	if snaps["/annotate"].MaxMs != 10 {
		t.Errorf("annotate max = %d, want 10", snaps["/annotate"].MaxMs)
	}
	if snaps["/generate-question"].MinMs != 1000 {
		t.Errorf("generate-question min = %d, want 1000", snaps["/generate-question"].MinMs)
	}
}

func TestModelStatsPrunesExpiredSamples(t *testing.T) {
	stats := NewModelStats(10 * time.Millisecond)
	stats.Record("/annotate", 100)
	time.Sleep(25 * time.Millisecond)

	if snap := stats.Snapshot()["/annotate"]; snap.Count != 0 {
		t.Fatalf("expected count=0 after prune, got %d", snap.Count)
	}

	stats.Record("/annotate", 200)
	snap := stats.Snapshot()["/annotate"]
	if snap.Count != 1 {
		t.Fatalf("expected count=1 for fresh sample, got %d", snap.Count)
	}
	if snap.MinMs != 200 || snap.MaxMs != 200 {
		t.Fatalf("expected min=max=200, got min=%d max=%d", snap.MinMs, snap.MaxMs)
	}
}

func TestModelStatsRecordClampsNegativeDuration(t *testing.T) {
	stats := NewModelStats(time.Hour)
	stats.Record("/summarize", -10)
	snap := stats.Snapshot()["/summarize"]
	if snap.Count != 1 {
		t.Fatalf("expected count=1, got %d", snap.Count)
	}
	if snap.MinMs != 0 || snap.MaxMs != 0 {
		t.Fatalf("expected clamped duration=0, got min=%d max=%d", snap.MinMs, snap.MaxMs)
	}
}
