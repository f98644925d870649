package pipeline

import (
	"testing"
	"time"

	"github.com/dgallion1/studygen/internal/summarize"
)

func TestContentHashHex(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "hello world",
			data: []byte("hello world"),
			want: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
		{
			name: "empty",
			data: []byte{},
			want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentHashHex(tt.data); got != tt.want {
				t.Errorf("ContentHashHex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContentHashHex_DistinctInputs(t *testing.T) {
	a := ContentHashHex([]byte("lecture one"))
	b := ContentHashHex([]byte("lecture two"))
	if a == b {
		t.Error("different inputs must hash differently")
	}
	if a != ContentHashHex([]byte("lecture one")) {
		t.Error("same input must hash identically")
	}
}

func TestJobStore_PutGetCleanup(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "j1", Status: StatusQueued, UpdatedAt: time.Now()}
	store.Put(job)

	if got := store.Get("j1"); got != job {
		t.Fatal("expected the stored job back")
	}
	if got := store.Get("missing"); got != nil {
		t.Errorf("expected nil for unknown id, got %+v", got)
	}

	store.Cleanup()
	if store.Get("j1") == nil {
		t.Error("fresh job must survive cleanup")
	}

	stale := &Job{ID: "j2", UpdatedAt: time.Now().Add(-2 * time.Hour)}
	store.Put(stale)
	store.Cleanup()
	if store.Get("j2") != nil {
		t.Error("expired job must be evicted")
	}
}

func TestJob_StatusTransitionsAdvanceUpdatedAt(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusQueued}

	job.SetStatus(StatusParsing, "parsing")
	first := job.UpdatedAt
	if job.Status != StatusParsing || job.Phase != "parsing" {
		t.Errorf("got status %q phase %q", job.Status, job.Phase)
	}

	time.Sleep(time.Millisecond)
	job.SetStatus(StatusCompleted, "done")
	if !job.UpdatedAt.After(first) {
		t.Error("UpdatedAt must advance on each transition")
	}
}

func TestJob_Snapshot(t *testing.T) {
	job := &Job{ID: "j1", DocID: "d1", Status: StatusSummarizing, Filename: "notes.txt"}
	job.SetSummaryProgress(3, 3, 7, 12)

	snap := job.Snapshot()
	if snap.ID != "j1" || snap.DocID != "d1" || snap.Status != StatusSummarizing {
		t.Errorf("snapshot identity fields wrong: %+v", snap)
	}
	if snap.Progress.Sections != 3 || snap.Progress.GlossaryEntries != 12 {
		t.Errorf("snapshot progress wrong: %+v", snap.Progress)
	}
	if snap.Progress.Errors == nil {
		t.Error("snapshot errors must serialize as [], not null")
	}

	job.AddError("summarizer unavailable")
	snap = job.Snapshot()
	if len(snap.Progress.Errors) != 1 || snap.Progress.Errors[0] != "summarizer unavailable" {
		t.Errorf("expected recorded error in snapshot, got %v", snap.Progress.Errors)
	}
}

func TestJob_InputAndResult(t *testing.T) {
	job := &Job{ID: "j1"}

	if r := job.Result(); r != nil {
		t.Errorf("in-flight job must have nil result, got %+v", r)
	}

	job.SetInput([]byte("file bytes"), "pasted text")
	data, raw := job.Input()
	if string(data) != "file bytes" || raw != "pasted text" {
		t.Errorf("Input() = (%q, %q)", data, raw)
	}

	want := &StudyResult{Summary: &summarize.Result{QuickBullets: []string{"a bullet."}}}
	job.SetResult(want)
	if got := job.Result(); got != want {
		t.Error("expected the stored result back")
	}
}
