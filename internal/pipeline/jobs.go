package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/studygen/internal/quiz"
	"github.com/dgallion1/studygen/internal/summarize"
)

// JobStatus represents the state of a study-material run.
type JobStatus string

const (
	StatusQueued      JobStatus = "queued"
	StatusParsing     JobStatus = "parsing"
	StatusSummarizing JobStatus = "summarizing"
	StatusQuizzing    JobStatus = "quizzing"
	StatusCompleted   JobStatus = "completed"
	StatusFailed      JobStatus = "failed"
	StatusPartial     JobStatus = "partial"
)

// Options carries per-request artifact sizing overrides. Zero values fall
// back to the service defaults.
type Options struct {
	Bullets       int `json:"bullets,omitempty"`
	MaxFlashcards int `json:"max_flashcards,omitempty"`
	MaxMCQs       int `json:"max_mcqs,omitempty"`
}

// StudyResult bundles every artifact of one run.
type StudyResult struct {
	Summary    *summarize.Result `json:"summary"`
	Flashcards []quiz.Flashcard  `json:"flashcards"`
	MCQs       []quiz.MCQItem    `json:"mcqs"`
}

// Job tracks the state of a single study-material run.
type Job struct {
	mu sync.Mutex

	ID    string `json:"job_id"`
	DocID string `json:"doc_id"`

	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`
	Title    string    `json:"title"`
	Options  Options   `json:"options"`

	Progress Progress `json:"progress"`

	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	rawText  string
	result   *StudyResult
	errors   []string
}

// Progress tracks artifact counts as the run advances.
type Progress struct {
	Sections        int      `json:"sections"`
	StudyNotes      int      `json:"study_notes"`
	QuickBullets    int      `json:"quick_bullets"`
	GlossaryEntries int      `json:"glossary_entries"`
	Flashcards      int      `json:"flashcards"`
	MCQs            int      `json:"mcqs"`
	Errors          []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
// Runs live only for the session; there is no durable store.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetContentHash records the sha256 of the parsed text.
func (j *Job) SetContentHash(hash string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.ContentHash = hash
	j.UpdatedAt = time.Now()
}

// SetSummaryProgress records section and summary artifact counts.
func (j *Job) SetSummaryProgress(sections, notes, bullets, glossary int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.Sections = sections
	j.Progress.StudyNotes = notes
	j.Progress.QuickBullets = bullets
	j.Progress.GlossaryEntries = glossary
	j.UpdatedAt = time.Now()
}

// SetQuizProgress records quiz artifact counts.
func (j *Job) SetQuizProgress(flashcards, mcqs int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.Flashcards = flashcards
	j.Progress.MCQs = mcqs
	j.UpdatedAt = time.Now()
}

// SetInput sets the raw upload bytes or pasted text for processing.
func (j *Job) SetInput(fileData []byte, rawText string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = fileData
	j.rawText = rawText
}

// Input returns the raw upload bytes and pasted text.
func (j *Job) Input() ([]byte, string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData, j.rawText
}

// SetResult stores the run's artifacts.
func (j *Job) SetResult(r *StudyResult) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = r
	j.UpdatedAt = time.Now()
}

// Result returns the run's artifacts, nil while the run is in flight.
func (j *Job) Result() *StudyResult {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string    `json:"job_id"`
	DocID    string    `json:"doc_id"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`
	Title    string    `json:"title"`
	Progress Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:       j.ID,
		DocID:    j.DocID,
		Status:   j.Status,
		Phase:    j.Phase,
		Filename: j.Filename,
		Title:    j.Title,
		Progress: Progress{
			Sections:        j.Progress.Sections,
			StudyNotes:      j.Progress.StudyNotes,
			QuickBullets:    j.Progress.QuickBullets,
			GlossaryEntries: j.Progress.GlossaryEntries,
			Flashcards:      j.Progress.Flashcards,
			MCQs:            j.Progress.MCQs,
			Errors:          errs,
		},
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
