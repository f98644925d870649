package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	StudygenAPIKey string

	// Model capability services
	TaggerURL     string
	SummarizerURL string
	QuestionURL   string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Artifact sizing defaults
	TopBullets         int
	KeywordsPerSection int
	EvidenceMaxWords   int
	MaxFlashcards      int
	MaxMCQs            int

	// Job state
	JobTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		StudygenAPIKey: os.Getenv("STUDYGEN_API_KEY"),

		TaggerURL:     envOr("TAGGER_URL", "http://localhost:8070"),
		SummarizerURL: envOr("SUMMARIZER_URL", "http://localhost:8071"),
		QuestionURL:   envOr("QUESTION_URL", "http://localhost:8072"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		TopBullets:         envInt("TOP_BULLETS", 7),
		KeywordsPerSection: envInt("KEYWORDS_PER_SECTION", 8),
		EvidenceMaxWords:   envInt("EVIDENCE_MAX_WORDS", 25),
		MaxFlashcards:      envInt("MAX_FLASHCARDS", 8),
		MaxMCQs:            envInt("MAX_MCQS", 8),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.TopBullets < 5 || cfg.TopBullets > 7 {
		cfg.TopBullets = 7
	}
	if cfg.KeywordsPerSection <= 0 {
		cfg.KeywordsPerSection = 8
	}
	if cfg.EvidenceMaxWords <= 0 {
		cfg.EvidenceMaxWords = 25
	}
	if cfg.MaxFlashcards <= 0 {
		cfg.MaxFlashcards = 8
	}
	if cfg.MaxMCQs <= 0 {
		cfg.MaxMCQs = 8
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.StudygenAPIKey == "" {
		return fmt.Errorf("STUDYGEN_API_KEY is required")
	}
	if c.TaggerURL == "" {
		return fmt.Errorf("TAGGER_URL is required")
	}
	if c.SummarizerURL == "" {
		return fmt.Errorf("SUMMARIZER_URL is required")
	}
	if c.QuestionURL == "" {
		return fmt.Errorf("QUESTION_URL is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
