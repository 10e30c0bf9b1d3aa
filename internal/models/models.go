package models

import (
	"time"

	"gorm.io/gorm"
)

// Enumerated preference values. The HTTP layer sends these as plain strings;
// the validator guarantees membership before a JobRequest is built.
type Workplace string

const (
	WorkplaceRemote Workplace = "Remote"
	WorkplaceOnSite Workplace = "On-site"
	WorkplaceHybrid Workplace = "Hybrid"
)

type ExperienceLevel string

const (
	ExpEntry  ExperienceLevel = "Entry Level"
	ExpMid    ExperienceLevel = "Mid Level"
	ExpSenior ExperienceLevel = "Senior Level"
	ExpExpert ExperienceLevel = "Expert"
)

type StylePreference string

const (
	StyleLinkedIn StylePreference = "LinkedIn"
	StyleIndeed   StylePreference = "Indeed"
	StyleRozee    StylePreference = "Rozee.pk"
	StyleLLM      StylePreference = "LLM-Generated"
)

type LengthPreference string

const (
	LengthConcise  LengthPreference = "Concise"
	LengthStandard LengthPreference = "Standard"
	LengthDetailed LengthPreference = "Detailed"
)

// JobRequest is the validated, immutable form of a submission. It is built
// exactly once per request by the validator and never mutated afterwards.
type JobRequest struct {
	JobTitle    string
	CompanyName string
	Location    string
	Workplace   Workplace

	// Trimmed, non-empty, de-duplicated case-insensitively (first casing wins).
	Skills []string

	MinExperienceYears float64
	ExpLevelCategory   ExperienceLevel

	// Nil when the caller left the bound unspecified.
	MinSalary *float64
	MaxSalary *float64

	Deadline time.Time

	Notes                string
	QualificationDetails string
	BenefitsDetails      string

	StylePreference        StylePreference
	OutputLengthPreference LengthPreference
}

// GenerationResult is the output of one successful pipeline run.
type GenerationResult struct {
	// RawText is the backend output, untouched.
	RawText string

	// EmphasizedHTML is RawText with matched terms wrapped in <b> markers
	// and everything else HTML-escaped.
	EmphasizedHTML string

	// EmphasizedPlain is always identical to RawText. Kept as its own field
	// so callers get a guaranteed copy-paste-safe rendering.
	EmphasizedPlain string
}

// GenerationRecord is the audit row written after each pipeline run.
// It deliberately carries no generated text, only request metadata and the
// outcome, so nothing a candidate reads is ever persisted.
type GenerationRecord struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RequestID   string `gorm:"index" json:"request_id"`
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
	Style       string `json:"style"`
	Length      string `json:"length"`

	Status      string `json:"status"` // "success" or "error"
	FailureKind string `json:"failure_kind,omitempty"`

	DurationMs  int64 `json:"duration_ms"`
	PromptChars int   `json:"prompt_chars"`
	OutputChars int   `json:"output_chars"`
}
