package types

import "time"

// Provenance indicates which generation source produced a result.
type Provenance string

const (
	// ProvenanceLLM marks output produced by the primary AI-backed source.
	ProvenanceLLM Provenance = "llm"
	// ProvenanceFallback marks output produced by the deterministic fallback.
	ProvenanceFallback Provenance = "fallback"
)

// IssueKind classifies a quality issue found during repair or reconciliation.
type IssueKind string

const (
	IssueDuplicate      IssueKind = "duplicate"
	IssueBannedPhrase   IssueKind = "banned-phrase"
	IssueDanglingBullet IssueKind = "dangling-bullet"
	IssueStructural     IssueKind = "structural"
	IssueContradiction  IssueKind = "contradiction"
)

// QualityIssue is one entry in the append-only audit trail produced by the
// quality gate and consistency validator. It describes what was found and
// whether it was auto-fixed; it never carries document mutations itself.
type QualityIssue struct {
	Kind   IssueKind `json:"kind"`
	Path   string    `json:"path"`
	Detail string    `json:"detail"`
	Fixed  bool      `json:"fixed"`
}

// GenerateResult is the gateway's complete answer: the tailored document plus
// provenance, before/after scores, blockers, and the quality audit trail.
// The gateway never returns an error to the caller, so a degraded result is
// only distinguishable through Provenance and Reason.
type GenerateResult struct {
	RequestID string            `json:"request_id"`
	Document  *TailoredDocument `json:"document"`

	Provenance Provenance `json:"provenance"`
	Reason     string     `json:"reason,omitempty"`

	ScoreBefore *ScoreBreakdown `json:"score_before"`
	ScoreAfter  *ScoreBreakdown `json:"score_after"`
	Blockers    []Blocker       `json:"blockers,omitempty"`
	Issues      []QualityIssue  `json:"issues,omitempty"`
	BoostLog    []string        `json:"boost_log,omitempty"`

	Duration time.Duration `json:"duration_ns"`
}

// HealthStatus is a read-only snapshot of the gateway's circuit and
// concurrency state for operational monitoring.
type HealthStatus struct {
	CircuitOpen    bool       `json:"circuit_open"`
	ActiveRequests int        `json:"active_requests"`
	RecentFailures int        `json:"recent_failures"`
	OpenedAt       *time.Time `json:"opened_at,omitempty"`
}
