package types

// Score category names. Stable public identifiers: blockers, diagnostics, and
// reports all key off these.
const (
	CategoryHardSkills = "hard_skills"
	CategorySoftSkills = "soft_skills"
	CategoryImpact     = "impact"
	CategoryKeywords   = "keywords"
	CategoryFormatting = "formatting"
)

// ScoreDiagnostics carries the raw signals each category scorer observed,
// so blocker generation can cite concrete evidence instead of generic advice.
type ScoreDiagnostics struct {
	MissingRequired  []string `json:"missing_required,omitempty"`
	MissingPreferred []string `json:"missing_preferred,omitempty"`
	MissingKeywords  []string `json:"missing_keywords,omitempty"`
	UnmetricedBullet string   `json:"unmetriced_bullet,omitempty"`
	VagueBullet      string   `json:"vague_bullet,omitempty"`
	LongBullet       string   `json:"long_bullet,omitempty"`
}

// ScoreBreakdown is the five-category match score for a document against a
// target profile. Pure function of its inputs: identical input always yields
// an identical breakdown.
type ScoreBreakdown struct {
	HardSkills int `json:"hard_skills"`
	SoftSkills int `json:"soft_skills"`
	Impact     int `json:"impact"`
	Keywords   int `json:"keywords"`
	Formatting int `json:"formatting"`

	Overall int    `json:"overall"`
	Label   string `json:"label"`

	Diagnostics ScoreDiagnostics `json:"diagnostics,omitempty"`
}

// CategoryScore pairs a category name with its subscore, for ranking.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// Categories returns the five subscores in declaration order.
func (b *ScoreBreakdown) Categories() []CategoryScore {
	return []CategoryScore{
		{Category: CategoryHardSkills, Score: b.HardSkills},
		{Category: CategorySoftSkills, Score: b.SoftSkills},
		{Category: CategoryImpact, Score: b.Impact},
		{Category: CategoryKeywords, Score: b.Keywords},
		{Category: CategoryFormatting, Score: b.Formatting},
	}
}

// Blocker explains one of the weakest scoring categories with a concrete
// remediation, worst category first.
type Blocker struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Why      string `json:"why"`
	How      string `json:"how"`
	Before   string `json:"before,omitempty"`
	After    string `json:"after,omitempty"`
}
