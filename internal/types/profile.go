package types

import "github.com/go-playground/validator/v10"

// CandidateProfile is the candidate's pre-tailoring profile as supplied by the
// profile parser. It is the baseline the score booster measures improvement
// against.
type CandidateProfile struct {
	Name        string       `json:"name,omitempty"`
	Headline    string       `json:"headline"`
	Summary     string       `json:"summary,omitempty"`
	SkillGroups []SkillGroup `json:"skill_groups,omitempty"`
	Roles       []Role       `json:"roles,omitempty"`
	Education   []Education  `json:"education,omitempty"`
}

// AsDocument converts the profile into a bare TailoredDocument so it can be
// scored with the same scorer as tailored output.
func (c *CandidateProfile) AsDocument() *TailoredDocument {
	if c == nil {
		return &TailoredDocument{}
	}

	doc := &TailoredDocument{
		Headline: c.Headline,
		Summary:  c.Summary,
	}
	doc.SkillGroups = append(doc.SkillGroups, c.SkillGroups...)
	doc.Roles = append(doc.Roles, c.Roles...)
	doc.Education = append(doc.Education, c.Education...)
	return doc.Clone()
}

// TargetProfile is the parsed target job description. Immutable input: no
// stage of the pipeline writes to it.
type TargetProfile struct {
	RoleTitle        string   `json:"role_title" validate:"required,min=1"`
	Company          string   `json:"company,omitempty"`
	RequiredSkills   []string `json:"required_skills,omitempty"`
	PreferredSkills  []string `json:"preferred_skills,omitempty"`
	Responsibilities string   `json:"responsibilities,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
	Seniority        string   `json:"seniority,omitempty"`
}

// Validate validates the TargetProfile using the validator.
func (t *TargetProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}
