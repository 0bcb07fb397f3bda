// Package types provides type definitions for structured data used throughout the resume-tailor system.
package types

import "strings"

// SkillGroup represents a named category of short skill labels, ordered as they
// should appear in the skills section.
type SkillGroup struct {
	Category string   `json:"category" validate:"required,min=1"`
	Skills   []string `json:"skills"`
}

// Role represents a single work experience entry with an ordered bullet list.
type Role struct {
	Company string   `json:"company" validate:"required,min=1"`
	Title   string   `json:"title" validate:"required,min=1"`
	Period  string   `json:"period,omitempty"`
	Bullets []string `json:"bullets"`
}

// Education represents a single education entry.
type Education struct {
	Institution string `json:"institution" validate:"required,min=1"`
	Degree      string `json:"degree,omitempty"`
	Period      string `json:"period,omitempty"`
}

// KeywordCheck is a single keyword checklist item: whether the target keyword
// appears in the tailored document, and where.
type KeywordCheck struct {
	Keyword    string `json:"keyword" validate:"required,min=1"`
	Found      bool   `json:"found"`
	Section    string `json:"section,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ExperienceGap describes a gap between the candidate's experience and the
// target role, with a suggested remediation.
type ExperienceGap struct {
	Gap        string `json:"gap" validate:"required,min=1"`
	Suggestion string `json:"suggestion,omitempty"`
	Severity   string `json:"severity,omitempty"`
}

// TailoredDocument is the full tailored resume plus cover letter and narrative
// insight collections. It is the unit of work for the quality gate, consistency
// validator, score booster, and scorer.
type TailoredDocument struct {
	Headline    string       `json:"headline" validate:"required,min=1"`
	Summary     string       `json:"summary"`
	SkillGroups []SkillGroup `json:"skill_groups" validate:"dive"`
	Roles       []Role       `json:"roles" validate:"dive"`
	Education   []Education  `json:"education,omitempty" validate:"dive"`
	CoverLetter []string     `json:"cover_letter,omitempty"`

	KeywordChecklist  []KeywordCheck  `json:"keyword_checklist,omitempty" validate:"dive"`
	ExperienceGaps    []ExperienceGap `json:"experience_gaps,omitempty" validate:"dive"`
	RecruiterFeedback []string        `json:"recruiter_feedback,omitempty"`
	NextActions       []string        `json:"next_actions,omitempty"`
}

// Clone returns a deep copy of the document. Repair, reconcile, and boost
// stages operate on copies so the caller's input is never mutated.
func (d *TailoredDocument) Clone() *TailoredDocument {
	if d == nil {
		return nil
	}

	out := *d
	out.SkillGroups = make([]SkillGroup, len(d.SkillGroups))
	for i, g := range d.SkillGroups {
		out.SkillGroups[i] = SkillGroup{Category: g.Category, Skills: append([]string(nil), g.Skills...)}
	}
	out.Roles = make([]Role, len(d.Roles))
	for i, r := range d.Roles {
		out.Roles[i] = Role{Company: r.Company, Title: r.Title, Period: r.Period, Bullets: append([]string(nil), r.Bullets...)}
	}
	out.Education = append([]Education(nil), d.Education...)
	out.CoverLetter = append([]string(nil), d.CoverLetter...)
	out.KeywordChecklist = append([]KeywordCheck(nil), d.KeywordChecklist...)
	out.ExperienceGaps = append([]ExperienceGap(nil), d.ExperienceGaps...)
	out.RecruiterFeedback = append([]string(nil), d.RecruiterFeedback...)
	out.NextActions = append([]string(nil), d.NextActions...)
	return &out
}

// FullText concatenates every searchable text field of the document, lowercase.
// Used by keyword matching; factual fields (company, title, period) are
// included because recruiters and ATS systems scan them too.
func (d *TailoredDocument) FullText() string {
	if d == nil {
		return ""
	}

	var sb strings.Builder
	write := func(s string) {
		if s != "" {
			sb.WriteString(s)
			sb.WriteString(" ")
		}
	}

	write(d.Headline)
	write(d.Summary)
	for _, g := range d.SkillGroups {
		write(g.Category)
		for _, s := range g.Skills {
			write(s)
		}
	}
	for _, r := range d.Roles {
		write(r.Company)
		write(r.Title)
		for _, b := range r.Bullets {
			write(b)
		}
	}
	for _, e := range d.Education {
		write(e.Institution)
		write(e.Degree)
	}
	for _, p := range d.CoverLetter {
		write(p)
	}

	return strings.ToLower(sb.String())
}

// SkillsText concatenates only the explicit skills section, lowercase.
// Used for the ATS placement bonus.
func (d *TailoredDocument) SkillsText() string {
	if d == nil {
		return ""
	}

	var sb strings.Builder
	for _, g := range d.SkillGroups {
		for _, s := range g.Skills {
			sb.WriteString(s)
			sb.WriteString(" ")
		}
	}
	return strings.ToLower(sb.String())
}

// TotalBullets returns the bullet count across all roles.
func (d *TailoredDocument) TotalBullets() int {
	n := 0
	for _, r := range d.Roles {
		n += len(r.Bullets)
	}
	return n
}
