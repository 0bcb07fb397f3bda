package validation

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-tailor/internal/types"
)

var structValidator = validator.New()

// Validate checks a raw generation payload against the suggestion schema,
// coerces it into a TailoredDocument, and struct-validates the result.
// This is the single trust boundary for generation output: callers receive
// either a well-formed document or a typed error.
func Validate(raw string) (*types.TailoredDocument, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, &Error{Message: "payload is empty"}
	}

	schemaLoader := gojsonschema.NewStringLoader(suggestionSchema)
	documentLoader := gojsonschema.NewStringLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, &Error{Message: "payload is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		schemaErr := &SchemaError{}
		for _, desc := range result.Errors() {
			schemaErr.Errors = append(schemaErr.Errors, FieldError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return nil, schemaErr
	}

	var doc types.TailoredDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &Error{Message: "payload does not unmarshal into a document", Cause: err}
	}

	coerce(&doc)

	if err := structValidator.Struct(&doc); err != nil {
		return nil, &Error{Message: "document failed struct validation", Cause: err}
	}

	return &doc, nil
}

// coerce normalizes an untrusted payload in place: strings are trimmed, empty
// list entries dropped, and severities defaulted. This is the only place in
// the pipeline that repairs payload shape; everything downstream can trust
// the document's structure.
func coerce(doc *types.TailoredDocument) {
	doc.Headline = strings.TrimSpace(doc.Headline)
	doc.Summary = strings.TrimSpace(doc.Summary)

	groups := doc.SkillGroups[:0]
	for _, g := range doc.SkillGroups {
		g.Category = strings.TrimSpace(g.Category)
		g.Skills = trimNonEmpty(g.Skills)
		if g.Category == "" || len(g.Skills) == 0 {
			continue
		}
		groups = append(groups, g)
	}
	doc.SkillGroups = groups

	roles := doc.Roles[:0]
	for _, r := range doc.Roles {
		r.Company = strings.TrimSpace(r.Company)
		r.Title = strings.TrimSpace(r.Title)
		r.Period = strings.TrimSpace(r.Period)
		r.Bullets = trimNonEmpty(r.Bullets)
		if r.Company == "" && r.Title == "" {
			continue
		}
		roles = append(roles, r)
	}
	doc.Roles = roles

	education := doc.Education[:0]
	for _, e := range doc.Education {
		e.Institution = strings.TrimSpace(e.Institution)
		e.Degree = strings.TrimSpace(e.Degree)
		e.Period = strings.TrimSpace(e.Period)
		if e.Institution == "" {
			continue
		}
		education = append(education, e)
	}
	doc.Education = education

	doc.CoverLetter = trimNonEmpty(doc.CoverLetter)
	doc.RecruiterFeedback = trimNonEmpty(doc.RecruiterFeedback)
	doc.NextActions = trimNonEmpty(doc.NextActions)

	checks := doc.KeywordChecklist[:0]
	for _, c := range doc.KeywordChecklist {
		c.Keyword = strings.TrimSpace(c.Keyword)
		if c.Keyword == "" {
			continue
		}
		checks = append(checks, c)
	}
	doc.KeywordChecklist = checks

	gaps := doc.ExperienceGaps[:0]
	for _, g := range doc.ExperienceGaps {
		g.Gap = strings.TrimSpace(g.Gap)
		if g.Gap == "" {
			continue
		}
		if g.Severity == "" {
			g.Severity = "medium"
		}
		gaps = append(gaps, g)
	}
	doc.ExperienceGaps = gaps
}

// trimNonEmpty trims every entry and drops the empty ones.
func trimNonEmpty(items []string) []string {
	kept := items[:0]
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
