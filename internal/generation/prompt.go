package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// maxRawTextChars bounds how much raw resume/job text is sent per prompt.
const maxRawTextChars = 12000

// buildPrompt renders the tailoring instruction for the model. The output
// contract mirrors the structural validator's schema exactly.
func buildPrompt(req *Request) (string, error) {
	candidateJSON, err := json.MarshalIndent(req.Candidate, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal candidate profile: %w", err)
	}
	targetJSON, err := json.MarshalIndent(req.Target, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal target profile: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("You are a resume tailoring engine. Rewrite the candidate's resume and cover letter for the target role.\n\n")
	sb.WriteString("Return ONLY a JSON object with these fields:\n")
	sb.WriteString(`{
  "headline": string,
  "summary": string,
  "skill_groups": [{"category": string, "skills": [string]}],
  "roles": [{"company": string, "title": string, "period": string, "bullets": [string]}],
  "education": [{"institution": string, "degree": string, "period": string}],
  "cover_letter": [string],
  "keyword_checklist": [{"keyword": string, "found": bool, "section": string, "suggestion": string}],
  "experience_gaps": [{"gap": string, "suggestion": string, "severity": string}],
  "recruiter_feedback": [string],
  "next_actions": [string]
}` + "\n\n")
	sb.WriteString("Rules: never invent employers, titles, or dates; keep every factual claim from the source resume; ")
	sb.WriteString("bullets must be single sentences; cover_letter paragraphs are plain text with one greeting and one signoff.\n\n")

	if req.Hint != "" {
		sb.WriteString("Additional instruction: ")
		sb.WriteString(req.Hint)
		sb.WriteString("\n\n")
	}

	sb.WriteString("CANDIDATE PROFILE:\n")
	sb.Write(candidateJSON)
	sb.WriteString("\n\nTARGET PROFILE:\n")
	sb.Write(targetJSON)

	if raw := truncateRaw(req.RawResumeText); raw != "" {
		sb.WriteString("\n\nRAW RESUME TEXT:\n")
		sb.WriteString(raw)
	}
	if raw := truncateRaw(req.RawJobText); raw != "" {
		sb.WriteString("\n\nRAW JOB DESCRIPTION:\n")
		sb.WriteString(raw)
	}

	return sb.String(), nil
}

func truncateRaw(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxRawTextChars {
		return s
	}
	return s[:maxRawTextChars]
}
