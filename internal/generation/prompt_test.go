package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestBuildPrompt_IncludesProfilesAndContract(t *testing.T) {
	req := fallbackRequest()
	prompt, err := buildPrompt(req)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Platform Engineer")
	assert.Contains(t, prompt, "Alex Doe")
	assert.Contains(t, prompt, `"keyword_checklist"`)
	assert.Contains(t, prompt, "never invent employers")
	assert.NotContains(t, prompt, "Additional instruction:")
}

func TestBuildPrompt_IncludesHint(t *testing.T) {
	req := fallbackRequest()
	req.Hint = "Be concise."

	prompt, err := buildPrompt(req)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Additional instruction: Be concise.")
}

func TestBuildPrompt_TruncatesRawText(t *testing.T) {
	req := fallbackRequest()
	req.RawResumeText = strings.Repeat("x", maxRawTextChars+500)

	prompt, err := buildPrompt(req)
	require.NoError(t, err)
	assert.NotContains(t, prompt, strings.Repeat("x", maxRawTextChars+1))
	assert.Contains(t, prompt, "RAW RESUME TEXT:")
}

func TestTruncateRaw(t *testing.T) {
	assert.Equal(t, "", truncateRaw("   "))
	assert.Equal(t, "short", truncateRaw("short"))
	long := strings.Repeat("a", maxRawTextChars+1)
	assert.Len(t, truncateRaw(long), maxRawTextChars)
}

func TestRequestFields(t *testing.T) {
	req := &Request{
		Candidate: &types.CandidateProfile{Headline: "Engineer"},
		Target:    &types.TargetProfile{RoleTitle: "Engineer"},
	}
	prompt, err := buildPrompt(req)
	require.NoError(t, err)
	assert.NotContains(t, prompt, "RAW RESUME TEXT:")
	assert.NotContains(t, prompt, "RAW JOB DESCRIPTION:")
}
