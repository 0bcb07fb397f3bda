// Package generation defines the generation source abstraction and its two
// implementations: the Gemini-backed primary and the deterministic fallback.
// Both produce the same raw JSON suggestion shape, which the structural
// validator coerces into a TailoredDocument.
package generation

import (
	"context"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Request carries everything a source needs to tailor a document.
type Request struct {
	Candidate     *types.CandidateProfile
	Target        *types.TargetProfile
	RawResumeText string
	RawJobText    string

	// Hint is an extra instruction threaded into retries ("be concise").
	Hint string
}

// Source produces raw structured suggestions as a JSON string. The payload
// shape is not trusted; callers must run it through the structural validator.
type Source interface {
	// Invoke generates raw suggestion JSON for the request.
	Invoke(ctx context.Context, req *Request) (string, error)
	// Name identifies the source in logs.
	Name() string
}
