// Package gateway orchestrates end-to-end tailoring requests against an
// unreliable generation source: circuit breaking, concurrency limiting, hard
// timeouts, bounded retry, deterministic fallback, and final assembly through
// the quality gate and score booster. Generate never returns an error; the
// worst case is a fallback document with an explanatory reason.
package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/jonathan/resume-tailor/internal/boosting"
	"github.com/jonathan/resume-tailor/internal/generation"
	"github.com/jonathan/resume-tailor/internal/quality"
	"github.com/jonathan/resume-tailor/internal/scoring"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/jonathan/resume-tailor/internal/validation"
)

// Config holds the gateway's resilience tunables.
type Config struct {
	// MaxConcurrent is the number of simultaneous in-flight generation calls.
	MaxConcurrent int
	// MaxAttempts bounds the retry loop per request.
	MaxAttempts int
	// Timeout is the hard per-attempt deadline.
	Timeout time.Duration
	// FailureWindow is the sliding window for circuit-breaker failures.
	FailureWindow time.Duration
	// FailureThreshold opens the circuit when reached within the window.
	FailureThreshold int
	// OpenDuration is how long the circuit stays open before half-open.
	OpenDuration time.Duration
}

// DefaultConfig returns the standard gateway tuning.
func DefaultConfig() Config {
	return Config{
		MaxConcurrent:    3,
		MaxAttempts:      2,
		Timeout:          30 * time.Second,
		FailureWindow:    2 * time.Minute,
		FailureThreshold: 5,
		OpenDuration:     10 * time.Minute,
	}
}

// User-safe fallback reasons. The raw provider error never reaches the caller.
const (
	reasonCircuitOpen  = "service temporarily disabled"
	reasonUnconfigured = "generation source not configured"
	reasonAtCapacity   = "service is at capacity"
	reasonTimedOut     = "generation timed out"
	reasonUnavailable  = "generation service unavailable"
	reasonBadOutput    = "generation output could not be validated"
)

// conciseHint is appended to retry attempts after a structural failure.
const conciseHint = "Be concise. Return only the exact JSON object requested, with no commentary."

// Options are per-request overrides.
type Options struct {
	// Timeout overrides the configured per-attempt timeout when positive.
	Timeout time.Duration
}

// Gateway is the single entry point for tailoring requests. Safe for
// concurrent use; the breaker and slot counter are the only shared state.
type Gateway struct {
	cfg      Config
	boostCfg boosting.Config

	primary  generation.Source // nil when unconfigured
	fallback generation.Source

	sem     *semaphore.Weighted
	breaker *breaker
	active  activeCounter
	log     *zap.Logger
}

// New creates a gateway. primary may be nil, in which case every request goes
// straight to the deterministic fallback without counting failures.
func New(cfg Config, boostCfg boosting.Config, primary generation.Source, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{
		cfg:      cfg,
		boostCfg: boostCfg,
		primary:  primary,
		fallback: generation.NewDeterministicSource(),
		sem:      semaphore.NewWeighted(int64(cfg.MaxConcurrent)),
		breaker:  newBreaker(cfg.FailureWindow, cfg.FailureThreshold, cfg.OpenDuration),
		log:      log,
	}
}

// Generate tailors a document for the candidate/target pair. It never returns
// an error: every failure mode inside is absorbed and surfaces only through
// Provenance and Reason on the result.
func (g *Gateway) Generate(ctx context.Context, candidate *types.CandidateProfile, target *types.TargetProfile, rawResume, rawJob string, opts Options) *types.GenerateResult {
	start := time.Now()
	requestID := uuid.NewString()
	log := g.log.With(zap.String("request_id", requestID))

	req := &generation.Request{
		Candidate:     candidate,
		Target:        target,
		RawResumeText: rawResume,
		RawJobText:    rawJob,
	}

	doc, reason := g.tryPrimary(ctx, log, req, opts)

	provenance := types.ProvenanceLLM
	if doc == nil {
		provenance = types.ProvenanceFallback
		doc = g.fallbackDocument(ctx, log, req)
	}

	result := g.assemble(doc, candidate, target)
	result.RequestID = requestID
	result.Provenance = provenance
	result.Reason = reason
	result.Duration = time.Since(start)

	log.Info("generate complete",
		zap.String("provenance", string(provenance)),
		zap.Int("score_before", result.ScoreBefore.Overall),
		zap.Int("score_after", result.ScoreAfter.Overall),
		zap.Duration("duration", result.Duration))

	return result
}

// tryPrimary runs the guarded attempt loop against the primary source.
// Returns the validated document, or nil plus a user-safe reason for falling
// back.
func (g *Gateway) tryPrimary(ctx context.Context, log *zap.Logger, req *generation.Request, opts Options) (*types.TailoredDocument, string) {
	// Circuit check.
	allowed, probe := g.breaker.allow()
	if !allowed {
		log.Warn("circuit open, shedding to fallback")
		return nil, reasonCircuitOpen
	}

	// Availability check: an unconfigured source is expected, not a failure.
	if g.primary == nil {
		if probe {
			g.breaker.cancelProbe()
		}
		return nil, reasonUnconfigured
	}

	// Concurrency acquire: backpressure by shedding, not queueing. Saturation
	// reflects load, not service health, so it never counts as a failure.
	if !g.sem.TryAcquire(1) {
		if probe {
			g.breaker.cancelProbe()
		}
		log.Warn("no concurrency slot available, shedding to fallback")
		return nil, reasonAtCapacity
	}
	defer g.sem.Release(1)

	g.active.inc()
	defer g.active.dec()

	doc, reason, err := g.attemptLoop(ctx, log, req, opts)
	if err == nil {
		g.breaker.recordSuccess()
		return doc, ""
	}

	if opened := g.breaker.recordFailure(); opened {
		log.Warn("circuit opened", zap.Int("threshold", g.cfg.FailureThreshold))
	}
	log.Warn("primary generation failed, falling back", zap.String("reason", reason), zap.Error(err))
	return nil, reason
}

// attemptLoop makes up to MaxAttempts calls under the per-attempt timeout.
// Auth failures and timeouts are terminal immediately; structural failures
// retry once with a stricter hint; transient failures retry until the budget
// is spent.
func (g *Gateway) attemptLoop(ctx context.Context, log *zap.Logger, req *generation.Request, opts Options) (*types.TailoredDocument, string, error) {
	timeout := g.cfg.Timeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	var lastErr error
	lastReason := reasonUnavailable

	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		raw, err := g.primary.Invoke(callCtx, req)
		cancel()

		if err != nil {
			switch {
			case errors.Is(err, context.DeadlineExceeded):
				// Timeout is terminal; the in-flight call is abandoned.
				return nil, reasonTimedOut, err
			case errors.Is(err, context.Canceled):
				return nil, reasonUnavailable, err
			case generation.IsAuthError(err):
				// Misconfiguration, not load. Alarm and stop immediately.
				log.Error("generation auth failure, check provider credentials", zap.Error(err))
				return nil, reasonUnavailable, err
			default:
				lastErr = err
				lastReason = reasonUnavailable
				log.Warn("generation attempt failed", zap.Int("attempt", attempt), zap.Error(err))
				continue
			}
		}

		doc, err := validation.Validate(raw)
		if err == nil {
			return doc, "", nil
		}

		lastErr = err
		lastReason = reasonBadOutput
		log.Warn("generation output failed validation", zap.Int("attempt", attempt), zap.Error(err))
		req.Hint = conciseHint
	}

	return nil, lastReason, lastErr
}

// fallbackDocument produces the deterministic document. The fallback source
// cannot fail in practice; if it somehow does, a minimal document is built
// directly so Generate keeps its no-error contract.
func (g *Gateway) fallbackDocument(ctx context.Context, log *zap.Logger, req *generation.Request) *types.TailoredDocument {
	raw, err := g.fallback.Invoke(ctx, req)
	if err == nil {
		doc, verr := validation.Validate(raw)
		if verr == nil {
			return doc
		}
		err = verr
	}

	log.Error("fallback generation failed, using minimal document", zap.Error(err))
	return minimalDocument(req.Candidate, req.Target)
}

// assemble runs the shared tail of both paths: quality gate, then booster
// (which re-runs the consistency validator and re-scores), then blockers.
func (g *Gateway) assemble(doc *types.TailoredDocument, candidate *types.CandidateProfile, target *types.TargetProfile) *types.GenerateResult {
	repaired, issues := quality.Repair(doc)

	boost := boosting.Boost(g.boostCfg, repaired, candidate, target)
	issues = append(issues, boost.Issues...)

	return &types.GenerateResult{
		Document:    boost.Document,
		ScoreBefore: boost.Before,
		ScoreAfter:  boost.After,
		Blockers:    scoring.Blockers(boost.After),
		Issues:      issues,
		BoostLog:    boost.Actions,
	}
}

// minimalDocument is the last-resort document when even the fallback source
// misbehaves.
func minimalDocument(candidate *types.CandidateProfile, target *types.TargetProfile) *types.TailoredDocument {
	doc := candidate.AsDocument()
	if doc.Headline == "" {
		doc.Headline = target.RoleTitle
	}
	if doc.Headline == "" {
		doc.Headline = "Candidate Resume"
	}
	return doc
}
