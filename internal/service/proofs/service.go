// Package proofs implements the proof orchestrator: it runs the five
// verifiers over one submission, merges their attributes, and aggregates the
// weighted score and the pass/fail verdict.
//
// The aggregation is fail-closed: a panic anywhere between scoring and
// aggregation degrades the result to valid=false, score=0, keeping whatever
// fields were already set.
package proofs

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/socialproof-labs/socialproof-go/internal/domain"
	"github.com/socialproof-labs/socialproof-go/internal/policy"
	"github.com/socialproof-labs/socialproof-go/internal/repo"
	"github.com/socialproof-labs/socialproof-go/internal/scoring"
)

// Config carries the proof-level options.
type Config struct {
	// DLPID is the default data liquidity pool tag; a dlp_id in the
	// submission metadata takes precedence.
	DLPID int
	// UserEmail, when set, enables the strict email-match ownership check.
	UserEmail string
}

// Service generates proofs for submissions.
type Service struct {
	logger  *slog.Logger
	cfg     Config
	policy  policy.Spec
	archive repo.ProofArchive
}

// New wires the orchestrator. archive may be nil; archiving is then skipped.
func New(logger *slog.Logger, cfg Config, pol policy.Spec, archive repo.ProofArchive) *Service {
	return &Service{
		logger:  logger,
		cfg:     cfg,
		policy:  pol,
		archive: archive,
	}
}

// Generate produces the proof for one submission. now is the generation time;
// it feeds both the future-date check and the result timestamp, so a frozen
// clock yields a fully deterministic proof.
func (s *Service) Generate(ctx context.Context, now time.Time, sub domain.Submission) domain.ProofResult {
	result := domain.NewProofResult(s.cfg.DLPID)

	if sub.Account.IsZero() || len(sub.Posts) == 0 {
		s.logger.Error("required records missing, emitting default proof",
			"account_loaded", !sub.Account.IsZero(),
			"posts", len(sub.Posts),
		)
		return result
	}

	s.score(now, sub, &result)
	s.archiveProof(ctx, now, result)
	return result
}

func (s *Service) score(now time.Time, sub domain.Submission, result *domain.ProofResult) {
	defer func() {
		if v := recover(); v != nil {
			s.logger.Error("proof aggregation failed", "panic", v)
			result.Valid = false
			result.Score = 0
		}
	}()

	ownership, ownershipAttrs := scoring.VerifyOwnership(sub.Account, sub.Posts, s.cfg.UserEmail)
	quality, qualityAttrs := scoring.AssessQuality(sub.Posts)
	authenticity, authenticityAttrs := scoring.VerifyAuthenticity(sub.Account, sub.Posts)
	timeScore, timeAttrs := scoring.VerifyTimeConsistency(s.logger, now.UTC(), sub.Posts)
	uniqueness, uniquenessAttrs := scoring.VerifyUniqueness(sub.Posts, sub.Reference)

	// Flat merge; verifiers use distinct keys by construction, the last
	// writer wins if that ever changes.
	attributes := map[string]any{}
	for _, attrs := range []map[string]any{ownershipAttrs, qualityAttrs, authenticityAttrs, timeAttrs, uniquenessAttrs} {
		for k, v := range attrs {
			attributes[k] = v
		}
	}
	result.Attributes = attributes

	result.Ownership = scoring.Clamp01(ownership)
	result.Quality = scoring.Clamp01(quality)
	result.Uniqueness = scoring.Clamp01(uniqueness)

	// Time consistency folds into the reported authenticity dimension, while
	// validity still gates on the raw URL and time scores separately.
	result.Authenticity = scoring.Clamp01((authenticity + timeScore) / 2)

	weights := s.policy.Weights
	result.Score = scoring.Clamp01(
		weights.Ownership*result.Ownership +
			weights.Quality*result.Quality +
			weights.Authenticity*result.Authenticity +
			weights.Uniqueness*result.Uniqueness,
	)

	thresholds := s.policy.Thresholds
	result.Valid = ownership >= thresholds.MinOwnership &&
		quality >= thresholds.MinQuality &&
		authenticity >= thresholds.MinAuthenticity &&
		timeScore >= thresholds.MinTimeConsistency &&
		uniqueness >= thresholds.MinUniqueness

	result.Metadata = map[string]any{
		"dlp_id":    sub.Metadata.DLPID(s.cfg.DLPID),
		"timestamp": now.Format(time.RFC3339),
	}

	s.logger.Info("proof scored",
		"valid", result.Valid,
		"score", result.Score,
		"ownership", result.Ownership,
		"quality", result.Quality,
		"authenticity", result.Authenticity,
		"uniqueness", result.Uniqueness,
	)
}

func (s *Service) archiveProof(ctx context.Context, now time.Time, result domain.ProofResult) {
	if s.archive == nil {
		return
	}

	record := repo.ProofRecord{
		ProofID:      uuid.NewString(),
		DLPID:        result.DLPID,
		Valid:        result.Valid,
		Score:        result.Score,
		Ownership:    result.Ownership,
		Quality:      result.Quality,
		Authenticity: result.Authenticity,
		Uniqueness:   result.Uniqueness,
		Attributes:   result.Attributes,
		GeneratedAt:  now.UTC(),
	}
	if err := s.archive.Save(ctx, record); err != nil {
		s.logger.Error("proof archive write failed", "proof_id", record.ProofID, "error", err)
		return
	}
	s.logger.Info("proof archived", "proof_id", record.ProofID)
}
