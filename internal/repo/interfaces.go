package repo

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ProofRecord is one archived proof verdict. The archive is insert-only; the
// emitted proof file stays the product, the archive is the audit trail.
type ProofRecord struct {
	ProofID         string
	DLPID           int
	Valid           bool
	Score           float64
	Ownership       float64
	Quality         float64
	Authenticity    float64
	Uniqueness      float64
	Attributes      map[string]any
	GeneratedAt     time.Time
	IntegritySHA256 string
}

// ProofArchive stores generated proofs for audit.
type ProofArchive interface {
	Save(ctx context.Context, record ProofRecord) error
	Get(ctx context.Context, proofID string) (ProofRecord, error)
}
