// Package postgres implements the proof archive on Postgres via the pgx
// stdlib driver.
package postgres

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/socialproof-labs/socialproof-go/internal/repo"
)

// DB is the subset of database/sql used by this package.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ProofArchive persists proof records into the proofs table.
type ProofArchive struct {
	db DB
}

var _ repo.ProofArchive = (*ProofArchive)(nil)

func NewProofArchive(db DB) *ProofArchive {
	return &ProofArchive{db: db}
}

// Save inserts the record, computing its integrity hash. Records are never
// updated; a duplicate proof id is an error.
func (a *ProofArchive) Save(ctx context.Context, record repo.ProofRecord) error {
	if a == nil || a.db == nil {
		return errors.New("proof archive not initialized")
	}
	if strings.TrimSpace(record.ProofID) == "" {
		return errors.New("proof id is required")
	}
	if record.GeneratedAt.IsZero() {
		record.GeneratedAt = time.Now().UTC()
	}

	attributes := record.Attributes
	if attributes == nil {
		attributes = map[string]any{}
	}
	attributesJSON, err := json.Marshal(attributes)
	if err != nil {
		return fmt.Errorf("marshal attributes: %w", err)
	}

	integrity, err := ComputeIntegritySHA256(record, attributesJSON)
	if err != nil {
		return err
	}

	_, err = a.db.ExecContext(
		ctx,
		`INSERT INTO proofs (
			proof_id,
			dlp_id,
			valid,
			score,
			ownership,
			quality,
			authenticity,
			uniqueness,
			attributes,
			generated_at,
			integrity_sha256
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		record.ProofID,
		record.DLPID,
		record.Valid,
		record.Score,
		record.Ownership,
		record.Quality,
		record.Authenticity,
		record.Uniqueness,
		attributesJSON,
		record.GeneratedAt.UTC(),
		integrity,
	)
	if err != nil {
		return fmt.Errorf("insert proof: %w", err)
	}
	return nil
}

// Get returns one archived proof by id.
func (a *ProofArchive) Get(ctx context.Context, proofID string) (repo.ProofRecord, error) {
	if a == nil || a.db == nil {
		return repo.ProofRecord{}, errors.New("proof archive not initialized")
	}

	var (
		record        repo.ProofRecord
		attributesRaw []byte
	)
	err := a.db.QueryRowContext(
		ctx,
		`SELECT
			proof_id,
			dlp_id,
			valid,
			score,
			ownership,
			quality,
			authenticity,
			uniqueness,
			attributes,
			generated_at,
			integrity_sha256
		FROM proofs
		WHERE proof_id = $1`,
		proofID,
	).Scan(
		&record.ProofID,
		&record.DLPID,
		&record.Valid,
		&record.Score,
		&record.Ownership,
		&record.Quality,
		&record.Authenticity,
		&record.Uniqueness,
		&attributesRaw,
		&record.GeneratedAt,
		&record.IntegritySHA256,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return repo.ProofRecord{}, repo.ErrNotFound
	}
	if err != nil {
		return repo.ProofRecord{}, fmt.Errorf("select proof: %w", err)
	}

	record.Attributes = map[string]any{}
	if len(attributesRaw) > 0 {
		if err := json.Unmarshal(attributesRaw, &record.Attributes); err != nil {
			return repo.ProofRecord{}, fmt.Errorf("decode attributes: %w", err)
		}
	}
	return record, nil
}

// ComputeIntegritySHA256 hashes the canonical JSON of the row content.
func ComputeIntegritySHA256(record repo.ProofRecord, attributesJSON []byte) (string, error) {
	type integrityInput struct {
		ProofID      string          `json:"proof_id"`
		DLPID        int             `json:"dlp_id"`
		Valid        bool            `json:"valid"`
		Score        float64         `json:"score"`
		Ownership    float64         `json:"ownership"`
		Quality      float64         `json:"quality"`
		Authenticity float64         `json:"authenticity"`
		Uniqueness   float64         `json:"uniqueness"`
		Attributes   json.RawMessage `json:"attributes"`
		GeneratedAt  time.Time       `json:"generated_at"`
	}

	blob, err := json.Marshal(integrityInput{
		ProofID:      strings.TrimSpace(record.ProofID),
		DLPID:        record.DLPID,
		Valid:        record.Valid,
		Score:        record.Score,
		Ownership:    record.Ownership,
		Quality:      record.Quality,
		Authenticity: record.Authenticity,
		Uniqueness:   record.Uniqueness,
		Attributes:   attributesJSON,
		GeneratedAt:  record.GeneratedAt.UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal integrity: %w", err)
	}
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:]), nil
}
