package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/socialproof-labs/socialproof-go/internal/policy"
	"github.com/socialproof-labs/socialproof-go/internal/repo"
	"github.com/socialproof-labs/socialproof-go/internal/service/proofs"
)

type stubArchive struct {
	records map[string]repo.ProofRecord
}

func (a *stubArchive) Save(_ context.Context, record repo.ProofRecord) error {
	if a.records == nil {
		a.records = map[string]repo.ProofRecord{}
	}
	a.records[record.ProofID] = record
	return nil
}

func (a *stubArchive) Get(_ context.Context, proofID string) (repo.ProofRecord, error) {
	record, ok := a.records[proofID]
	if !ok {
		return repo.ProofRecord{}, repo.ErrNotFound
	}
	return record, nil
}

func newTestMux(archive repo.ProofArchive) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := proofs.New(logger, proofs.Config{DLPID: 12345, UserEmail: "user@example.com"}, policy.Default(), archive)
	mux := http.NewServeMux()
	newProofAPI(logger, svc, archive).register(mux)
	return mux
}

func TestHandleCreateProof(t *testing.T) {
	mux := newTestMux(nil)

	body := `{
		"account": {"email": "user@example.com", "username": "user", "user_id": "u1"},
		"posts": [{
			"post_id": "p1",
			"user_id": "u1",
			"post_url": "https://x.com/user/status/1",
			"platform": "X",
			"content": "a perfectly ordinary post about nothing in particular",
			"posted_at": "2024-05-01T10:00:00Z",
			"engagement": {"likes": 5, "views": 100}
		}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/proofs", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200: %s", rec.Code, rec.Body.String())
	}
	var result struct {
		DLPID int     `json:"dlp_id"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.DLPID != 12345 {
		t.Fatalf("dlp_id=%d, want 12345", result.DLPID)
	}
	if result.Score <= 0 {
		t.Fatalf("score=%v, want > 0", result.Score)
	}
}

func TestHandleCreateProof_InvalidJSON(t *testing.T) {
	mux := newTestMux(nil)

	for _, body := range []string{
		"{not json",
		`{"unknown_field": true}`,
		`{"posts": []}{"posts": []}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/proofs", strings.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status=%d for %q, want 400", rec.Code, body)
		}
	}
}

func TestHandleGetProof(t *testing.T) {
	archive := &stubArchive{records: map[string]repo.ProofRecord{
		"abc-123": {
			ProofID:         "abc-123",
			DLPID:           12345,
			Valid:           true,
			Score:           0.97,
			GeneratedAt:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			IntegritySHA256: strings.Repeat("ab", 32),
		},
	}}
	mux := newTestMux(archive)

	req := httptest.NewRequest(http.MethodGet, "/proofs/abc-123", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got proofRecordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ProofID != "abc-123" || !got.Valid {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestHandleGetProof_NotFound(t *testing.T) {
	mux := newTestMux(&stubArchive{})

	req := httptest.NewRequest(http.MethodGet, "/proofs/missing", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", rec.Code)
	}
}
