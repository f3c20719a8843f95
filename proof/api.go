package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/socialproof-labs/socialproof-go/internal/domain"
	"github.com/socialproof-labs/socialproof-go/internal/platform/httpserver"
	"github.com/socialproof-labs/socialproof-go/internal/platform/objectstore"
	"github.com/socialproof-labs/socialproof-go/internal/repo"
	"github.com/socialproof-labs/socialproof-go/internal/service/proofs"
)

func serve(ctx context.Context, logger *slog.Logger, cfg config, svc *proofs.Service, db *sql.DB, store *objectstore.Store, archive repo.ProofArchive) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", httpserver.Healthz("proof"))

	var checks []httpserver.ReadinessCheck
	if db != nil {
		checks = append(checks, httpserver.ReadinessCheck{
			Name: "postgres",
			Check: func(ctx context.Context) error {
				checkCtx, cancel := context.WithTimeout(ctx, 750*time.Millisecond)
				defer cancel()
				return db.PingContext(checkCtx)
			},
		})
	}
	if store != nil {
		checks = append(checks, httpserver.ReadinessCheck{
			Name: "objectstore",
			Check: func(ctx context.Context) error {
				checkCtx, cancel := context.WithTimeout(ctx, 750*time.Millisecond)
				defer cancel()
				return store.CheckBucket(checkCtx)
			},
		})
	}
	mux.HandleFunc("/readyz", httpserver.ReadyzWithChecks("proof", checks...))

	api := newProofAPI(logger.With("component", "api"), svc, archive)
	api.register(mux)

	serverCfg := httpserver.Config{
		Service:         "proof",
		Addr:            cfg.HTTPAddr,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}
	return httpserver.Run(ctx, logger, serverCfg, httpserver.Wrap(logger, "proof", mux))
}

type proofAPI struct {
	logger  *slog.Logger
	svc     *proofs.Service
	archive repo.ProofArchive
}

func newProofAPI(logger *slog.Logger, svc *proofs.Service, archive repo.ProofArchive) *proofAPI {
	return &proofAPI{logger: logger, svc: svc, archive: archive}
}

func (api *proofAPI) register(mux *http.ServeMux) {
	mux.HandleFunc("POST /proofs", api.handleCreateProof)
	if api.archive != nil {
		mux.HandleFunc("GET /proofs/{proof_id}", api.handleGetProof)
	}
}

type createProofRequest struct {
	Account   domain.Account  `json:"account"`
	Posts     []domain.Post   `json:"posts"`
	Metadata  domain.Metadata `json:"metadata"`
	Reference []domain.Post   `json:"reference"`
}

func (api *proofAPI) handleCreateProof(w http.ResponseWriter, r *http.Request) {
	var req createProofRequest
	if err := decodeJSON(r, &req); err != nil {
		api.writeError(w, r, http.StatusBadRequest, "invalid_json")
		return
	}

	sub := domain.Submission{
		Account:   req.Account,
		Posts:     req.Posts,
		Metadata:  req.Metadata,
		Reference: req.Reference,
	}
	result := api.svc.Generate(r.Context(), time.Now(), sub)
	httpserver.WriteJSON(w, http.StatusOK, result)
}

type proofRecordResponse struct {
	ProofID         string         `json:"proof_id"`
	DLPID           int            `json:"dlp_id"`
	Valid           bool           `json:"valid"`
	Score           float64        `json:"score"`
	Ownership       float64        `json:"ownership"`
	Quality         float64        `json:"quality"`
	Authenticity    float64        `json:"authenticity"`
	Uniqueness      float64        `json:"uniqueness"`
	Attributes      map[string]any `json:"attributes"`
	GeneratedAt     time.Time      `json:"generated_at"`
	IntegritySHA256 string         `json:"integrity_sha256"`
}

func (api *proofAPI) handleGetProof(w http.ResponseWriter, r *http.Request) {
	proofID := strings.TrimSpace(r.PathValue("proof_id"))
	if proofID == "" {
		api.writeError(w, r, http.StatusBadRequest, "proof_id_required")
		return
	}

	record, err := api.archive.Get(r.Context(), proofID)
	if errors.Is(err, repo.ErrNotFound) {
		api.writeError(w, r, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		api.logger.Error("archive read failed", "proof_id", proofID, "error", err)
		api.writeError(w, r, http.StatusInternalServerError, "internal_error")
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, proofRecordResponse{
		ProofID:         record.ProofID,
		DLPID:           record.DLPID,
		Valid:           record.Valid,
		Score:           record.Score,
		Ownership:       record.Ownership,
		Quality:         record.Quality,
		Authenticity:    record.Authenticity,
		Uniqueness:      record.Uniqueness,
		Attributes:      record.Attributes,
		GeneratedAt:     record.GeneratedAt,
		IntegritySHA256: record.IntegritySHA256,
	})
}

func (api *proofAPI) writeError(w http.ResponseWriter, r *http.Request, status int, code string) {
	httpserver.WriteJSON(w, status, map[string]any{
		"error":      code,
		"request_id": r.Header.Get("X-Request-Id"),
	})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 4<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("multiple JSON values")
	}
	return nil
}
