// The proof service scores one claimed social-media data export and emits a
// structured verdict. By default it runs once over an input directory and
// writes results.json; with PROOF_HTTP_ADDR set it serves the same pipeline
// over HTTP instead.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/socialproof-labs/socialproof-go/internal/platform/env"
	"github.com/socialproof-labs/socialproof-go/internal/platform/objectstore"
	"github.com/socialproof-labs/socialproof-go/internal/platform/postgres"
	"github.com/socialproof-labs/socialproof-go/internal/policy"
	"github.com/socialproof-labs/socialproof-go/internal/repo"
	repopg "github.com/socialproof-labs/socialproof-go/internal/repo/postgres"
	"github.com/socialproof-labs/socialproof-go/internal/service/proofs"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("invalid env", "error", err)
		os.Exit(2)
	}

	pol, err := policy.Load(cfg.PolicyPath)
	if err != nil {
		logger.Error("invalid scoring policy", "error", err)
		os.Exit(2)
	}

	var (
		db      *sql.DB
		archive repo.ProofArchive
	)
	if env.String("DATABASE_URL", "") != "" {
		dbCfg, err := postgres.ConfigFromEnv()
		if err != nil {
			logger.Error("invalid database config", "error", err)
			os.Exit(2)
		}
		db, err = postgres.Open(ctx, dbCfg)
		if err != nil {
			logger.Error("database unavailable", "error", err)
			os.Exit(1)
		}
		defer func() { _ = db.Close() }()
		archive = repopg.NewProofArchive(db)
	}

	var store *objectstore.Store
	if cfg.InputObject != "" {
		storeCfg, err := objectstore.ConfigFromEnv()
		if err != nil {
			logger.Error("invalid object store config", "error", err)
			os.Exit(2)
		}
		store, err = objectstore.NewStore(storeCfg)
		if err != nil {
			logger.Error("object store client init failed", "error", err)
			os.Exit(2)
		}
	}

	svc := proofs.New(
		logger.With("component", "orchestrator"),
		proofs.Config{DLPID: cfg.DLPID, UserEmail: cfg.UserEmail},
		pol,
		archive,
	)

	if cfg.HTTPAddr != "" {
		if err := serve(ctx, logger, cfg, svc, db, store, archive); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := runOnce(ctx, logger, cfg, svc, store); err != nil {
		logger.Error("proof generation failed", "error", err)
		os.Exit(1)
	}
}
