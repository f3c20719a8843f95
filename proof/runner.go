package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/socialproof-labs/socialproof-go/internal/domain"
	"github.com/socialproof-labs/socialproof-go/internal/input"
	"github.com/socialproof-labs/socialproof-go/internal/platform/objectstore"
	"github.com/socialproof-labs/socialproof-go/internal/service/proofs"
)

const resultsFile = "results.json"

// runOnce executes the batch pipeline: optionally fetch the submitted archive
// from the object store, extract archives, load records, generate the proof,
// and write results.json into the output directory.
func runOnce(ctx context.Context, logger *slog.Logger, cfg config, svc *proofs.Service, store *objectstore.Store) error {
	if store != nil && cfg.InputObject != "" {
		if err := fetchInputObject(ctx, logger, store, cfg.InputObject, cfg.InputDir); err != nil {
			return err
		}
	}

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("input dir: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no input files found in %s", cfg.InputDir)
	}

	loader := input.NewLoader(logger.With("component", "loader"), cfg.InputDir, cfg.ReferencePath)
	if err := loader.ExtractArchives(); err != nil {
		return err
	}

	result := svc.Generate(ctx, time.Now(), loader.Load())

	if err := writeResult(cfg.OutputDir, result); err != nil {
		return err
	}

	logger.Info("proof generation complete",
		"valid", result.Valid,
		"score", result.Score,
		"ownership", result.Ownership,
		"quality", result.Quality,
		"authenticity", result.Authenticity,
		"uniqueness", result.Uniqueness,
	)
	return nil
}

func writeResult(outputDir string, result domain.ProofResult) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	blob, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	path := filepath.Join(outputDir, resultsFile)
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func fetchInputObject(ctx context.Context, logger *slog.Logger, store *objectstore.Store, key, inputDir string) error {
	if err := store.CheckBucket(ctx); err != nil {
		return err
	}
	body, info, err := store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("fetch input object: %w", err)
	}
	defer body.Close()

	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		return fmt.Errorf("create input dir: %w", err)
	}

	target := filepath.Join(inputDir, sanitizeFilename(key))
	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	_, copyErr := io.Copy(dst, body)
	if closeErr := dst.Close(); copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		return fmt.Errorf("write %s: %w", target, copyErr)
	}

	logger.Info("fetched input object", "key", key, "bytes", info.Size, "path", target)
	return nil
}

func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "" || base == "." || base == ".." || base == "/" {
		return "submission.bin"
	}
	return base
}
