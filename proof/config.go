package main

import (
	"os"
	"time"

	"github.com/socialproof-labs/socialproof-go/internal/platform/env"
)

const defaultDLPID = 12345

type config struct {
	DLPID           int
	UserEmail       string
	InputDir        string
	OutputDir       string
	ReferencePath   string
	PolicyPath      string
	InputObject     string
	HTTPAddr        string
	ShutdownTimeout time.Duration
}

func loadConfig() (config, error) {
	dlpID, err := env.Int("DLP_ID", defaultDLPID)
	if err != nil {
		return config{}, err
	}
	shutdownTimeout, err := env.Duration("PROOF_SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return config{}, err
	}

	inputDir, outputDir := defaultDirs()
	return config{
		DLPID:           dlpID,
		UserEmail:       env.String("USER_EMAIL", ""),
		InputDir:        env.String("PROOF_INPUT_DIR", inputDir),
		OutputDir:       env.String("PROOF_OUTPUT_DIR", outputDir),
		ReferencePath:   env.String("REFERENCE_DATA_PATH", ""),
		PolicyPath:      env.String("PROOF_POLICY_PATH", ""),
		InputObject:     env.String("PROOF_INPUT_OBJECT", ""),
		HTTPAddr:        env.String("PROOF_HTTP_ADDR", ""),
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

// defaultDirs picks ./input and ./output when both exist (local development),
// otherwise the conventional container mounts /input and /output.
func defaultDirs() (string, string) {
	if dirExists("./input") && dirExists("./output") {
		return "./input", "./output"
	}
	return "/input", "/output"
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
