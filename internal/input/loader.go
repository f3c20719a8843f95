// Package input loads the submission records from the input directory. A
// missing or malformed file yields an empty record, never an error; the
// orchestrator decides what is fatal.
package input

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/socialproof-labs/socialproof-go/internal/domain"
)

const (
	accountFile   = "account.json"
	postsFile     = "posts.json"
	metadataFile  = "metadata.json"
	referenceFile = "reference.json"
)

// Loader reads submission records from one input directory.
type Loader struct {
	logger        *slog.Logger
	dir           string
	referencePath string
}

// NewLoader wires a loader for dir. referencePath, when non-empty, overrides
// where the uniqueness reference corpus is read from; otherwise the
// conventional reference.json inside dir is used.
func NewLoader(logger *slog.Logger, dir string, referencePath string) *Loader {
	return &Loader{
		logger:        logger,
		dir:           dir,
		referencePath: referencePath,
	}
}

// Load reads the account, posts, metadata, and reference records. Each record
// that cannot be read or parsed is logged and left at its zero value.
func (l *Loader) Load() domain.Submission {
	var sub domain.Submission
	l.loadJSON(filepath.Join(l.dir, accountFile), &sub.Account)
	l.loadJSON(filepath.Join(l.dir, postsFile), &sub.Posts)
	l.loadJSON(filepath.Join(l.dir, metadataFile), &sub.Metadata)

	path := l.referencePath
	if path == "" {
		path = filepath.Join(l.dir, referenceFile)
	}
	l.loadJSON(path, &sub.Reference)
	return sub
}

func (l *Loader) loadJSON(path string, target any) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		l.logger.Warn("input record unavailable", "path", path, "error", err)
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		l.logger.Error("input record malformed", "path", path, "error", err)
		return false
	}
	return true
}
