// Package record keeps the best score across runs in a small text file in
// the user's data directory.
package record

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
)

// RelPath is the record file location relative to the XDG data home.
const RelPath = "tui-snake/best_score"

// Record tracks the stored best score and the score of the current run.
type Record struct {
	path    string
	best    uint64
	current uint64
}

// DefaultPath resolves the record file in the XDG data directory, creating
// the parent directory if needed.
func DefaultPath() (string, error) {
	p, err := xdg.DataFile(RelPath)
	if err != nil {
		return "", fmt.Errorf("record: cannot resolve data dir: %w", err)
	}
	return p, nil
}

// Load reads the record stored at path. A missing or unparsable file
// counts as a best score of zero.
func Load(path string) *Record {
	r := &Record{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return r
	}
	if n, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64); err == nil {
		r.best = n
	}
	return r
}

// Path returns the file backing this record.
func (r *Record) Path() string {
	return r.path
}

// Best returns the stored best score.
func (r *Record) Best() uint64 {
	return r.best
}

// SetCurrent updates the score of the run in progress.
func (r *Record) SetCurrent(score uint64) {
	r.current = score
}

// Current returns the score of the run in progress.
func (r *Record) Current() uint64 {
	return r.current
}

// IsRecord reports whether the current run beats the stored best.
func (r *Record) IsRecord() bool {
	return r.current > r.best
}

// Write persists the current score when it is at least the stored best.
// It reports whether the file was written.
func (r *Record) Write() (bool, error) {
	if r.current < r.best {
		return false, nil
	}
	r.best = r.current
	if r.path == "" {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return false, fmt.Errorf("record: cannot create directory: %w", err)
	}
	if err := os.WriteFile(r.path, []byte(strconv.FormatUint(r.current, 10)), 0o644); err != nil {
		return false, fmt.Errorf("record: cannot write %s: %w", r.path, err)
	}
	return true, nil
}
