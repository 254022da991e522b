// Package fs provides file-based persistence for the corpus snapshot.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	siteindex "github.com/fredster9/site-interface"
)

// Ensure CorpusStore implements siteindex.CorpusStore at compile time.
var _ siteindex.CorpusStore = (*CorpusStore)(nil)

// CorpusStore persists the corpus as a single JSON snapshot file.
// Saves are atomic with respect to concurrent loads: the snapshot is
// written to a temporary file in the same directory and renamed into
// place, so a reader never observes a partially written snapshot.
type CorpusStore struct {
	path string
}

// NewCorpusStore creates a CorpusStore backed by the given snapshot path.
func NewCorpusStore(path string) *CorpusStore {
	return &CorpusStore{path: path}
}

// Path returns the snapshot file path.
func (s *CorpusStore) Path() string {
	return s.path
}

// Load reads the corpus snapshot. A missing or empty snapshot returns an
// empty corpus, not an error: the system tolerates cold start. A corpus
// where only some documents carry embeddings is valid and usable
// immediately.
func (s *CorpusStore) Load(ctx context.Context) (siteindex.Corpus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return siteindex.Corpus{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read corpus snapshot: %w", err)
	}
	if len(data) == 0 {
		return siteindex.Corpus{}, nil
	}

	var corpus siteindex.Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("decode corpus snapshot: %w", err)
	}

	for _, doc := range corpus {
		if err := doc.Validate(); err != nil {
			return nil, fmt.Errorf("invalid document %q in snapshot: %w", doc.URL, err)
		}
	}

	return corpus, nil
}

// Save overwrites the snapshot with the full corpus, atomically.
func (s *CorpusStore) Save(ctx context.Context, corpus siteindex.Corpus) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, doc := range corpus {
		if err := doc.Validate(); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(corpus, "", "  ")
	if err != nil {
		return fmt.Errorf("encode corpus snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp snapshot: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace corpus snapshot: %w", err)
	}

	return nil
}
