// Package scanner walks a directory of album artwork and extracts
// colours from each file concurrently.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/ekuinox/find-track-by-color/internal/colour"
	"github.com/ekuinox/find-track-by-color/internal/progress"
)

// Extractor reduces one image file to its representative colours.
type Extractor interface {
	ExtractFile(path string) ([]colour.RepresentativeColor, error)
}

// Candidate is one successfully processed image: its path and its
// representative colours, ordered by descending coverage.
type Candidate struct {
	Path   string
	Colors []colour.RepresentativeColor
}

// Scanner fans extraction out over the entries of a directory.
type Scanner struct {
	extractor Extractor
	logger    hclog.Logger
}

// New creates a Scanner. A nil logger is replaced with a default one.
func New(extractor Extractor, logger hclog.Logger) *Scanner {
	if logger == nil {
		logger = hclog.Default()
	}
	return &Scanner{extractor: extractor, logger: logger.Named("scanner")}
}

// Scan enumerates the directory, takes at most limit entries and runs
// the extractor for each on its own goroutine. Files that fail to
// decode are dropped without failing the batch, so the result may hold
// fewer candidates than entries were dispatched. The counter is
// incremented once per finished entry, success or not, and may be
// observed concurrently. An unreadable directory is the only error.
func (s *Scanner) Scan(dir string, limit int, counter *progress.Counter) ([]Candidate, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be at least 1, got %d", limit)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	if counter != nil {
		counter.SetTotal(int64(len(entries)))
	}

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		candidates []Candidate
	)

	for _, entry := range entries {
		if entry.IsDir() {
			if counter != nil {
				counter.Increment()
			}
			continue
		}

		path := filepath.Join(dir, entry.Name())
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if counter != nil {
					counter.Increment()
				}
			}()

			colors, err := s.extractor.ExtractFile(path)
			if err != nil {
				s.logger.Debug("skipping file", "path", path, "error", err)
				return
			}

			mu.Lock()
			candidates = append(candidates, Candidate{Path: path, Colors: colors})
			mu.Unlock()
		}()
	}

	wg.Wait()
	return candidates, nil
}
