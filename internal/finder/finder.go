// Package finder filters and ranks scanned artwork against a target
// colour and resolves the survivors to track metadata.
package finder

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/ekuinox/find-track-by-color/internal/catalog"
	"github.com/ekuinox/find-track-by-color/internal/colour"
	"github.com/ekuinox/find-track-by-color/internal/scanner"
)

// TrackClient resolves a catalog identifier to track metadata. The
// concrete Spotify client satisfies it; tests inject a fake.
type TrackClient interface {
	Track(ctx context.Context, id string) (*catalog.Track, error)
}

// Match is one ranked result: an image whose best qualifying colour
// lies within the threshold, joined to its track metadata.
type Match struct {
	TrackID  string
	Path     string
	Color    colour.RGB
	Distance float64
	Coverage float64
	Track    *catalog.Track
}

// Finder holds the matching parameters.
type Finder struct {
	target      colour.RGB
	threshold   float64
	minCoverage float64
	client      TrackClient
	logger      hclog.Logger
}

// New creates a Finder. The minimum coverage must lie in [0, 1] and
// the threshold must be positive; both are checked here so a run never
// starts with unusable parameters.
func New(target colour.RGB, threshold, minCoverage float64, client TrackClient, logger hclog.Logger) (*Finder, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("threshold must be positive, got %f", threshold)
	}
	if minCoverage < 0 || minCoverage > 1 {
		return nil, fmt.Errorf("minimum coverage must be in [0, 1], got %f", minCoverage)
	}
	if client == nil {
		return nil, fmt.Errorf("track client cannot be nil")
	}
	if logger == nil {
		logger = hclog.Default()
	}
	return &Finder{
		target:      target,
		threshold:   threshold,
		minCoverage: minCoverage,
		client:      client,
		logger:      logger.Named("finder"),
	}, nil
}

// candidateMatch is a survivor of the colour filter, before metadata
// resolution.
type candidateMatch struct {
	trackID  string
	path     string
	color    colour.RGB
	distance float64
	coverage float64
}

// Run filters each candidate's colours by minimum coverage, keeps the
// image iff its best remaining colour lies strictly within the
// threshold, derives the track ID from the file name, resolves the
// metadata concurrently and returns the matches ordered by ascending
// distance (ties broken by descending coverage). Candidates that fail
// any step are dropped, never fatal; an empty result is a valid
// outcome.
func (f *Finder) Run(ctx context.Context, candidates []scanner.Candidate) []Match {
	survivors := make([]candidateMatch, 0, len(candidates))
	for _, candidate := range candidates {
		match, ok := f.bestMatch(candidate)
		if !ok {
			continue
		}

		trackID, err := catalog.TrackIDFromFilename(candidate.Path)
		if err != nil {
			f.logger.Debug("dropping file", "path", candidate.Path, "error", err)
			continue
		}
		match.trackID = trackID
		survivors = append(survivors, match)
	}

	matches := f.resolve(ctx, survivors)

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Coverage > matches[j].Coverage
	})
	return matches
}

// bestMatch finds the lowest-distance colour of a candidate among
// those meeting the minimum coverage. The candidate survives only if
// that distance is strictly below the threshold.
func (f *Finder) bestMatch(candidate scanner.Candidate) (candidateMatch, bool) {
	best := candidateMatch{path: candidate.Path, distance: f.threshold}
	found := false
	for _, rc := range candidate.Colors {
		if rc.Coverage < f.minCoverage {
			continue
		}
		distance := colour.Distance(f.target, rc.Color)
		if distance < best.distance {
			best.distance = distance
			best.coverage = rc.Coverage
			best.color = rc.Color
			found = true
		}
	}
	return best, found
}

// resolve fetches metadata for every survivor concurrently, one
// request per image. A failed lookup drops that match only.
func (f *Finder) resolve(ctx context.Context, survivors []candidateMatch) []Match {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		matches []Match
	)
	for _, survivor := range survivors {
		survivor := survivor
		wg.Add(1)
		go func() {
			defer wg.Done()

			track, err := f.client.Track(ctx, survivor.trackID)
			if err != nil {
				f.logger.Warn("failed to resolve track", "id", survivor.trackID, "error", err)
				return
			}

			mu.Lock()
			matches = append(matches, Match{
				TrackID:  survivor.trackID,
				Path:     survivor.path,
				Color:    survivor.color,
				Distance: survivor.distance,
				Coverage: survivor.coverage,
				Track:    track,
			})
			mu.Unlock()
		}()
	}
	wg.Wait()
	return matches
}
