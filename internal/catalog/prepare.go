package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ekuinox/find-track-by-color/internal/progress"
	httputil "github.com/ekuinox/find-track-by-color/internal/util/http"
)

// DownloadArtwork saves the first album image of every saved track
// into dir as <trackID>.jpg, fanning the downloads out concurrently.
// Tracks without artwork and failed downloads are skipped, not fatal;
// the counter observes per-track completion.
func (c *Client) DownloadArtwork(ctx context.Context, dir string, counter *progress.Counter) error {
	tracks, err := c.SavedTracks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list saved tracks: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if counter != nil {
		counter.SetTotal(int64(len(tracks)))
	}

	var wg sync.WaitGroup
	for _, saved := range tracks {
		track := saved.Track
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if counter != nil {
					counter.Increment()
				}
			}()

			if err := c.saveArtwork(ctx, dir, track); err != nil {
				c.logger.Warn("skipping track", "id", track.ID, "name", track.Name, "error", err)
			}
		}()
	}
	wg.Wait()

	return nil
}

// saveArtwork downloads one track's widest album image. Artwork URLs
// are public CDN links, so the download is unauthenticated.
func (c *Client) saveArtwork(ctx context.Context, dir string, track Track) error {
	if track.ID == "" {
		return fmt.Errorf("track has no ID")
	}
	if len(track.Album.Images) == 0 {
		return fmt.Errorf("track has no album artwork")
	}

	data, err := httputil.Fetch(ctx, track.Album.Images[0].URL, httputil.FetchOptions{})
	if err != nil {
		return fmt.Errorf("failed to fetch artwork: %w", err)
	}

	path := filepath.Join(dir, track.ID+ArtworkExtension)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write artwork: %w", err)
	}
	c.logger.Debug("saved artwork", "path", path)
	return nil
}
