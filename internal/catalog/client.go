// Package catalog is a minimal Spotify Web API client. The matching
// pipeline only needs it to resolve track identifiers to metadata; the
// prepare step additionally lists the user's saved tracks.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"

	"github.com/ekuinox/find-track-by-color/internal/version"
)

const defaultBaseURL = "https://api.spotify.com/v1"

// ErrNotFound is returned when the catalog has no track for an
// identifier.
var ErrNotFound = errors.New("track not found")

// Track is the subset of track metadata the pipeline cares about.
type Track struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PreviewURL string `json:"preview_url"`
	Album      Album  `json:"album"`
}

// Album holds album metadata, including artwork references.
type Album struct {
	Name   string  `json:"name"`
	Images []Image `json:"images"`
}

// Image is one artwork variant; Spotify lists them widest first.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// SavedTrack is one entry of the user's library.
type SavedTrack struct {
	Track Track `json:"track"`
}

type savedTracksPage struct {
	Items []SavedTrack `json:"items"`
	Next  string       `json:"next"`
	Total int          `json:"total"`
}

// Client talks to the Spotify Web API with an OAuth-authenticated HTTP
// client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     hclog.Logger
}

// NewClient builds a Client from the environment credentials and the
// cached token. Returns an error if no token has been cached yet; run
// the login flow first in that case.
func NewClient(ctx context.Context, logger hclog.Logger) (*Client, error) {
	conf, err := configFromEnv()
	if err != nil {
		return nil, err
	}

	token, err := loadToken()
	if err != nil {
		return nil, fmt.Errorf("no cached token (run login first): %w", err)
	}

	source := &persistingTokenSource{
		src:    conf.TokenSource(ctx, token),
		logger: logger,
		last:   token,
	}
	return newClient(oauth2.NewClient(ctx, source), defaultBaseURL, logger), nil
}

func newClient(httpClient *http.Client, baseURL string, logger hclog.Logger) *Client {
	if logger == nil {
		logger = hclog.Default()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.Named("catalog"),
	}
}

// Track fetches metadata for a single track. Returns ErrNotFound when
// the identifier does not resolve; any other failure is transient from
// the pipeline's point of view.
func (c *Client) Track(ctx context.Context, id string) (*Track, error) {
	var track Track
	if err := c.get(ctx, "/tracks/"+id, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

// SavedTracks lists every track in the user's library, following the
// paginated responses until exhausted.
func (c *Client) SavedTracks(ctx context.Context) ([]SavedTrack, error) {
	var tracks []SavedTrack
	offset := 0
	for {
		var page savedTracksPage
		path := fmt.Sprintf("/me/tracks?limit=50&offset=%d", offset)
		if err := c.get(ctx, path, &page); err != nil {
			return nil, err
		}
		tracks = append(tracks, page.Items...)
		offset += len(page.Items)
		if page.Next == "" || len(page.Items) == 0 {
			break
		}
	}
	c.logger.Debug("listed saved tracks", "count", len(tracks))
	return tracks, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	requestURL := c.baseURL + path
	if _, err := url.Parse(requestURL); err != nil {
		return fmt.Errorf("invalid request URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "find-track-by-color/"+version.Version)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
