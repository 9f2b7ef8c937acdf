package catalog

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/spotify"
)

const (
	defaultRedirectURI = "http://localhost:8888/callback"
	appDirName         = "find-track-by-color"
	tokenFileName      = "token.json"
)

// configFromEnv builds the OAuth configuration from SPOTIFY_ID,
// SPOTIFY_SECRET and optionally SPOTIFY_REDIRECT_URI.
func configFromEnv() (*oauth2.Config, error) {
	clientID := os.Getenv("SPOTIFY_ID")
	if clientID == "" {
		return nil, fmt.Errorf("SPOTIFY_ID is not set")
	}

	redirectURI := os.Getenv("SPOTIFY_REDIRECT_URI")
	if redirectURI == "" {
		redirectURI = defaultRedirectURI
	}

	return &oauth2.Config{
		ClientID: clientID,
		// Secret may be empty: the PKCE flow works without one.
		ClientSecret: os.Getenv("SPOTIFY_SECRET"),
		RedirectURL:  redirectURI,
		Scopes:       []string{"user-library-read"},
		Endpoint:     spotify.Endpoint,
	}, nil
}

// Login runs the authorization-code flow with PKCE: it prints the
// authorize URL, waits for the redirect on a local callback server,
// exchanges the code and caches the token for later runs.
func Login(ctx context.Context, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.Default()
	}

	conf, err := configFromEnv()
	if err != nil {
		return err
	}

	verifier := oauth2.GenerateVerifier()
	state, err := randomState()
	if err != nil {
		return err
	}

	authURL := conf.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
	fmt.Printf("Open the following URL in your browser:\n\n  %s\n\n", authURL)

	code, err := waitForCallback(ctx, conf.RedirectURL, state)
	if err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	token, err := conf.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return fmt.Errorf("token exchange failed: %w", err)
	}

	if err := saveToken(token); err != nil {
		return fmt.Errorf("failed to cache token: %w", err)
	}
	logger.Info("token cached", "expiry", token.Expiry)
	return nil
}

// waitForCallback serves the OAuth redirect on the local address named
// by the redirect URI and returns the authorization code.
func waitForCallback(ctx context.Context, redirectURI, state string) (string, error) {
	redirect, err := url.Parse(redirectURI)
	if err != nil {
		return "", fmt.Errorf("invalid redirect URI: %w", err)
	}

	type result struct {
		code string
		err  error
	}
	results := make(chan result, 1)

	mux := http.NewServeMux()
	mux.HandleFunc(redirect.Path, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			results <- result{err: fmt.Errorf("state mismatch")}
			return
		}
		if errMsg := query.Get("error"); errMsg != "" {
			http.Error(w, errMsg, http.StatusBadRequest)
			results <- result{err: fmt.Errorf("authorization denied: %s", errMsg)}
			return
		}
		fmt.Fprintln(w, "Authorized. You can close this window.")
		results <- result{code: query.Get("code")}
	})

	server := &http.Server{
		Addr:              redirect.Host,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			results <- result{err: err}
		}
	}()
	defer server.Close()

	select {
	case r := <-results:
		return r.code, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// tokenCachePath resolves the token cache file under the user config
// directory, creating the application directory if needed.
func tokenCachePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}

	baseDir := filepath.Join(configDir, appDirName)
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return "", fmt.Errorf("create app config dir: %w", err)
	}
	return filepath.Join(baseDir, tokenFileName), nil
}

func loadToken() (*oauth2.Token, error) {
	path, err := tokenCachePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 - path is derived from the user config dir
	if err != nil {
		return nil, fmt.Errorf("read token cache: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("parse token cache: %w", err)
	}
	return &token, nil
}

func saveToken(token *oauth2.Token) error {
	path, err := tokenCachePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write token cache: %w", err)
	}
	return nil
}

// persistingTokenSource writes refreshed tokens back to the cache so a
// later run does not need a new login.
type persistingTokenSource struct {
	src    oauth2.TokenSource
	logger hclog.Logger

	mu   sync.Mutex
	last *oauth2.Token
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.src.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil || s.last.AccessToken != token.AccessToken {
		if err := saveToken(token); err != nil && s.logger != nil {
			s.logger.Warn("failed to persist refreshed token", "error", err)
		}
		s.last = token
	}
	return token, nil
}
