// Package poster resolves movie poster images from TMDb.
//
// Only the first search result is ever used: there is no ranking, fuzzy
// scoring, or disambiguation by year or language. Every failure resolves
// to an empty URL.
package poster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spetersoncode/egglens/internal/httpkit"
)

// Defaults for the TMDb endpoints.
const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	DefaultSize         = "w500"
	DefaultTimeout      = 8 * time.Second
)

// errNoPoster is returned by Search when the first result has no poster.
var errNoPoster = errors.New("first result has no poster")

// Config configures a Resolver.
type Config struct {
	// APIKey is the TMDb v3 API key. Empty disables lookups entirely.
	APIKey string

	// BaseURL is the TMDb API root. Defaults to DefaultBaseURL.
	BaseURL string

	// ImageBaseURL is the image host root. Defaults to DefaultImageBaseURL.
	ImageBaseURL string

	// Size is the image width segment, e.g. "w500". Defaults to DefaultSize.
	Size string

	// Timeout bounds each search request. Defaults to DefaultTimeout.
	Timeout time.Duration

	// UserAgent is sent on search requests. Defaults to httpkit.DefaultUserAgent.
	UserAgent string

	// HTTPClient overrides the client built from Timeout and UserAgent.
	HTTPClient *http.Client

	// Logger receives debug output for failed lookups. Defaults to slog.Default().
	Logger *slog.Logger
}

// Resolver looks up poster URLs by title.
type Resolver struct {
	apiKey     string
	baseURL    string
	imageBase  string
	size       string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Resolver from cfg, filling in defaults.
func New(cfg Config) *Resolver {
	r := &Resolver{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		imageBase:  strings.TrimRight(cfg.ImageBaseURL, "/"),
		size:       strings.Trim(cfg.Size, "/"),
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}
	if r.baseURL == "" {
		r.baseURL = DefaultBaseURL
	}
	if r.imageBase == "" {
		r.imageBase = DefaultImageBaseURL
	}
	if r.size == "" {
		r.size = DefaultSize
	}
	if r.httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		r.httpClient = httpkit.NewClient(
			httpkit.WithTimeout(timeout),
			httpkit.WithUserAgent(cfg.UserAgent),
		)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Enabled reports whether an API key is configured.
func (r *Resolver) Enabled() bool { return r.apiKey != "" }

// Resolve returns the poster URL for the first search result matching
// title, or "" if there is none. Empty titles and a missing API key return
// "" without a network call.
func (r *Resolver) Resolve(ctx context.Context, title string) string {
	title = strings.TrimSpace(title)
	if title == "" || !r.Enabled() {
		return ""
	}

	u, err := r.Search(ctx, title)
	if err != nil {
		r.logger.Debug("poster lookup failed", "title", title, "error", err)
		return ""
	}
	return u
}

// searchResponse is the JSON response from TMDb's /search/movie endpoint.
type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
}

// Search issues one TMDb search and returns the first result's poster URL.
// Unlike Resolve it reports why no poster was found.
func (r *Resolver) Search(ctx context.Context, title string) (string, error) {
	params := url.Values{
		"api_key": {r.apiKey},
		"query":   {title},
	}
	reqURL := fmt.Sprintf("%s/search/movie?%s", r.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("tmdb: request failed: %w", redactKey(err, r.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := httpkit.ReadErrorBody(resp.Body, 512)
		return "", fmt.Errorf("tmdb: HTTP %d: %s", resp.StatusCode, body)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", fmt.Errorf("tmdb: decode response: %w", err)
	}
	if len(sr.Results) == 0 {
		return "", errors.New("tmdb: no results")
	}

	first := sr.Results[0]
	if first.PosterPath == "" {
		return "", fmt.Errorf("tmdb: %q: %w", first.Title, errNoPoster)
	}

	path := first.PosterPath
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return r.imageBase + "/" + r.size + path, nil
}

// redactKey strips the API key from transport errors, which embed the
// request URL.
func redactKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), key, "REDACTED"))
}
