// Package photos fetches album image metadata from the photo host.
// Responses are cached on disk per album key so repeated builds do
// not refetch unchanged albums. All failures here are non-fatal; a
// build without photos is still a valid build.
package photos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	clientTimeout = 30 * time.Second
	acceptJSON    = "application/json"
)

// Image is one photo in an album, mirroring the host's album-image
// resource.
type Image struct {
	URI          string    `json:"Uri"`
	Date         time.Time `json:"Date"`
	FileName     string    `json:"FileName"`
	Format       string    `json:"Format"`
	ImageKey     string    `json:"ImageKey"`
	IsVideo      bool      `json:"IsVideo"`
	ThumbnailURL string    `json:"ThumbnailUrl"`
	Title        string    `json:"Title"`
	WebURI       string    `json:"WebUri"`
}

type albumImagesResponse struct {
	Response struct {
		AlbumImage []Image `json:"AlbumImage"`
	} `json:"Response"`
	Code    int    `json:"Code"`
	Message string `json:"Message"`
}

// Client fetches album images.
type Client interface {
	AlbumImages(ctx context.Context, albumKey string) ([]Image, error)
}

// HTTPClient calls the photo host API.
type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option customizes a client.
type Option func(*HTTPClient)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) {
		if client != nil {
			c.http = client
		}
	}
}

// NewHTTPClient constructs a client for the album-image API.
func NewHTTPClient(baseURL, apiKey string, opts ...Option) *HTTPClient {
	client := &HTTPClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  strings.TrimSpace(apiKey),
		http:    &http.Client{Timeout: clientTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// AlbumImages fetches every image in the named album.
func (c *HTTPClient) AlbumImages(ctx context.Context, albumKey string) ([]Image, error) {
	if albumKey == "" {
		return nil, fmt.Errorf("album key required")
	}

	endpoint := fmt.Sprintf("%s/api/v2/album/%s!images", c.baseURL, url.PathEscape(albumKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build album request: %w", err)
	}
	req.Header.Set("Accept", acceptJSON)
	query := req.URL.Query()
	query.Set("APIKey", c.apiKey)
	req.URL.RawQuery = query.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch album %s: %w", albumKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch album %s: status %d: %s", albumKey, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload albumImagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode album %s: %w", albumKey, err)
	}
	return payload.Response.AlbumImage, nil
}
