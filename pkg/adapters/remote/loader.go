// Package remote loads the region dataset from a static HTTP resource,
// the way the browser page fetches /data/indonesia_regions.json.
package remote

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/aretw0/wilayah/pkg/adapters/file"
	"github.com/aretw0/wilayah/pkg/domain"
)

// DefaultTimeout bounds a single fetch when no client is supplied.
const DefaultTimeout = 10 * time.Second

// MaxBodyBytes caps the dataset size read from the network.
const MaxBodyBytes = 64 << 20

// Loader implements ports.DatasetLoader with an HTTP GET.
type Loader struct {
	url    string
	client *http.Client
}

// Option configures a Loader.
type Option func(*Loader)

// WithClient replaces the default HTTP client.
func WithClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// NewLoader creates a Loader for rawURL.
func NewLoader(rawURL string, opts ...Option) (*Loader, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid dataset url %q: scheme must be http or https", rawURL)
	}
	l := &Loader{
		url:    u.String(),
		client: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Describe names the source for logs.
func (l *Loader) Describe() string {
	return l.url
}

// Load fetches and parses the dataset.
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch dataset: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset body: %w", err)
	}
	return file.Parse(data, l.format(resp))
}

// format prefers the response media type and falls back to the URL extension.
func (l *Loader) format(resp *http.Response) file.Format {
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil {
		switch mt {
		case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
			return file.FormatYAML
		case "application/json":
			return file.FormatJSON
		}
	}
	if u, err := url.Parse(l.url); err == nil {
		return file.FormatFor(u.Path)
	}
	return file.FormatJSON
}
