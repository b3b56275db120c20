package openapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SourceKind enumerates where a document is read from.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source identifies an OpenAPI document.
type Source struct {
	Kind     SourceKind
	Location string
}

func SourceFromFile(path string) Source {
	return Source{Kind: SourceKindFile, Location: filepath.Clean(path)}
}

func SourceFromFS(name string) Source {
	return Source{Kind: SourceKindFS, Location: name}
}

func SourceFromURL(raw string) Source {
	return Source{Kind: SourceKindURL, Location: strings.TrimSpace(raw)}
}

// SourceFromLocation picks the URL kind for http(s) locations and the file kind
// otherwise.
func SourceFromLocation(location string) Source {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return SourceFromURL(location)
	}
	return SourceFromFile(location)
}

// LoaderOption configures Load.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	fs      fs.FS
	client  *http.Client
	timeout time.Duration
}

// WithFileSystem serves SourceKindFS locations.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *loaderOptions) {
		opts.fs = files
	}
}

// WithHTTPClient enables SourceKindURL locations. HTTP loading is disabled
// without it.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *loaderOptions) {
		opts.client = client
	}
}

// WithTimeout caps remote fetches.
func WithTimeout(timeout time.Duration) LoaderOption {
	return func(opts *loaderOptions) {
		opts.timeout = timeout
	}
}

// Load reads the raw document for src.
func Load(ctx context.Context, src Source, options ...LoaderOption) ([]byte, error) {
	opts := loaderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if src.Location == "" {
		return nil, errors.New("openapi loader: location is required")
	}

	switch src.Kind {
	case SourceKindFile:
		data, err := os.ReadFile(src.Location)
		if err != nil {
			return nil, fmt.Errorf("openapi loader: read file: %w", err)
		}
		return data, nil
	case SourceKindFS:
		if opts.fs == nil {
			return nil, errors.New("openapi loader: filesystem is not configured")
		}
		data, err := fs.ReadFile(opts.fs, src.Location)
		if err != nil {
			return nil, fmt.Errorf("openapi loader: read fs: %w", err)
		}
		return data, nil
	case SourceKindURL:
		if opts.client == nil {
			return nil, errors.New("openapi loader: http support disabled")
		}
		return loadHTTP(ctx, opts.client, src.Location, opts.timeout)
	default:
		return nil, fmt.Errorf("openapi loader: unsupported source kind %q", src.Kind)
	}
}

func loadHTTP(ctx context.Context, client *http.Client, location string, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openapi loader: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read body: %w", err)
	}
	return data, nil
}

// Detect reports whether raw looks like an OpenAPI (or Swagger) document.
func Detect(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' {
		var payload map[string]any
		if err := json.Unmarshal(trimmed, &payload); err == nil {
			_, openapi := payload["openapi"]
			_, swagger := payload["swagger"]
			return openapi || swagger
		}
	}
	lower := strings.ToLower(string(trimmed))
	return strings.Contains(lower, "openapi:") || strings.Contains(lower, "swagger:")
}
