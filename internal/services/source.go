package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/spf13/afero"
)

// DefaultProjectsPath is where the project document lives relative to the site root.
const DefaultProjectsPath = "assets/data/projects.json"

// ErrFetch marks transport failures while retrieving the project document.
var ErrFetch = errors.New("fetch project document")

// Source retrieves the raw project document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// NewSource picks an HTTP source for http(s) locations and a file source otherwise.
func NewSource(fs afero.Fs, location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(cleanhttp.DefaultClient(), location)
	}
	return NewFileSource(fs, location)
}

// FileSource reads the document from a filesystem
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a FileSource
func NewFileSource(fs afero.Fs, path string) *FileSource {
	return &FileSource{fs: fs, path: path}
}

// Fetch reads the whole file
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return data, nil
}

func (s *FileSource) String() string {
	return "file:" + s.path
}

// HTTPSource GETs the document from a URL
type HTTPSource struct {
	client *http.Client
	url    string
}

// NewHTTPSource creates an HTTPSource
func NewHTTPSource(client *http.Client, url string) *HTTPSource {
	return &HTTPSource{client: client, url: url}
}

// Fetch performs a single GET; non-2xx responses count as failures
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFetch, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetch, err)
	}
	return data, nil
}

func (s *HTTPSource) String() string {
	return s.url
}
