package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidepool.dev/internal/models"
)

type recordingContainer struct {
	mu      sync.Mutex
	markup  string
	replace int
}

func (c *recordingContainer) Replace(markup string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markup = markup
	c.replace++
}

func (c *recordingContainer) snapshot() (string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.markup, c.replace
}

type stubSource struct {
	data []byte
	err  error
}

func (s stubSource) Fetch(context.Context) ([]byte, error) { return s.data, s.err }
func (s stubSource) String() string                        { return "stub" }

type blockingSource struct{}

func (blockingSource) Fetch(ctx context.Context) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
func (blockingSource) String() string { return "blocking" }

func newTestLogger(buf *bytes.Buffer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{Name: "test", Output: buf, Level: hclog.Debug})
}

func TestContentLoaderRenders(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, DefaultProjectsPath,
		[]byte(`[{"title":"<X>","description":"a & b","tags":["c++","go"]}]`), 0o644))

	c := &recordingContainer{}
	l := NewContentLoader(NewProjectService(NewFileSource(fs, DefaultProjectsPath), 0), nil)

	assert.True(t, l.Load(context.Background(), c))
	markup, n := c.snapshot()
	assert.Equal(t, 1, n)
	assert.Contains(t, markup, "&lt;X&gt;")
	assert.Contains(t, markup, "a &amp; b")
}

func TestContentLoaderFailureLeavesContainer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source Source
	}{
		{"fetch error", stubSource{err: errors.New("connection refused")}},
		{"malformed json", stubSource{data: []byte(`[{"title":`)}},
		{"not a list", stubSource{data: []byte(`{"title":"x"}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := &recordingContainer{markup: "previous"}
			l := NewContentLoader(NewProjectService(tt.source, 0), newTestLogger(&buf))

			assert.False(t, l.Load(context.Background(), c))
			markup, n := c.snapshot()
			assert.Equal(t, "previous", markup)
			assert.Zero(t, n)
			assert.Contains(t, buf.String(), "could not load projects")
		})
	}
}

func TestContentLoaderStartSignalsCompletion(t *testing.T) {
	t.Parallel()

	c := &recordingContainer{}
	l := NewContentLoader(NewProjectService(stubSource{data: []byte(`[{"title":"a"},{"title":"b"}]`)}, 0), nil)

	select {
	case <-l.Start(context.Background(), c):
	case <-time.After(time.Second):
		t.Fatal("loader never signalled completion")
	}
	markup, _ := c.snapshot()
	assert.Equal(t, 2, strings.Count(markup, "<article "))
}

func TestContentLoaderContainersAreIndependent(t *testing.T) {
	t.Parallel()

	l := NewContentLoader(NewProjectService(stubSource{data: []byte(`[{"title":"a"}]`)}, 0), nil)

	first, second := &recordingContainer{}, &recordingContainer{}
	require.True(t, l.Load(context.Background(), first))

	markup, n := second.snapshot()
	assert.Empty(t, markup)
	assert.Zero(t, n)
}

func TestProjectServiceTimeout(t *testing.T) {
	t.Parallel()

	ps := NewProjectService(blockingSource{}, 10*time.Millisecond)
	_, err := ps.Fetch(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProjectServiceWrapsParseErrors(t *testing.T) {
	t.Parallel()

	ps := NewProjectService(stubSource{data: []byte(`nope`)}, 0)
	_, err := ps.Fetch(context.Background())
	require.ErrorIs(t, err, models.ErrMalformed)
	assert.Contains(t, err.Error(), "parse stub")
}
