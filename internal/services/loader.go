package services

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"tidepool.dev/internal/render"
)

// Container receives the rendered project markup as a whole.
type Container interface {
	Replace(markup string)
}

// ContentLoader fetches projects and swaps them into a container.
// Failures never propagate: they are logged and the container is left as it was.
type ContentLoader struct {
	projects *ProjectService
	logger   hclog.Logger
}

// NewContentLoader creates a ContentLoader
func NewContentLoader(ps *ProjectService, logger hclog.Logger) *ContentLoader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ContentLoader{projects: ps, logger: logger}
}

// Load runs one fetch-and-render pass into c and reports whether c changed
func (l *ContentLoader) Load(ctx context.Context, c Container) bool {
	projects, err := l.projects.Fetch(ctx)
	if err != nil {
		l.logger.Warn("could not load projects", "source", l.projects.Source(), "error", err)
		return false
	}

	c.Replace(render.Projects(projects))
	l.logger.Debug("projects rendered", "count", len(projects))
	return true
}

// Start runs Load in the background. The returned channel is closed once the
// pass has finished, successfully or not.
func (l *ContentLoader) Start(ctx context.Context, c Container) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Load(ctx, c)
	}()
	return done
}
