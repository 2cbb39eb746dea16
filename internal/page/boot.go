package page

import (
	"context"
	"time"

	"tidepool.dev/internal/motion"
	"tidepool.dev/internal/services"
)

// View is everything the page shell needs for one page load
type View struct {
	Year          int
	Projects      string
	Plan          motion.Plan
	ReducedMotion bool
}

// Boot runs the page-load sequence: year, project load, motion setup and,
// once the grid has rendered, the scroll-trigger refresh.
type Boot struct {
	loader *services.ContentLoader
	now    func() time.Time
}

// NewBoot creates a Boot. A nil clock uses time.Now.
func NewBoot(loader *services.ContentLoader, now func() time.Time) *Boot {
	if now == nil {
		now = time.Now
	}
	return &Boot{loader: loader, now: now}
}

// Run executes the sequence for one page load. Every run starts from an
// empty grid; a broken project document leaves it empty and never fails Run.
func (b *Boot) Run(ctx context.Context, reduced bool) View {
	view := View{
		Year:          b.now().Year(),
		ReducedMotion: reduced,
	}

	grid := &Grid{}
	rendered := b.loader.Start(ctx, grid)
	view.Plan = motion.Build(reduced)

	select {
	case <-rendered:
		// Newly inserted articles need their trigger regions measured.
		view.Plan.RefreshScrollTriggers = !reduced
	case <-ctx.Done():
	}

	view.Projects = grid.HTML()
	return view
}
