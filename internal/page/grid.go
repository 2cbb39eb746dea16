package page

import "sync"

// Grid is the project grid container. Its content is only ever replaced
// wholesale, never patched.
type Grid struct {
	mu     sync.RWMutex
	markup string
}

// Replace swaps the grid content for markup
func (g *Grid) Replace(markup string) {
	g.mu.Lock()
	g.markup = markup
	g.mu.Unlock()
}

// HTML returns the current grid content
func (g *Grid) HTML() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.markup
}
