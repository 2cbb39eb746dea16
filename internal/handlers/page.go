package handlers

import (
	"bytes"
	"net/http"

	"github.com/hashicorp/go-hclog"

	"tidepool.dev/internal/motion"
	"tidepool.dev/internal/page"
)

// PageHandler serves the portfolio page
type PageHandler struct {
	boot          *page.Boot
	renderer      *page.Renderer
	reducedMotion bool
	log           hclog.Logger
}

// NewPageHandler creates a new PageHandler. reducedMotion is the default used
// when the browser sends no reduced-motion client hint.
func NewPageHandler(boot *page.Boot, renderer *page.Renderer, reducedMotion bool, log hclog.Logger) *PageHandler {
	return &PageHandler{boot: boot, renderer: renderer, reducedMotion: reducedMotion, log: log}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	reduced := motion.FromRequest(r, h.reducedMotion)
	view := h.boot.Run(r.Context(), reduced)

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, view); err != nil {
		h.log.Error("render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Accept-CH", motion.ClientHintHeader)
	w.Header().Add("Vary", motion.ClientHintHeader)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// SkillsCSS handles GET /skills.css
func (h *PageHandler) SkillsCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.renderer.SkillsCSS()))
}
