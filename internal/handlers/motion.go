package handlers

import (
	"net/http"

	"github.com/hashicorp/go-hclog"

	"tidepool.dev/internal/motion"
)

// MotionHandler serves the animation plan
type MotionHandler struct {
	reducedMotion bool
	log           hclog.Logger
}

// NewMotionHandler creates a new MotionHandler
func NewMotionHandler(reducedMotion bool, log hclog.Logger) *MotionHandler {
	return &MotionHandler{reducedMotion: reducedMotion, log: log}
}

// GetPlan handles GET /api/motion
func (h *MotionHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan := motion.Build(motion.FromRequest(r, h.reducedMotion))
	// Clients fetching the plan separately have already inserted the grid.
	plan.RefreshScrollTriggers = !plan.ReducedMotion

	w.Header().Add("Vary", motion.ClientHintHeader)
	respondJSON(w, h.log, http.StatusOK, plan)
}
