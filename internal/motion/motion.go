// Package motion builds the animation choreography the page script hands to
// the animation library, gated by the visitor's reduced-motion preference.
//
// Nothing here animates. A Plan is plain data: selectors, offsets, durations
// and scroll-trigger regions. With reduced motion the plan is empty apart from
// hiding the preloader.
package motion

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

// ClientHintHeader carries the browser's prefers-reduced-motion media feature.
const ClientHintHeader = "Sec-CH-Prefers-Reduced-Motion"

// AnchorGap is the extra space kept between the sticky header and an anchor target.
const AnchorGap = 10

// FromRequest reports whether the request asks for reduced motion, falling
// back to the configured default when the client sent no hint.
func FromRequest(r *http.Request, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(r.Header.Get(ClientHintHeader))) {
	case "reduce":
		return true
	case "no-preference":
		return false
	default:
		return fallback
	}
}

// Tween is one from/to animation step
type Tween struct {
	Target   string             `json:"target"`
	From     map[string]float64 `json:"from,omitempty"`
	To       map[string]float64 `json:"to,omitempty"`
	Set      map[string]string  `json:"set,omitempty"`
	Duration float64            `json:"duration,omitempty"`
	Delay    float64            `json:"delay,omitempty"`
	Ease     string             `json:"ease,omitempty"`
	Position string             `json:"position,omitempty"`
	Yoyo     bool               `json:"yoyo,omitempty"`
	Repeat   int                `json:"repeat,omitempty"`
	Trigger  *ScrollTrigger     `json:"scrollTrigger,omitempty"`
}

// ScrollTrigger describes the viewport region that drives a tween
type ScrollTrigger struct {
	Trigger       string  `json:"trigger,omitempty"`
	Start         string  `json:"start"`
	End           string  `json:"end,omitempty"`
	ToggleActions string  `json:"toggleActions,omitempty"`
	Scrub         float64 `json:"scrub,omitempty"`
}

// Timeline is a sequence of tweens sharing default easing
type Timeline struct {
	Ease  string  `json:"ease"`
	Steps []Tween `json:"steps"`
}

// Plan is the full choreography for one page load
type Plan struct {
	ReducedMotion         bool      `json:"reducedMotion"`
	PreloaderHidden       bool      `json:"preloaderHidden"`
	Intro                 *Timeline `json:"intro,omitempty"`
	Reveal                *Tween    `json:"reveal,omitempty"`
	SkillBar              *Tween    `json:"skillBar,omitempty"`
	Waves                 []Tween   `json:"waves,omitempty"`
	Blob                  *Tween    `json:"blob,omitempty"`
	AnchorGap             int       `json:"anchorGap"`
	RefreshScrollTriggers bool      `json:"refreshScrollTriggers"`
}

// waveCount matches the wave layers drawn in the hero
const waveCount = 3

// Build returns the plan for the given preference. The scroll-trigger refresh
// is left off; the boot sequence turns it on once the grid has rendered.
func Build(reduced bool) Plan {
	if reduced {
		return Plan{ReducedMotion: true, PreloaderHidden: true, AnchorGap: AnchorGap}
	}

	waves := make([]Tween, 0, waveCount)
	for i := 0; i < waveCount; i++ {
		waves = append(waves, Tween{
			Target: ".waves .wave:nth-child(" + strconv.Itoa(i+1) + ")",
			To:     map[string]float64{"x": WaveShift(i)},
			Ease:   "none",
			Trigger: &ScrollTrigger{
				Trigger: ".hero",
				Start:   "top top",
				End:     "bottom top",
				Scrub:   1,
			},
		})
	}

	return Plan{
		Intro: introTimeline(),
		Reveal: &Tween{
			Target:   ".reveal",
			From:     map[string]float64{"y": 24, "opacity": 0},
			To:       map[string]float64{"y": 0, "opacity": 1},
			Duration: 0.9,
			Trigger: &ScrollTrigger{
				Start:         "top 85%",
				End:           "bottom 40%",
				ToggleActions: "play none none reverse",
			},
		},
		SkillBar: &Tween{
			Target:   ".skill__bar span",
			Duration: 1.1,
			Ease:     "power2.out",
			Trigger:  &ScrollTrigger{Start: "top 88%"},
		},
		Waves: waves,
		Blob: &Tween{
			Target:   ".liquid-blob",
			To:       map[string]float64{"y": 20},
			Duration: 3.2,
			Yoyo:     true,
			Repeat:   -1,
			Ease:     "sine.inOut",
		},
		AnchorGap: AnchorGap,
	}
}

func introTimeline() *Timeline {
	const overlap = "-=0.35"
	return &Timeline{
		Ease: "power3.out",
		Steps: []Tween{
			{Target: ".preloader__mark", From: map[string]float64{"y": 18, "opacity": 0}, Duration: 0.6},
			{Target: ".preloader__title", From: map[string]float64{"y": 16, "opacity": 0}, Duration: 0.6, Position: overlap},
			{Target: ".preloader__sub", From: map[string]float64{"y": 10, "opacity": 0}, Duration: 0.5, Position: overlap},
			{Target: ".preloader__waves", From: map[string]float64{"y": 14, "opacity": 0}, Duration: 0.6, Position: overlap},
			{Target: "#preloader", To: map[string]float64{"opacity": 0}, Duration: 0.55, Delay: 0.25},
			{Target: "#preloader", Set: map[string]string{"display": "none"}},
		},
	}
}

// SkillWidth converts a skill bar's data-level into its final CSS width.
// Unparseable levels count as zero and the result is clamped to 0%..100%.
func SkillWidth(level string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(level), 64)
	if err != nil || math.IsNaN(v) {
		v = 0
	}
	v = math.Max(0, math.Min(1, v))
	return strconv.Itoa(int(math.Round(v*100))) + "%"
}

// WaveShift is the horizontal parallax offset for the i-th wave layer;
// neighbouring layers drift in opposite directions.
func WaveShift(i int) float64 {
	if i%2 == 0 {
		return -80
	}
	return 80
}
