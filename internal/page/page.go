package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"tidepool.dev/internal/motion"
)

//go:embed templates/*.html
var templateFS embed.FS

// Skill is one bar in the skills section; Level is the data-level attribute in [0,1]
type Skill struct {
	Name  string
	Level string
}

// DefaultSkills are shown when no other list is configured
var DefaultSkills = []Skill{
	{Name: "Go", Level: "0.9"},
	{Name: "TypeScript", Level: "0.8"},
	{Name: "SQL", Level: "0.7"},
	{Name: "Design", Level: "0.55"},
}

// skillRule pins a bar to its final width when motion is reduced
const skillRule = ".reduced-motion .skill--%d { width: %s; }\n"

// Renderer writes the page shell around a View
type Renderer struct {
	tmpl   *template.Template
	skills []Skill
}

// NewRenderer parses the embedded page templates
func NewRenderer(skills []Skill) (*Renderer, error) {
	tmpl, err := template.New("index.html").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	if skills == nil {
		skills = DefaultSkills
	}
	return &Renderer{tmpl: tmpl, skills: skills}, nil
}

type pageData struct {
	View
	// Grid markup was built by render.Projects, which escapes every text field.
	Grid   template.HTML
	Skills []Skill
}

// Render executes the page template for view
func (r *Renderer) Render(w io.Writer, view View) error {
	data := pageData{
		View:   view,
		Grid:   template.HTML(view.Projects),
		Skills: r.skills,
	}
	if err := r.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// SkillsCSS is the stylesheet giving every skill bar its static width under
// reduced motion. The page never carries inline styles, so a strict
// style-src policy still applies it.
func (r *Renderer) SkillsCSS() string {
	var b strings.Builder
	for i, s := range r.skills {
		fmt.Fprintf(&b, skillRule, i, motion.SkillWidth(s.Level))
	}
	return b.String()
}
