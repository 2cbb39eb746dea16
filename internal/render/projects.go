package render

import (
	"fmt"
	"strings"

	"tidepool.dev/internal/models"
)

const (
	projectArticle = `
      <article class="project reveal">
        <h3 class="project__title">%s</h3>
        <p class="project__desc">%s</p>
        <div class="project__tags">
          %s
        </div>
        <div class="project__links">
          %s
        </div>
      </article>
    `
	projectTag  = `<span class="tag">%s</span>`
	projectLink = `<a class="link" href="%s" target="_blank" rel="noopener noreferrer">%s</a>`

	liveLabel = "Live"
	codeLabel = "Code"
)

// Projects renders records into the project grid markup, one article per
// record in input order. Records are never filtered, reordered or merged.
func Projects(records []models.ProjectRecord) string {
	var b strings.Builder
	for _, p := range records {
		b.WriteString(Project(p))
	}
	return b.String()
}

// Project renders a single record
func Project(p models.ProjectRecord) string {
	return fmt.Sprintf(projectArticle,
		EscapeHTML(p.Title),
		EscapeHTML(p.Description),
		tags(p.Tags),
		links(p),
	)
}

func tags(list []string) string {
	var b strings.Builder
	for _, t := range list {
		fmt.Fprintf(&b, projectTag, EscapeHTML(t))
	}
	return b.String()
}

// links emits the demo link before the repo link; missing or unsafe
// targets produce nothing at all
func links(p models.ProjectRecord) string {
	var b strings.Builder
	if p.Demo != "" {
		if href, ok := SafeHref(p.Demo); ok {
			fmt.Fprintf(&b, projectLink, href, liveLabel)
		}
	}
	if p.Repo != "" {
		if href, ok := SafeHref(p.Repo); ok {
			fmt.Fprintf(&b, projectLink, href, codeLabel)
		}
	}
	return b.String()
}
