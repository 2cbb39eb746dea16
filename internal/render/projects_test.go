package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidepool.dev/internal/models"
)

func TestProjectsEscapesTextFields(t *testing.T) {
	t.Parallel()

	out := Projects([]models.ProjectRecord{{
		Title:       "<X>",
		Description: "a & b",
		Tags:        []string{"c++", "go"},
	}})

	assert.Equal(t, 1, strings.Count(out, `<article class="project reveal">`))
	assert.Contains(t, out, `<h3 class="project__title">&lt;X&gt;</h3>`)
	assert.Contains(t, out, `<p class="project__desc">a &amp; b</p>`)
	assert.Contains(t, out, `<span class="tag">c++</span><span class="tag">go</span>`)
	assert.NotContains(t, out, "<a ")
}

func TestProjectsKeepsOrderAndCount(t *testing.T) {
	t.Parallel()

	records := []models.ProjectRecord{
		{Title: "first"},
		{Title: "second"},
		{Title: "first"},
	}
	out := Projects(records)

	assert.Equal(t, len(records), strings.Count(out, "<article "))
	i1 := strings.Index(out, ">first<")
	i2 := strings.Index(out, ">second<")
	i3 := strings.LastIndex(out, ">first<")
	require.True(t, i1 >= 0 && i2 >= 0 && i3 >= 0)
	assert.True(t, i1 < i2 && i2 < i3, "records rendered out of order")
}

func TestProjectsEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Projects(nil))
}

func TestProjectTags(t *testing.T) {
	t.Parallel()

	none := Project(models.ProjectRecord{Title: "a"})
	assert.NotContains(t, none, `class="tag"`)

	two := Project(models.ProjectRecord{Title: "a", Tags: []string{"<b>", "<b>"}})
	assert.Equal(t, 2, strings.Count(two, `class="tag"`))
	assert.Contains(t, two, `<span class="tag">&lt;b&gt;</span><span class="tag">&lt;b&gt;</span>`)
}

func TestProjectLinks(t *testing.T) {
	t.Parallel()

	const demo = "https://tide.example/app"
	const repo = "https://git.example/tide"

	tests := []struct {
		name     string
		record   models.ProjectRecord
		wantLive bool
		wantCode bool
	}{
		{"none", models.ProjectRecord{}, false, false},
		{"demo only", models.ProjectRecord{Demo: demo}, true, false},
		{"repo only", models.ProjectRecord{Repo: repo}, false, true},
		{"both", models.ProjectRecord{Demo: demo, Repo: repo}, true, true},
		{"unsafe demo dropped", models.ProjectRecord{Demo: "javascript:alert(1)", Repo: repo}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Project(tt.record)
			assert.Equal(t, tt.wantLive, strings.Contains(out, ">Live</a>"))
			assert.Equal(t, tt.wantCode, strings.Contains(out, ">Code</a>"))
			if tt.wantLive && tt.wantCode {
				assert.Less(t, strings.Index(out, ">Live</a>"), strings.Index(out, ">Code</a>"))
			}
		})
	}
}

func TestProjectLinkMarkup(t *testing.T) {
	t.Parallel()

	out := Project(models.ProjectRecord{Demo: "https://tide.example/?a=1&b=2"})
	assert.Contains(t, out,
		`<a class="link" href="https://tide.example/?a=1&amp;b=2" target="_blank" rel="noopener noreferrer">Live</a>`)
}
