package models

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	// ErrMalformed is returned when the project document is not valid JSON.
	ErrMalformed = errors.New("malformed project document")
	// ErrNotList is returned when the project document is valid JSON but not an array.
	ErrNotList = errors.New("project document is not a list")
)

// ProjectRecord represents one displayable portfolio item.
// Every field comes from an untrusted data file.
type ProjectRecord struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Demo        string   `json:"demo,omitempty"`
	Repo        string   `json:"repo,omitempty"`
}

// ParseProjects decodes a project document leniently.
//
// Mistyped fields degrade to empty values instead of failing the whole
// document, so only an invalid or non-array payload is an error.
func ParseProjects(data []byte) ([]ProjectRecord, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformed
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: got %s", ErrNotList, kindOf(root))
	}

	elements := root.Array()
	projects := make([]ProjectRecord, 0, len(elements))
	for _, el := range elements {
		projects = append(projects, recordFrom(el))
	}
	return projects, nil
}

// recordFrom builds a record from one array element
func recordFrom(el gjson.Result) ProjectRecord {
	if !el.IsObject() {
		return ProjectRecord{}
	}

	return ProjectRecord{
		Title:       textOf(el.Get("title")),
		Description: textOf(el.Get("description")),
		Tags:        tagsOf(el.Get("tags")),
		Demo:        stringOf(el.Get("demo")),
		Repo:        stringOf(el.Get("repo")),
	}
}

// textOf coerces a scalar to display text
func textOf(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return r.Raw
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	default:
		return ""
	}
}

// tagsOf treats anything but an array as no tags
func tagsOf(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	items := r.Array()
	tags := make([]string, 0, len(items))
	for _, item := range items {
		tags = append(tags, textOf(item))
	}
	return tags
}

// stringOf only accepts JSON strings
func stringOf(r gjson.Result) string {
	if r.Type != gjson.String {
		return ""
	}
	return r.Str
}

func kindOf(r gjson.Result) string {
	switch {
	case r.IsObject():
		return "object"
	case r.Type == gjson.String:
		return "string"
	case r.Type == gjson.Number:
		return "number"
	case r.Type == gjson.True, r.Type == gjson.False:
		return "boolean"
	default:
		return "null"
	}
}
