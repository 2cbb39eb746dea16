package render

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// SafeHref resolves a demo/repo value into an escaped href.
//
// The value is either a plain URL or a legacy anchor opening fragment such as
// `<a href="https://example.com" target="_blank">`, in which case the href
// attribute is extracted first. Only http, https, mailto and scheme-less
// relative references are accepted.
func SafeHref(raw string) (string, bool) {
	target := strings.TrimSpace(raw)
	if strings.HasPrefix(target, "<") {
		var ok bool
		target, ok = hrefFromFragment(target)
		if !ok {
			return "", false
		}
	}
	if target == "" {
		return "", false
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", false
	}
	if u.Scheme != "" && !allowedSchemes[u.Scheme] {
		return "", false
	}

	return EscapeHTML(u.String()), true
}

// hrefFromFragment pulls the href out of the first anchor tag in fragment
func hrefFromFragment(fragment string) (string, bool) {
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return "", false
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "a" {
				continue
			}
			for _, attr := range tok.Attr {
				if attr.Key == "href" {
					return strings.TrimSpace(attr.Val), true
				}
			}
			return "", false
		}
	}
}
