package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

type markdownKey struct {
	style string
	width int
	text  string
}

// markdownCache memoizes glamour output. Every update re-renders the page, and
// building a TermRenderer per paragraph is far too slow for that.
type markdownCache struct {
	renderers map[markdownKey]*glamour.TermRenderer
	out       map[markdownKey]string
}

func newMarkdownCache() *markdownCache {
	return &markdownCache{
		renderers: make(map[markdownKey]*glamour.TermRenderer),
		out:       make(map[markdownKey]string),
	}
}

// Render returns md rendered for the style and width. When glamour fails the
// raw text is returned so the page still shows something.
func (c *markdownCache) Render(style string, width int, md string) string {
	if width < 10 {
		width = 10
	}
	key := markdownKey{style: style, width: width, text: md}
	if s, ok := c.out[key]; ok {
		return s
	}

	rk := markdownKey{style: style, width: width}
	r, ok := c.renderers[rk]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		c.renderers[rk] = r
	}

	s, err := r.Render(md)
	if err != nil {
		return md
	}
	s = strings.Trim(s, "\n")
	c.out[key] = s
	return s
}
