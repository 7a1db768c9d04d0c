package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type declaration struct {
	prop  string
	value string
}

// SetStyle sets one inline style property on every node of sel. An empty
// value removes the property, mirroring element.style.prop = "". Other
// declarations keep their order.
func SetStyle(sel *goquery.Selection, prop, value string) {
	prop = strings.ToLower(strings.TrimSpace(prop))
	sel.Each(func(_ int, s *goquery.Selection) {
		raw, _ := s.Attr("style")
		decls := parseStyle(raw)
		out := decls[:0]
		replaced := false
		for _, d := range decls {
			if d.prop != prop {
				out = append(out, d)
				continue
			}
			if value != "" && !replaced {
				out = append(out, declaration{prop: prop, value: value})
				replaced = true
			}
		}
		if value != "" && !replaced {
			out = append(out, declaration{prop: prop, value: value})
		}
		if len(out) == 0 {
			s.RemoveAttr("style")
			return
		}
		s.SetAttr("style", formatStyle(out))
	})
}

// Style returns the inline value of prop on the first node of sel.
func Style(sel *goquery.Selection, prop string) string {
	raw, _ := sel.First().Attr("style")
	prop = strings.ToLower(strings.TrimSpace(prop))
	for _, d := range parseStyle(raw) {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}

func parseStyle(raw string) []declaration {
	var out []declaration
	for _, part := range strings.Split(raw, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		if prop == "" || value == "" {
			continue
		}
		out = append(out, declaration{prop: prop, value: value})
	}
	return out
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.value)
	}
	return strings.Join(parts, "; ") + ";"
}
