// Package dom is a small in-memory document model: a goquery tree with
// <template> lookup and DOM-style event dispatch (target to root bubbling).
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is not safe for concurrent use. Callers serialize access, the same
// way a browser runs one event handler at a time.
type Document struct {
	doc       *goquery.Document
	listeners map[*html.Node]map[string][]Listener
}

func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{doc: doc, listeners: map[*html.Node]map[string][]Listener{}}, nil
}

func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Root returns the selection holding the document node itself.
func (d *Document) Root() *goquery.Selection {
	return d.doc.Selection
}

func (d *Document) RootNode() *html.Node {
	return d.doc.Selection.Get(0)
}

func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Template returns the <template> element with the given id.
func (d *Document) Template(id string) (*Template, bool) {
	sel := d.doc.Find("template").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, ok := s.Attr("id")
		return ok && v == id
	}).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &Template{sel: sel}, true
}

func (d *Document) HTML() (string, error) {
	out, err := goquery.OuterHtml(d.doc.Selection)
	if err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return out, nil
}

// Wrap returns a selection over a single node that keeps its parent chain,
// so Closest and Parents keep working.
func Wrap(n *html.Node) *goquery.Selection {
	if n == nil {
		return &goquery.Selection{}
	}
	return goquery.NewDocumentFromNode(n).Selection
}

// Template holds the markup of a <template> element. Its content is parsed as
// children of the element.
type Template struct {
	sel *goquery.Selection
}

// Clone returns detached deep copies of the template content.
func (t *Template) Clone() *goquery.Selection {
	return t.sel.Contents().Clone()
}

// First returns the first element of a cloned fragment matching selector,
// either a top-level node or a descendant.
func First(fragment *goquery.Selection, selector string) *goquery.Selection {
	if top := fragment.Filter(selector); top.Length() > 0 {
		return top.First()
	}
	return fragment.Find(selector).First()
}
