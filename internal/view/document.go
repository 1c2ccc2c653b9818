// Package view mirrors the server-rendered board page as an in-memory HTML
// document. Components patch it through the same CSS selectors the rendered
// page exposes; each component owns a disjoint region of the tree.
package view

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// Document is the mirrored page. All access goes through the mutex: feed
// callbacks, the toast queue and the control surface all touch the tree.
type Document struct {
	mu  sync.Mutex
	doc *goquery.Document
}

// Parse builds a document from rendered HTML.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse page")
	}

	return &Document{doc: doc}, nil
}

// ParseString builds a document from an HTML string.
func ParseString(html string) (*Document, error) {
	return Parse(strings.NewReader(html))
}

// Fetch retrieves the server-rendered page and parses it.
func Fetch(ctx context.Context, client *http.Client, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build page request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch page")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("page returned %s", resp.Status)
	}

	return Parse(resp.Body)
}

// Update runs fn with exclusive access to the tree.
func (d *Document) Update(fn func(*goquery.Document)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fn(d.doc)
}

// HTML renders the whole document.
func (d *Document) HTML() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	html, err := d.doc.Html()

	return html, errors.Wrap(err, "render page")
}

// Text returns the text content of the first node matching the selector.
func (d *Document) Text(selector string) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.doc.Find(selector).First().Text()
}

// Count returns how many nodes match the selector.
func (d *Document) Count(selector string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.doc.Find(selector).Length()
}

// Attr returns an attribute of the first node matching the selector.
func (d *Document) Attr(selector, name string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.doc.Find(selector).First().Attr(name)
}

// HasClass reports whether the first node matching the selector carries the
// class.
func (d *Document) HasClass(selector, class string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.doc.Find(selector).First().HasClass(class)
}
