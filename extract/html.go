// Package extract collects translatable messages from templates so that new
// catalogs can be seeded from markup.
package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// DefaultIDAttr marks an element whose text is a message.
	DefaultIDAttr = "data-i18n"
	// CommentAttr carries an optional translator note.
	CommentAttr = "data-i18n-comment"
)

// DefaultIgnoredTags contains elements whose content is never extracted.
var DefaultIgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
	"noscript": true,
}

// Message is a message found in a document.
type Message struct {
	ID      string
	Text    string // Element text with whitespace collapsed
	Comment string
}

// HTMLExtractor finds elements carrying a message ID attribute.
//
//	<h1 data-i18n="home.title" data-i18n-comment="Page heading">Welcome</h1>
type HTMLExtractor struct {
	idAttr          string
	ignoredTags     map[string]bool
	contextComments bool
}

// HTMLExtractorOption configures the HTML extractor.
type HTMLExtractorOption func(*HTMLExtractor)

// WithIDAttr changes the attribute holding the message ID.
func WithIDAttr(attr string) HTMLExtractorOption {
	return func(x *HTMLExtractor) {
		x.idAttr = attr
	}
}

// WithIgnoredTags replaces the set of skipped elements.
func WithIgnoredTags(tags []string) HTMLExtractorOption {
	return func(x *HTMLExtractor) {
		ignored := make(map[string]bool)
		for _, tag := range tags {
			ignored[strings.ToLower(tag)] = true
		}
		x.ignoredTags = ignored
	}
}

// WithContextComments makes messages without an explicit comment carry a
// short description of where they were found, e.g. `in <h1 class="title">`.
func WithContextComments(enabled bool) HTMLExtractorOption {
	return func(x *HTMLExtractor) {
		x.contextComments = enabled
	}
}

// NewHTMLExtractor creates an extractor using DefaultIDAttr and DefaultIgnoredTags.
func NewHTMLExtractor(opts ...HTMLExtractorOption) *HTMLExtractor {
	x := &HTMLExtractor{
		idAttr:      DefaultIDAttr,
		ignoredTags: DefaultIgnoredTags,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Extract parses an HTML document and returns its messages in document
// order. When an ID occurs more than once, the first occurrence wins.
func (x *HTMLExtractor) Extract(r io.Reader) ([]Message, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var messages []Message
	seen := make(map[string]bool)

	doc.Find("[" + x.idAttr + "]").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if x.ignored(n) {
			return
		}

		id, _ := s.Attr(x.idAttr)
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			return
		}
		seen[id] = true

		comment, _ := s.Attr(CommentAttr)
		comment = strings.TrimSpace(comment)
		if comment == "" && x.contextComments {
			comment = describe(n)
		}

		messages = append(messages, Message{
			ID:      id,
			Text:    strings.Join(strings.Fields(s.Text()), " "),
			Comment: comment,
		})
	})

	return messages, nil
}

// ignored reports whether n or one of its ancestors is an ignored element.
func (x *HTMLExtractor) ignored(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && x.ignoredTags[strings.ToLower(n.Data)] {
			return true
		}
	}
	return false
}

// describe renders the element's tag with its class or id attribute.
func describe(n *html.Node) string {
	var classAttr, idAttr string
	for _, attr := range n.Attr {
		switch attr.Key {
		case "class":
			classAttr = attr.Val
		case "id":
			idAttr = attr.Val
		}
	}

	switch {
	case classAttr != "":
		return fmt.Sprintf("in <%s class=%q>", n.Data, classAttr)
	case idAttr != "":
		return fmt.Sprintf("in <%s id=%q>", n.Data, idAttr)
	default:
		return fmt.Sprintf("in <%s>", n.Data)
	}
}
