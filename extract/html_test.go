package extract

import (
	"slices"
	"strings"
	"testing"

	"github.com/ZaguanLabs/msgsource"
)

func TestHTMLExtractor_Extract_Basic(t *testing.T) {
	x := NewHTMLExtractor()

	doc := `<div>
		<h1 data-i18n="home.title" data-i18n-comment="Page heading">Hello World</h1>
		<p data-i18n="home.welcome">Welcome to
			our <b>site</b>.</p>
		<p>Not marked</p>
	</div>`

	messages, err := x.Extract(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d: %+v", len(messages), messages)
	}

	want := []Message{
		{ID: "home.title", Text: "Hello World", Comment: "Page heading"},
		{ID: "home.welcome", Text: "Welcome to our site."},
	}
	for i := range want {
		if messages[i] != want[i] {
			t.Errorf("message %d = %+v, want %+v", i, messages[i], want[i])
		}
	}
}

func TestHTMLExtractor_Extract_IgnoredTags(t *testing.T) {
	x := NewHTMLExtractor()

	doc := `<div>
		<p data-i18n="kept">Translate me</p>
		<noscript><p data-i18n="skipped.noscript">Enable JS</p></noscript>
		<template><span data-i18n="skipped.template">Row</span></template>
	</div>`

	messages, err := x.Extract(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(messages) != 1 || messages[0].ID != "kept" {
		t.Errorf("Expected only 'kept', got %+v", messages)
	}
}

func TestHTMLExtractor_Extract_Duplicates(t *testing.T) {
	x := NewHTMLExtractor()

	doc := `<p data-i18n="a">First</p><p data-i18n=" a ">Second</p><p data-i18n="">Empty</p>`

	messages, err := x.Extract(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	if messages[0].Text != "First" {
		t.Errorf("First occurrence should win, got %q", messages[0].Text)
	}
}

func TestHTMLExtractor_CustomOptions(t *testing.T) {
	x := NewHTMLExtractor(
		WithIDAttr("data-msg"),
		WithIgnoredTags([]string{"ASIDE"}),
		WithContextComments(true),
	)

	doc := `<h2 class="title" data-msg="t">Title</h2>
		<span id="x" data-msg="s">Span</span>
		<em data-msg="e">Em</em>
		<aside><p data-msg="skipped">No</p></aside>
		<p data-i18n="other">Other attribute</p>`

	messages, err := x.Extract(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	var comments []string
	for _, m := range messages {
		comments = append(comments, m.Comment)
	}
	want := []string{`in <h2 class="title">`, `in <span id="x">`, "in <em>"}
	if !slices.Equal(comments, want) {
		t.Errorf("comments = %q, want %q", comments, want)
	}
}

func TestMerge(t *testing.T) {
	base := msgsource.NewCatalog()
	base.Set("home.title", msgsource.Entry{Message: "Hallo Welt", Comment: "translated"})

	found := []Message{
		{ID: "home.title", Text: "Hello World"},
		{ID: "home.welcome", Text: "Welcome", Comment: "new"},
	}

	merged := Merge(base, found, false)

	if msg, _ := merged.Message("home.title"); msg != "Hallo Welt" {
		t.Errorf("existing translation should be kept, got %q", msg)
	}
	if e, _ := merged.Get("home.welcome"); e.Message != "Welcome" || e.Comment != "new" {
		t.Errorf("new message not added: %+v", e)
	}
	if !slices.Equal(merged.IDs(), []string{"home.title", "home.welcome"}) {
		t.Errorf("IDs() = %v", merged.IDs())
	}
	if base.Len() != 1 {
		t.Error("Merge must not modify base")
	}

	overwritten := Merge(base, found, true)
	if msg, _ := overwritten.Message("home.title"); msg != "Hello World" {
		t.Errorf("overwrite should replace translation, got %q", msg)
	}
}

func TestMerge_NilBase(t *testing.T) {
	merged := Merge(nil, []Message{{ID: "a", Text: "A"}}, false)
	if merged.Len() != 1 {
		t.Errorf("Len() = %d, want 1", merged.Len())
	}
}
