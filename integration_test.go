package msgsource_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ZaguanLabs/msgsource"
	"github.com/ZaguanLabs/msgsource/cache"
	"github.com/ZaguanLabs/msgsource/extract"
	"github.com/ZaguanLabs/msgsource/interchange"
)

// Integration tests using all real components

func TestIntegration_ExtractWriteRead(t *testing.T) {
	root := t.TempDir()
	store := msgsource.NewStore(root)

	page := `<main><h1 data-i18n="title">Welcome</h1><p data-i18n="lead" data-i18n-comment="Intro text">Start here</p></main>`
	found, err := extract.NewHTMLExtractor().Extract(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if err := store.Write("site", "en", extract.Merge(nil, found, false)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// A fresh store has an empty cache and must read the file.
	fresh := msgsource.NewStore(root)
	c, err := fresh.GetMessages("site", "en")
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if e, _ := c.Get("lead"); e.Message != "Start here" || e.Comment != "Intro text" {
		t.Errorf("lead = %+v", e)
	}
	if ids := c.IDs(); len(ids) != 2 || ids[0] != "title" {
		t.Errorf("IDs() = %v", ids)
	}
}

func TestIntegration_ImportFormats(t *testing.T) {
	docs := map[interchange.Format]string{
		interchange.JSON: `{"hello": {"message": "Hallo", "comment": "greeting"}}`,
		interchange.YAML: "hello:\n  message: Hallo\n  comment: greeting\n",
		interchange.TOML: "[hello]\nmessage = \"Hallo\"\ncomment = \"greeting\"\n",
	}

	for format, doc := range docs {
		t.Run(string(format), func(t *testing.T) {
			store := msgsource.NewStore(t.TempDir())

			raw, err := interchange.Decode(strings.NewReader(doc), format)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if err := store.WriteRaw("app", "de", raw); err != nil {
				t.Fatalf("WriteRaw failed: %v", err)
			}

			path, _ := store.Path("app", "de")
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			want := "[\n    // greeting\n    \"hello\" => \"Hallo\",\n]\n"
			if string(data) != want {
				t.Errorf("file = %q, want %q", data, want)
			}
		})
	}
}

func TestIntegration_EnvelopeBetweenStores(t *testing.T) {
	src := msgsource.NewStore(t.TempDir())
	c := msgsource.NewCatalog()
	c.Set("a", msgsource.Entry{Message: "Eins"})
	c.Set("b", msgsource.Entry{Message: "Zwei", Comment: "number"})
	if err := src.Write("nums", "de", c); err != nil {
		t.Fatal(err)
	}

	stored, err := src.GetMessages("nums", "de")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := interchange.WriteEnvelope(&buf, "nums", "de", stored, time.Now()); err != nil {
		t.Fatal(err)
	}

	env, imported, err := interchange.ReadEnvelope(&buf)
	if err != nil {
		t.Fatalf("ReadEnvelope failed: %v", err)
	}

	dst := msgsource.NewStore(t.TempDir())
	if err := dst.Write(env.Category, env.Locale, imported); err != nil {
		t.Fatal(err)
	}

	got, err := dst.GetMessages("nums", "de")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(c) {
		t.Error("catalog changed in transit")
	}
	if msgsource.HashCatalog(got) != env.SHA256 {
		t.Error("hash of imported catalog should match the envelope")
	}
}

func TestIntegration_SharedCache(t *testing.T) {
	root := t.TempDir()
	shared := cache.NewMemory[*msgsource.Catalog]()

	writer := msgsource.NewStore(root, msgsource.WithCache(shared))
	reader := msgsource.NewStore(root, msgsource.WithCache(shared))

	c := msgsource.NewCatalog()
	c.Set("k", msgsource.Entry{Message: "v1"})
	if err := writer.Write("cat", "en", c); err != nil {
		t.Fatal(err)
	}
	if msg, _, _ := reader.GetMessage("k", "cat", "en"); msg != "v1" {
		t.Errorf("reader saw %q, want v1", msg)
	}

	c.Set("k", msgsource.Entry{Message: "v2"})
	if err := writer.Write("cat", "en", c); err != nil {
		t.Fatal(err)
	}
	if msg, _, _ := reader.GetMessage("k", "cat", "en"); msg != "v2" {
		t.Errorf("reader saw %q after rewrite, want v2", msg)
	}
	if shared.Len() != 1 {
		t.Errorf("shared cache has %d entries, want 1", shared.Len())
	}
}

func TestIntegration_ConcurrentWriters(t *testing.T) {
	root := t.TempDir()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Separate stores share nothing but the file.
			s := msgsource.NewStore(root)
			c := msgsource.NewCatalog()
			c.Set("writer", msgsource.Entry{Message: strings.Repeat("x", i+1)})
			if err := s.Write("race", "en", c); err != nil {
				t.Errorf("writer %d: %v", i, err)
			}
		}()
	}
	wg.Wait()

	c, err := msgsource.NewStore(root).GetMessages("race", "en")
	if err != nil {
		t.Fatalf("file should be a complete catalog after concurrent writes: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	matches, _ := filepath.Glob(filepath.Join(root, "en", "*"))
	for _, m := range matches {
		base := filepath.Base(m)
		if base != "race.cat" && base != "race.cat.lock" {
			t.Errorf("leftover temporary file %s", base)
		}
	}
}

func TestIntegration_CorruptFileSurfaces(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "en"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "en", "app.cat"), []byte("<?php return [];"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := msgsource.NewStore(root).GetMessage("x", "app", "en")
	var cerr *msgsource.CorruptDataError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CorruptDataError, got %v", err)
	}
	var serr *msgsource.SyntaxError
	if !errors.As(err, &serr) {
		t.Errorf("expected wrapped SyntaxError, got %v", err)
	}
}
