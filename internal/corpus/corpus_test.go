package corpus

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/inspectree/inspector"
	"github.com/kbukum/inspectree/set"
)

const sample = `
id: a
gold: [PER, LOC, PER]
system: [PER]
---
gold: [ORG]
system: [ORG, MISC]
`

func TestReader_Next(t *testing.T) {
	r := NewReader(strings.NewReader(sample))
	ctx := context.Background()

	labels, ok, err := r.Next(ctx)
	if err != nil || !ok {
		t.Fatalf("expected first document, got ok=%v err=%v", ok, err)
	}
	if !labels.First().Equal(set.Of("PER", "LOC")) || !labels.Second().Equal(set.Of("PER")) {
		t.Fatalf("unexpected labels %v", labels)
	}
	if r.Current().ID != "a" {
		t.Errorf("expected id a, got %q", r.Current().ID)
	}

	if _, ok, err = r.Next(ctx); err != nil || !ok {
		t.Fatalf("expected second document, got ok=%v err=%v", ok, err)
	}
	if r.Current().ID != "doc-2" {
		t.Errorf("expected generated id doc-2, got %q", r.Current().ID)
	}

	if _, ok, err = r.Next(ctx); err != nil || ok {
		t.Fatalf("expected exhaustion, got ok=%v err=%v", ok, err)
	}
	if r.Count() != 2 {
		t.Errorf("expected 2 documents, got %d", r.Count())
	}
	if err := r.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}

func TestReader_MalformedDocument(t *testing.T) {
	r := NewReader(strings.NewReader("gold: [a\n"))
	if _, _, err := r.Next(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReader_DrainsIntoTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	r, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	b := inspector.NewBuilder()
	in := inspector.PairedInputOf[set.Set[string]](b)
	c := inspector.NewCollector[Labels]()
	inspector.Inspect(in).With(c)

	feed := inspector.MustOpen(b.Build(), in)
	if err := inspector.Drain[Labels](context.Background(), r, feed); err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(c.Items()) != 2 || !c.Finished() {
		t.Fatalf("expected 2 items and finish, got %d items", len(c.Items()))
	}
}
