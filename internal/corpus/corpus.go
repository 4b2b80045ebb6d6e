// Package corpus reads evaluation documents from a YAML stream. Each YAML
// document in the stream holds the gold and system label sets of one item:
//
//	id: doc-1
//	gold: [PER, LOC]
//	system: [PER, ORG]
//	---
//	id: doc-2
//	gold: [LOC]
//	system: []
package corpus

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/kbukum/inspectree/pair"
	"github.com/kbukum/inspectree/set"
)

// Labels is a gold/system pair of label sets.
type Labels = pair.Pair[set.Set[string], set.Set[string]]

// Document is one entry of the corpus.
type Document struct {
	ID     string   `yaml:"id"`
	Gold   []string `yaml:"gold"`
	System []string `yaml:"system"`
}

// Labels returns the document's label sets. Repeated labels collapse.
func (d Document) Labels() Labels {
	return pair.Of(set.FromSlice(d.Gold), set.FromSlice(d.System))
}

// Reader decodes documents one at a time from a YAML stream. It implements
// inspector.Iterator[Labels].
type Reader struct {
	dec    *yaml.Decoder
	closer io.Closer
	index  int
	last   Document
}

// NewReader reads documents from r. If r is an io.Closer, Close closes it.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{dec: yaml.NewDecoder(r)}
	if c, ok := r.(io.Closer); ok {
		rd.closer = c
	}
	return rd
}

// Open opens a corpus file.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: opening %s: %w", path, err)
	}
	return NewReader(f), nil
}

// Next decodes the next document and returns its label sets. Empty YAML
// documents are skipped.
func (r *Reader) Next(_ context.Context) (Labels, bool, error) {
	for {
		var doc Document
		err := r.dec.Decode(&doc)
		if stderrors.Is(err, io.EOF) {
			return Labels{}, false, nil
		}
		if err != nil {
			return Labels{}, false, fmt.Errorf("corpus: document %d: %w", r.index+1, err)
		}
		if doc.ID == "" && doc.Gold == nil && doc.System == nil {
			continue
		}
		r.index++
		if doc.ID == "" {
			doc.ID = fmt.Sprintf("doc-%d", r.index)
		}
		r.last = doc
		return doc.Labels(), true, nil
	}
}

// Current returns the document last returned by Next.
func (r *Reader) Current() Document { return r.last }

// Count returns the number of documents read so far.
func (r *Reader) Count() int { return r.index }

// Close releases the underlying reader.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
