// Package search accumulates the search documents emitted by export
// tasks. The accumulator is shared across concurrent tasks and
// snapshotted once for the final search artifact.
package search

import (
	"sync"

	"callboard/internal/schema"
)

// Accumulator collects search documents from concurrent writers.
// The zero value is ready to use.
type Accumulator struct {
	mu   sync.Mutex
	docs []schema.SearchDocument
}

// Add appends one search document.
func (a *Accumulator) Add(doc schema.SearchDocument) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.docs = append(a.docs, doc)
}

// Len reports how many documents have been appended, duplicates
// included.
func (a *Accumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.docs)
}

// Snapshot returns the accumulated documents with exactly one entry
// per (type, id), keeping the first appended. Append order is
// otherwise preserved.
func (a *Accumulator) Snapshot() []schema.SearchDocument {
	a.mu.Lock()
	defer a.mu.Unlock()

	type key struct {
		docType schema.SearchDocumentType
		id      string
	}
	seen := make(map[key]struct{}, len(a.docs))
	out := make([]schema.SearchDocument, 0, len(a.docs))
	for _, doc := range a.docs {
		k := key{docType: doc.Type, id: doc.ID}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, doc)
	}
	return out
}
