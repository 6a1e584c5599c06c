package search

import (
	"fmt"
	"sync"
	"testing"

	"callboard/internal/schema"
)

func TestSnapshotDeduplicates(t *testing.T) {
	var acc Accumulator
	acc.Add(schema.SearchDocument{Type: schema.SearchDocumentShow, ID: "99_00/the_tempest", Title: "The Tempest"})
	acc.Add(schema.SearchDocument{Type: schema.SearchDocumentPerson, ID: "fred_bloggs", Title: "Fred Bloggs"})
	acc.Add(schema.SearchDocument{Type: schema.SearchDocumentShow, ID: "99_00/the_tempest", Title: "The Tempest (dup)"})

	docs := acc.Snapshot()
	if len(docs) != 2 {
		t.Fatalf("snapshot = %d docs, want 2", len(docs))
	}
	if docs[0].Title != "The Tempest" {
		t.Errorf("first appended should win, got %q", docs[0].Title)
	}
}

func TestSameIDDifferentTypeKept(t *testing.T) {
	var acc Accumulator
	acc.Add(schema.SearchDocument{Type: schema.SearchDocumentShow, ID: "x"})
	acc.Add(schema.SearchDocument{Type: schema.SearchDocumentVenue, ID: "x"})

	if got := len(acc.Snapshot()); got != 2 {
		t.Fatalf("snapshot = %d docs, want 2", got)
	}
}

func TestConcurrentAddsAllLand(t *testing.T) {
	var acc Accumulator
	const writers = 8
	const perWriter = 200

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				acc.Add(schema.SearchDocument{
					Type: schema.SearchDocumentPerson,
					ID:   fmt.Sprintf("person_%d_%d", w, i),
				})
			}
		}(w)
	}
	wg.Wait()

	if got := acc.Len(); got != writers*perWriter {
		t.Fatalf("Len = %d, want %d", got, writers*perWriter)
	}
	if got := len(acc.Snapshot()); got != writers*perWriter {
		t.Fatalf("snapshot = %d, want %d", got, writers*perWriter)
	}
}
