package testsupport

import (
	"context"
	"testing"

	"callboard/internal/store"
)

// MustOpenStore opens an in-memory store for tests and registers
// cleanup.
func MustOpenStore(t testing.TB) *store.Store {
	t.Helper()

	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// InTx runs fn inside a committed transaction.
func InTx(t testing.TB, st *store.Store, fn func(tx *store.Tx)) {
	t.Helper()

	tx, err := st.Begin(context.Background())
	if err != nil {
		t.Fatalf("store.Begin: %v", err)
	}
	fn(tx)
	if err := tx.Commit(); err != nil {
		t.Fatalf("tx.Commit: %v", err)
	}
}
