package usecase

import (
	"testing"

	"proconnect/internal/adapter/repository"
)

func newStore(t *testing.T) *repository.EntityStore {
	t.Helper()
	st, err := repository.NewDefaultEntityStore()
	if err != nil {
		t.Fatalf("NewDefaultEntityStore: %v", err)
	}
	return st
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}
