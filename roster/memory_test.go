package roster

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"student-records/models"
)

func TestMemoryStoreConcurrentAddKeepsStudentIDUnique(t *testing.T) {
	store := NewMemoryStore()
	const workers = 50

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Add(context.Background(), models.Student{Name: "Racer", Class: "C", Age: 10, StudentID: "DUP", Email: "r@example.com"})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			if !errors.Is(err, ErrDuplicateStudentID) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 {
		t.Fatalf("expected exactly one successful add, got %d", succeeded)
	}
}

func TestMemoryStoreConcurrentAddAssignsDistinctIDs(t *testing.T) {
	store := NewMemoryStore()
	const workers = 40

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.Add(context.Background(), models.Student{StudentID: fmt.Sprintf("S%03d", i)}); err != nil {
				t.Errorf("Add() error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	students, _ := store.List(context.Background())
	seen := make(map[int]bool)
	for _, s := range students {
		if seen[s.ID] {
			t.Fatalf("duplicate id %d", s.ID)
		}
		seen[s.ID] = true
		if s.ID < 1 || s.ID > workers {
			t.Fatalf("id %d out of range", s.ID)
		}
	}
}

func TestMemoryStoreListReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	_, _ = store.Add(context.Background(), models.Student{Name: "Original", StudentID: "S1"})

	list, _ := store.List(context.Background())
	list[0].Name = "Mutated"

	got, _ := store.Get(context.Background(), 1)
	if got.Name != "Original" {
		t.Fatalf("store state leaked through List, got %q", got.Name)
	}
}
