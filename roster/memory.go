package roster

import (
	"context"
	"sync"

	"student-records/models"
)

// MemoryStore keeps the roster in process memory, in insertion order.
type MemoryStore struct {
	mu       sync.RWMutex
	students []models.Student
	nextID   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (m *MemoryStore) List(_ context.Context) ([]models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Student, len(m.students))
	copy(out, m.students)
	return out, nil
}

func (m *MemoryStore) Get(_ context.Context, id int) (models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.students {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Student{}, ErrNotFound
}

func (m *MemoryStore) Add(_ context.Context, s models.Student) (models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.students {
		if existing.StudentID == s.StudentID {
			return models.Student{}, ErrDuplicateStudentID
		}
	}

	// IDs are never reused.
	s.ID = m.nextID
	m.nextID++
	m.students = append(m.students, s)
	return s, nil
}

func (m *MemoryStore) FindByClass(_ context.Context, className string) ([]models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Student{}
	for _, s := range m.students {
		if s.Class == className {
			out = append(out, s)
		}
	}
	return out, nil
}
