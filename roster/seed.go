package roster

import (
	"context"
	"fmt"

	"student-records/models"
)

// DemoStudents is the roster a fresh server starts with.
func DemoStudents() []models.Student {
	return []models.Student{
		{Name: "John Doe", Class: "Grade 10A", Age: 15, StudentID: "S001", Email: "john@example.com"},
		{Name: "Jane Smith", Class: "Grade 10A", Age: 16, StudentID: "S002", Email: "jane@example.com"},
		{Name: "Bob Johnson", Class: "Grade 10B", Age: 15, StudentID: "S003", Email: "bob@example.com"},
		{Name: "Alice Brown", Class: "Grade 11A", Age: 16, StudentID: "S004", Email: "alice@example.com"},
		{Name: "Charlie Wilson", Class: "Grade 11A", Age: 17, StudentID: "S005", Email: "charlie@example.com"},
	}
}

// Seed appends students to the store in order.
func Seed(ctx context.Context, store Store, students []models.Student) error {
	for _, s := range students {
		if _, err := store.Add(ctx, s); err != nil {
			return fmt.Errorf("seed student %s: %w", s.StudentID, err)
		}
	}
	return nil
}
