// Package roster owns the student records and the operations on them.
package roster

import (
	"context"
	"errors"

	"student-records/models"
)

var (
	ErrNotFound           = errors.New("student not found")
	ErrClassEmpty         = errors.New("no students found in this class")
	ErrDuplicateStudentID = errors.New("student ID already exists")
)

// Store is the repository behind the roster. Add must perform the
// studentId uniqueness check and the insert as one critical section and
// assign the record its ID.
type Store interface {
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, id int) (models.Student, error)
	Add(ctx context.Context, s models.Student) (models.Student, error)
	FindByClass(ctx context.Context, className string) ([]models.Student, error)
}
