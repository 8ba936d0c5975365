package roster

import (
	"context"
	"fmt"
	"strings"

	"student-records/models"
	"student-records/validation"
)

type Service struct {
	store     Store
	validator *validation.Validator
}

func NewService(store Store, v *validation.Validator) *Service {
	if v == nil {
		v = validation.New()
	}
	return &Service{store: store, validator: v}
}

func (s *Service) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (s *Service) Get(ctx context.Context, id int) (models.Student, error) {
	return s.store.Get(ctx, id)
}

// ListByClass returns the members of className, matched exactly.
// A class without members is reported as ErrClassEmpty.
func (s *Service) ListByClass(ctx context.Context, className string) ([]models.Student, error) {
	students, err := s.store.FindByClass(ctx, className)
	if err != nil {
		return nil, fmt.Errorf("find class %q: %w", className, err)
	}
	if len(students) == 0 {
		return nil, ErrClassEmpty
	}
	return students, nil
}

func (s *Service) ClassExists(ctx context.Context, className string) (bool, error) {
	students, err := s.store.FindByClass(ctx, className)
	if err != nil {
		return false, fmt.Errorf("find class %q: %w", className, err)
	}
	return len(students) > 0, nil
}

// Add validates req and appends a new student. Text fields are stored
// trimmed.
func (s *Service) Add(ctx context.Context, req models.CreateStudentRequest) (models.Student, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Class = strings.TrimSpace(req.Class)
	req.StudentID = strings.TrimSpace(req.StudentID)

	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, err
	}

	return s.store.Add(ctx, models.Student{
		Name:      req.Name,
		Class:     req.Class,
		Age:       *req.Age,
		StudentID: req.StudentID,
		Email:     req.Email,
	})
}

// Classes lists distinct class names in first-seen order with their sizes.
func (s *Service) Classes(ctx context.Context) ([]models.ClassSummary, error) {
	students, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	index := make(map[string]int)
	classes := []models.ClassSummary{}
	for _, st := range students {
		i, ok := index[st.Class]
		if !ok {
			i = len(classes)
			index[st.Class] = i
			classes = append(classes, models.ClassSummary{ClassName: st.Class})
		}
		classes[i].StudentCount++
	}
	return classes, nil
}
