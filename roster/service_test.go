package roster

import (
	"context"
	"errors"
	"testing"

	"student-records/models"
	"student-records/validation"
)

func intPtr(n int) *int { return &n }

func newSeededService(t *testing.T) *Service {
	t.Helper()
	store := NewMemoryStore()
	if err := Seed(context.Background(), store, DemoStudents()); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	return NewService(store, nil)
}

func validRequest(studentID string) models.CreateStudentRequest {
	return models.CreateStudentRequest{
		Name:      "New Student",
		Class:     "Grade 12A",
		Age:       intPtr(18),
		StudentID: studentID,
		Email:     "new@example.com",
	}
}

func TestSeedAssignsSequentialIDs(t *testing.T) {
	svc := newSeededService(t)
	students, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(students) != 5 {
		t.Fatalf("expected 5 students, got %d", len(students))
	}
	for i, s := range students {
		if s.ID != i+1 {
			t.Fatalf("expected id %d at position %d, got %d", i+1, i, s.ID)
		}
	}
}

func TestAddAssignsNextIDAndTrims(t *testing.T) {
	svc := newSeededService(t)
	req := validRequest("  S100 ")
	req.Name = "  Padded Name  "
	req.Class = " Grade 12A "

	created, err := svc.Add(context.Background(), req)
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if created.ID != 6 {
		t.Fatalf("expected id 6, got %d", created.ID)
	}
	if created.Name != "Padded Name" || created.Class != "Grade 12A" || created.StudentID != "S100" {
		t.Fatalf("expected trimmed fields, got %+v", created)
	}

	got, err := svc.Get(context.Background(), 6)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != created {
		t.Fatalf("expected %+v, got %+v", created, got)
	}
}

func TestAddDuplicateStudentID(t *testing.T) {
	svc := newSeededService(t)

	if _, err := svc.Add(context.Background(), validRequest("S200")); err != nil {
		t.Fatalf("first Add() error: %v", err)
	}
	_, err := svc.Add(context.Background(), validRequest("S200"))
	if !errors.Is(err, ErrDuplicateStudentID) {
		t.Fatalf("expected ErrDuplicateStudentID, got %v", err)
	}

	_, err = svc.Add(context.Background(), validRequest("S001"))
	if !errors.Is(err, ErrDuplicateStudentID) {
		t.Fatalf("expected ErrDuplicateStudentID for seeded id, got %v", err)
	}
}

func TestAddAgeBoundaries(t *testing.T) {
	tests := []struct {
		age     int
		wantErr bool
	}{
		{age: 4, wantErr: true},
		{age: 5, wantErr: false},
		{age: 25, wantErr: false},
		{age: 26, wantErr: true},
		{age: 30, wantErr: true},
	}

	for _, tc := range tests {
		svc := newSeededService(t)
		req := validRequest("S300")
		req.Age = intPtr(tc.age)

		_, err := svc.Add(context.Background(), req)
		var verr *validation.Error
		if tc.wantErr && !errors.As(err, &verr) {
			t.Fatalf("age %d: expected validation error, got %v", tc.age, err)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("age %d: expected success, got %v", tc.age, err)
		}
	}
}

func TestAddRejectsBlankName(t *testing.T) {
	svc := newSeededService(t)
	req := validRequest("S400")
	req.Name = "   "

	_, err := svc.Add(context.Background(), req)
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields[0].Path != "name" {
		t.Fatalf("expected name error, got %+v", verr.Fields)
	}

	students, _ := svc.List(context.Background())
	if len(students) != 5 {
		t.Fatalf("rejected student must not be stored, got %d students", len(students))
	}
}

func TestGetNotFound(t *testing.T) {
	svc := newSeededService(t)
	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByClassExactMatch(t *testing.T) {
	svc := newSeededService(t)
	if _, err := svc.Add(context.Background(), models.CreateStudentRequest{
		Name: "Lower Case", Class: "grade 10a", Age: intPtr(15), StudentID: "S500", Email: "lc@example.com",
	}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	students, err := svc.ListByClass(context.Background(), "Grade 10A")
	if err != nil {
		t.Fatalf("ListByClass() error: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("expected 2 students, got %d", len(students))
	}
	for _, s := range students {
		if s.Class != "Grade 10A" {
			t.Fatalf("unexpected class %q in result", s.Class)
		}
	}

	if _, err := svc.ListByClass(context.Background(), "Grade 99Z"); !errors.Is(err, ErrClassEmpty) {
		t.Fatalf("expected ErrClassEmpty, got %v", err)
	}
}

func TestClassesFirstSeenOrder(t *testing.T) {
	svc := newSeededService(t)
	if _, err := svc.Add(context.Background(), validRequest("S600")); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	classes, err := svc.Classes(context.Background())
	if err != nil {
		t.Fatalf("Classes() error: %v", err)
	}
	want := []models.ClassSummary{
		{ClassName: "Grade 10A", StudentCount: 2},
		{ClassName: "Grade 10B", StudentCount: 1},
		{ClassName: "Grade 11A", StudentCount: 2},
		{ClassName: "Grade 12A", StudentCount: 1},
	}
	if len(classes) != len(want) {
		t.Fatalf("expected %d classes, got %+v", len(want), classes)
	}
	for i := range want {
		if classes[i] != want[i] {
			t.Fatalf("class %d: expected %+v, got %+v", i, want[i], classes[i])
		}
	}
}

func TestClassExists(t *testing.T) {
	svc := newSeededService(t)
	ok, err := svc.ClassExists(context.Background(), "Grade 10B")
	if err != nil || !ok {
		t.Fatalf("expected Grade 10B to exist, ok=%v err=%v", ok, err)
	}
	ok, err = svc.ClassExists(context.Background(), "Grade 10b")
	if err != nil || ok {
		t.Fatalf("expected case-sensitive miss, ok=%v err=%v", ok, err)
	}
}
