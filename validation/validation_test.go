package validation

import (
	"errors"
	"testing"

	"student-records/models"
)

func intPtr(n int) *int { return &n }

func TestStructValid(t *testing.T) {
	v := New()
	req := models.CreateStudentRequest{
		Name:      "Ada",
		Class:     "Grade 9A",
		Age:       intPtr(14),
		StudentID: "S100",
		Email:     "ada@example.com",
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStructReportsFieldsByJSONName(t *testing.T) {
	v := New()
	err := v.Struct(models.CreateStudentRequest{Email: "not-an-email", Age: intPtr(30)})

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %v", err)
	}

	got := map[string]FieldError{}
	for _, f := range verr.Fields {
		got[f.Path] = f
	}
	for _, path := range []string{"name", "class", "studentId", "email", "age"} {
		f, ok := got[path]
		if !ok {
			t.Fatalf("expected error for %q, got %+v", path, verr.Fields)
		}
		if f.Type != "field" || f.Location != "body" {
			t.Fatalf("unexpected shape for %q: %+v", path, f)
		}
	}
	if got["age"].Value != 30 {
		t.Fatalf("expected dereferenced age value 30, got %v", got["age"].Value)
	}
}

func TestStructMissingAge(t *testing.T) {
	v := New()
	err := v.Struct(models.CreateStudentRequest{
		Name:      "Ada",
		Class:     "Grade 9A",
		StudentID: "S100",
		Email:     "ada@example.com",
	})

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Path != "age" {
		t.Fatalf("expected single age error, got %+v", verr.Fields)
	}
	if verr.Fields[0].Value != nil {
		t.Fatalf("expected nil value for missing age, got %v", verr.Fields[0].Value)
	}
}
