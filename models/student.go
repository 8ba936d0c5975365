package models

type Student struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Class     string `json:"class"`
	Age       int    `json:"age"`
	StudentID string `json:"studentId"`
	Email     string `json:"email"`
}

type CreateStudentRequest struct {
	Name      string `json:"name" validate:"required"`
	Class     string `json:"class" validate:"required"`
	Age       *int   `json:"age" validate:"required,min=5,max=25"`
	StudentID string `json:"studentId" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// ClassSummary is one entry of the class listing.
type ClassSummary struct {
	ClassName    string `json:"className"`
	StudentCount int    `json:"studentCount"`
}
