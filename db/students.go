package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"student-records/models"
	"student-records/roster"
)

// StudentStore is a roster.Store backed by SQL.
type StudentStore struct {
	db *sql.DB
}

var _ roster.Store = (*StudentStore)(nil)

func NewStudentStore(conn *sql.DB) (*StudentStore, error) {
	if conn == nil {
		return nil, fmt.Errorf("database is required")
	}
	return &StudentStore{db: conn}, nil
}

const studentColumns = `id, name, class_name, age, student_id, email`

func (s *StudentStore) List(ctx context.Context) ([]models.Student, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+studentColumns+` FROM students ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	return scanStudents(rows)
}

func (s *StudentStore) Get(ctx context.Context, id int) (models.Student, error) {
	var st models.Student
	err := s.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE id = ?`, id).Scan(
		&st.ID,
		&st.Name,
		&st.Class,
		&st.Age,
		&st.StudentID,
		&st.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Student{}, roster.ErrNotFound
		}
		return models.Student{}, fmt.Errorf("query student %d: %w", id, err)
	}
	return st, nil
}

func (s *StudentStore) Add(ctx context.Context, st models.Student) (models.Student, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Student{}, fmt.Errorf("begin insert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM students WHERE student_id = ?)`, st.StudentID).Scan(&exists); err != nil {
		return models.Student{}, fmt.Errorf("check student id: %w", err)
	}
	if exists {
		return models.Student{}, roster.ErrDuplicateStudentID
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO students (name, class_name, age, student_id, email) VALUES (?, ?, ?, ?, ?)`,
		st.Name, st.Class, st.Age, st.StudentID, st.Email,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.Student{}, roster.ErrDuplicateStudentID
		}
		return models.Student{}, fmt.Errorf("insert student: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Student{}, fmt.Errorf("read student id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return models.Student{}, fmt.Errorf("commit insert: %w", err)
	}

	st.ID = int(id)
	return st, nil
}

func (s *StudentStore) FindByClass(ctx context.Context, className string) ([]models.Student, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+studentColumns+` FROM students WHERE class_name = ? ORDER BY id`, className)
	if err != nil {
		return nil, fmt.Errorf("query class students: %w", err)
	}
	return scanStudents(rows)
}

func scanStudents(rows *sql.Rows) ([]models.Student, error) {
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var st models.Student
		if err := rows.Scan(&st.ID, &st.Name, &st.Class, &st.Age, &st.StudentID, &st.Email); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}
	return students, nil
}
