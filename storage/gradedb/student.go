package gradedb

import (
	"context"

	"github.com/trezcool/alama/core/student"
)

type studentRepository struct {
	db *DB
	t  *table[student.Student]
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db, t: db.students}
}

func (repo *studentRepository) CheckEmailUniqueness(ctx context.Context, email string) error {
	repo.t.RLock()
	defer repo.t.RUnlock()

	for _, std := range repo.t.rows {
		if std.Email == email {
			return student.ErrEmailExists
		}
	}
	return nil
}

func (repo *studentRepository) CreateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	repo.t.Lock()
	defer repo.t.Unlock()

	rows := append(append([]student.Student{}, repo.t.rows...), std)
	if err := saveCollection(ctx, repo.db.store, repo.t.key, rows); err != nil {
		return student.Student{}, err
	}
	repo.t.rows = rows
	return std, nil
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	repo.t.RLock()
	defer repo.t.RUnlock()
	return append([]student.Student{}, repo.t.rows...), nil
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id string) (student.Student, error) {
	repo.t.RLock()
	defer repo.t.RUnlock()

	for _, std := range repo.t.rows {
		if std.ID == id {
			return std, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}
