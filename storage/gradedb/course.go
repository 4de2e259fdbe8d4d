package gradedb

import (
	"context"

	"github.com/trezcool/alama/core/course"
)

type courseRepository struct {
	db *DB
	t  *table[course.Course]
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db, t: db.courses}
}

func (repo *courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	repo.t.Lock()
	defer repo.t.Unlock()

	rows := append(append([]course.Course{}, repo.t.rows...), crs)
	if err := saveCollection(ctx, repo.db.store, repo.t.key, rows); err != nil {
		return course.Course{}, err
	}
	repo.t.rows = rows
	return crs, nil
}

func (repo *courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	repo.t.RLock()
	defer repo.t.RUnlock()
	return append([]course.Course{}, repo.t.rows...), nil
}

func (repo *courseRepository) GetCourseByID(ctx context.Context, id string) (course.Course, error) {
	repo.t.RLock()
	defer repo.t.RUnlock()

	for _, crs := range repo.t.rows {
		if crs.ID == id {
			return crs, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) UpdateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	repo.t.Lock()
	defer repo.t.Unlock()

	rows := append([]course.Course{}, repo.t.rows...)
	for i := range rows {
		if rows[i].ID == crs.ID {
			rows[i] = crs
			if err := saveCollection(ctx, repo.db.store, repo.t.key, rows); err != nil {
				return course.Course{}, err
			}
			repo.t.rows = rows
			return crs, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}
