package gradedb

import (
	"context"

	"github.com/trezcool/alama/core/grade"
)

type gradeRepository struct {
	db *DB
	t  *table[grade.Grade]
}

var _ grade.Repository = (*gradeRepository)(nil) // interface compliance check

func NewGradeRepository(db *DB) grade.Repository {
	return &gradeRepository{db: db, t: db.grades}
}

func (repo *gradeRepository) CreateGrade(ctx context.Context, g grade.Grade) (grade.Grade, error) {
	repo.t.Lock()
	defer repo.t.Unlock()

	rows := append(append([]grade.Grade{}, repo.t.rows...), g)
	if err := saveCollection(ctx, repo.db.store, repo.t.key, rows); err != nil {
		return grade.Grade{}, err
	}
	repo.t.rows = rows
	return g, nil
}

func (repo *gradeRepository) QueryAllGrades(ctx context.Context) ([]grade.Grade, error) {
	repo.t.RLock()
	defer repo.t.RUnlock()
	return append([]grade.Grade{}, repo.t.rows...), nil
}

func (repo *gradeRepository) GetGradeByID(ctx context.Context, id string) (grade.Grade, error) {
	repo.t.RLock()
	defer repo.t.RUnlock()

	for _, g := range repo.t.rows {
		if g.ID == id {
			return g, nil
		}
	}
	return grade.Grade{}, grade.ErrNotFound
}

func (repo *gradeRepository) FilterGrades(ctx context.Context, filter grade.QueryFilter) ([]grade.Grade, error) {
	repo.t.RLock()
	defer repo.t.RUnlock()

	matches := make([]grade.Grade, 0, len(repo.t.rows))
	for _, g := range repo.t.rows {
		if filter.Match(g) {
			matches = append(matches, g)
		}
	}
	return matches, nil
}

func (repo *gradeRepository) UpdateGrade(ctx context.Context, g grade.Grade) (grade.Grade, error) {
	repo.t.Lock()
	defer repo.t.Unlock()

	rows := append([]grade.Grade{}, repo.t.rows...)
	for i := range rows {
		if rows[i].ID == g.ID {
			rows[i] = g
			if err := saveCollection(ctx, repo.db.store, repo.t.key, rows); err != nil {
				return grade.Grade{}, err
			}
			repo.t.rows = rows
			return g, nil
		}
	}
	return grade.Grade{}, grade.ErrNotFound
}

func (repo *gradeRepository) DeleteGrade(ctx context.Context, id string) error {
	repo.t.Lock()
	defer repo.t.Unlock()

	rows := make([]grade.Grade, 0, len(repo.t.rows))
	var found bool
	for _, g := range repo.t.rows {
		if g.ID == id {
			found = true
			continue
		}
		rows = append(rows, g)
	}
	if !found {
		return grade.ErrNotFound
	}
	if err := saveCollection(ctx, repo.db.store, repo.t.key, rows); err != nil {
		return err
	}
	repo.t.rows = rows
	return nil
}
