// Package gradedb implements the domain repositories on top of a core.KVStore.
// Each collection is held in memory and written back wholesale on every
// mutation, the way a browser app would sync state to local storage.
package gradedb

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/alama/core"
	"github.com/trezcool/alama/core/course"
	"github.com/trezcool/alama/core/grade"
	"github.com/trezcool/alama/core/student"
)

// Storage keys. Kept compatible with the web client's local-storage entries.
const (
	studentsKey = "grade_manager_students"
	coursesKey  = "grade_manager_courses"
	gradesKey   = "grade_manager_grades"
	sessionKey  = "grade_manager_user"
)

type (
	DB struct {
		store core.KVStore
		log   core.Logger

		students *table[student.Student]
		courses  *table[course.Course]
		grades   *table[grade.Grade]
	}

	table[T any] struct {
		sync.RWMutex
		key  string
		rows []T
	}
)

// Open loads all collections, installing the seed defaults on first use.
// Stored entries that fail to parse are logged, replaced by the defaults
// and repaired in the store; infrastructure failures are returned.
func Open(ctx context.Context, store core.KVStore, log core.Logger) (*DB, error) {
	db := &DB{
		store:    store,
		log:      log,
		students: &table[student.Student]{key: studentsKey},
		courses:  &table[course.Course]{key: coursesKey},
		grades:   &table[grade.Grade]{key: gradesKey},
	}
	if err := db.Reload(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Reload re-reads every collection from the store, dropping all cached
// state. Sign-out relies on it for its full client reset.
func (db *DB) Reload(ctx context.Context) error {
	if err := reload(ctx, db, db.students, SeedStudents()); err != nil {
		return err
	}
	if err := reload(ctx, db, db.courses, SeedCourses()); err != nil {
		return err
	}
	return reload(ctx, db, db.grades, SeedGrades())
}

func reload[T any](ctx context.Context, db *DB, t *table[T], defaults []T) error {
	rows, err := loadCollection(ctx, db.store, db.log, t.key, defaults)
	if err != nil {
		return err
	}
	t.Lock()
	t.rows = rows
	t.Unlock()
	return nil
}

func loadCollection[T any](ctx context.Context, store core.KVStore, log core.Logger, key string, defaults []T) ([]T, error) {
	data, err := store.Load(ctx, key)
	if err != nil {
		if err == core.ErrKeyNotFound {
			// first use: install and persist the defaults so subsequent
			// loads are consistent
			if err = saveCollection(ctx, store, key, defaults); err != nil {
				return nil, err
			}
			return defaults, nil
		}
		return nil, err
	}

	var rows []T
	if err = json.Unmarshal(data, &rows); err != nil {
		// corrupted entry: fall back to the defaults and repair the store
		log.Error(fmt.Sprintf("parsing stored %s: %v; restoring defaults", key, err), err)
		if err = saveCollection(ctx, store, key, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	return rows, nil
}

// saveCollection always persists, an emptied collection included.
func saveCollection[T any](ctx context.Context, store core.KVStore, key string, rows []T) error {
	if rows == nil {
		rows = []T{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", key)
	}
	return store.Save(ctx, key, data)
}
