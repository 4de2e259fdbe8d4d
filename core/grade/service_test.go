package grade_test

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/alama/core"
	"github.com/trezcool/alama/core/course"
	"github.com/trezcool/alama/core/grade"
	"github.com/trezcool/alama/core/student"
	logsvc "github.com/trezcool/alama/services/logger"
	"github.com/trezcool/alama/storage/gradedb"
	"github.com/trezcool/alama/storage/kvstore"
)

func setup(t *testing.T) (*grade.Service, grade.Repository) {
	t.Helper()
	db, err := gradedb.Open(context.Background(), kvstore.NewMemory(), logsvc.NewConsoleLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := gradedb.NewGradeRepository(db)
	svc := grade.NewService(repo, gradedb.NewStudentRepository(db), gradedb.NewCourseRepository(db))
	return svc, repo
}

func assertValidationErr(t *testing.T, err error, field string) {
	t.Helper()
	var vErr *core.ValidationError
	if !assert.ErrorAs(t, err, &vErr) {
		return
	}
	for _, fld := range vErr.Fields {
		if fld.Field == field {
			return
		}
	}
	t.Errorf("no error reported for field %q: %+v", field, vErr.Fields)
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("out-of-range value is rejected, collection unchanged", func(t *testing.T) {
		svc, repo := setup(t)
		before, _ := repo.QueryAllGrades(ctx)

		for _, value := range []int{-1, 101, 150} {
			_, err := svc.Create(ctx, grade.NewGrade{StudentID: "1", CourseID: "1", Value: value})
			assertValidationErr(t, err, "value")
		}

		after, _ := repo.QueryAllGrades(ctx)
		assert.Equal(t, before, after)
	})

	t.Run("unknown student", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.Create(ctx, grade.NewGrade{StudentID: "404", CourseID: "1", Value: 85})
		assert.ErrorIs(t, err, student.ErrNotFound)
	})

	t.Run("unknown course", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.Create(ctx, grade.NewGrade{StudentID: "1", CourseID: "404", Value: 85})
		assert.ErrorIs(t, err, course.ErrNotFound)
	})

	t.Run("valid grade", func(t *testing.T) {
		svc, _ := setup(t)
		g, err := svc.Create(ctx, grade.NewGrade{StudentID: "1", CourseID: "2", Value: 85})
		assert.NoError(t, err)
		assert.NotEmpty(t, g.ID)
		assert.Equal(t, 85, g.Value)
		assert.Equal(t, g.CreatedAt, g.UpdatedAt)

		got, err := svc.GetByID(ctx, g.ID)
		assert.NoError(t, err)
		assert.Equal(t, g, got)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("out-of-range value leaves grade unchanged", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Update(ctx, "1", 200)
		assertValidationErr(t, err, "value")

		got, err := svc.GetByID(ctx, "1")
		assert.NoError(t, err)
		assert.Equal(t, 85, got.Value)
	})

	t.Run("missing id", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.Update(ctx, "404", 60)
		assert.ErrorIs(t, err, grade.ErrNotFound)
	})

	t.Run("valid update touches value and UpdatedAt only", func(t *testing.T) {
		svc, _ := setup(t)
		before, err := svc.GetByID(ctx, "1")
		assert.NoError(t, err)

		got, err := svc.Update(ctx, "1", 60)
		assert.NoError(t, err)
		assert.Equal(t, 60, got.Value)
		assert.Equal(t, before.CreatedAt, got.CreatedAt)
		assert.Equal(t, before.StudentID, got.StudentID)
		assert.Equal(t, before.CourseID, got.CourseID)
	})
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo := setup(t)

	assert.ErrorIs(t, svc.Delete(ctx, "404"), grade.ErrNotFound)

	assert.NoError(t, svc.Delete(ctx, "1"))
	_, err := svc.GetByID(ctx, "1")
	assert.ErrorIs(t, err, grade.ErrNotFound)

	// the other grade is untouched
	left, err := repo.QueryAllGrades(ctx)
	assert.NoError(t, err)
	assert.Len(t, left, 1)
	assert.Equal(t, "2", left[0].ID)
}

// TestGradeLifecycle walks a full record/reject/update scenario end to end.
func TestGradeLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, repo := setup(t)

	// out-of-range add is rejected
	_, err := svc.Create(ctx, grade.NewGrade{StudentID: "1", CourseID: "1", Value: 150})
	assertValidationErr(t, err, "value")
	grades, _ := repo.QueryAllGrades(ctx)
	assert.Len(t, grades, 2) // seeds only

	// valid add
	g, err := svc.Create(ctx, grade.NewGrade{StudentID: "1", CourseID: "1", Value: 85})
	assert.NoError(t, err)

	// out-of-range update is a rejected no-op
	_, err = svc.Update(ctx, g.ID, 200)
	assertValidationErr(t, err, "value")
	got, _ := svc.GetByID(ctx, g.ID)
	assert.Equal(t, 85, got.Value)

	// valid update
	_, err = svc.Update(ctx, g.ID, 60)
	assert.NoError(t, err)
	got, _ = svc.GetByID(ctx, g.ID)
	assert.Equal(t, 60, got.Value)
}
