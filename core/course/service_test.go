package course_test

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/alama/core"
	"github.com/trezcool/alama/core/course"
	"github.com/trezcool/alama/core/student"
	logsvc "github.com/trezcool/alama/services/logger"
	"github.com/trezcool/alama/storage/gradedb"
	"github.com/trezcool/alama/storage/kvstore"
)

func setup(t *testing.T) *course.Service {
	t.Helper()
	db, err := gradedb.Open(context.Background(), kvstore.NewMemory(), logsvc.NewConsoleLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	conf := &core.Config{DefaultTeacherID: "1"}
	return course.NewService(gradedb.NewCourseRepository(db), gradedb.NewStudentRepository(db), conf)
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	_, err := svc.Create(ctx, course.NewCourse{Name: "  "})
	var vErr *core.ValidationError
	assert.ErrorAs(t, err, &vErr)

	crs, err := svc.Create(ctx, course.NewCourse{Name: " Chemistry "})
	assert.NoError(t, err)
	assert.NotEmpty(t, crs.ID)
	assert.Equal(t, "Chemistry", crs.Name)
	assert.Equal(t, "1", crs.TeacherID)
	assert.Empty(t, crs.Students)
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	t.Run("missing id", func(t *testing.T) {
		uc := course.UpdateCourse{ID: "404", Name: "Nope", TeacherID: "1"}
		_, err := svc.Update(ctx, uc)
		assert.ErrorIs(t, err, course.ErrNotFound)
	})

	t.Run("full replace", func(t *testing.T) {
		uc := course.UpdateCourse{ID: "1", Name: "Applied Mathematics", TeacherID: "1", Students: []string{"2"}}
		crs, err := svc.Update(ctx, uc)
		assert.NoError(t, err)
		assert.Equal(t, "Applied Mathematics", crs.Name)
		assert.Equal(t, []string{"2"}, crs.Students)
	})

	t.Run("unknown enrollment ids are rejected", func(t *testing.T) {
		before, err := svc.GetByID(ctx, "1")
		assert.NoError(t, err)

		uc := course.UpdateCourse{ID: "1", Name: "Math", TeacherID: "1", Students: []string{"404", "999"}}
		_, err = svc.Update(ctx, uc)
		assert.ErrorIs(t, err, student.ErrNotFound)

		// nothing was stored
		after, err := svc.GetByID(ctx, "1")
		assert.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("duplicate enrollments are collapsed", func(t *testing.T) {
		uc := course.UpdateCourse{ID: "1", Name: "Math", TeacherID: "1", Students: []string{"1", "2", "1", "2"}}
		crs, err := svc.Update(ctx, uc)
		assert.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, crs.Students)
	})
}

func TestServiceEnroll(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	t.Run("unknown course", func(t *testing.T) {
		_, err := svc.Enroll(ctx, "404", "1")
		assert.ErrorIs(t, err, course.ErrNotFound)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, err := svc.Enroll(ctx, "1", "404")
		assert.ErrorIs(t, err, student.ErrNotFound)
	})

	t.Run("enroll is idempotent", func(t *testing.T) {
		crs, err := svc.Enroll(ctx, "1", "3")
		assert.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, crs.Students)

		// enrolling twice keeps exactly one membership entry
		crs, err = svc.Enroll(ctx, "1", "3")
		assert.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, crs.Students)
	})
}

func TestServiceWithdraw(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	for _, id := range []string{"3", "4", "5"} {
		_, err := svc.Enroll(ctx, "1", id)
		assert.NoError(t, err)
	}

	// removes exactly the matching id, leaving the others' order unchanged
	crs, err := svc.Withdraw(ctx, "1", "2")
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "4", "5"}, crs.Students)

	// withdrawing a non-enrolled student changes nothing
	crs, err = svc.Withdraw(ctx, "1", "404")
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "4", "5"}, crs.Students)
}
