package student_test

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/alama/core"
	"github.com/trezcool/alama/core/student"
	logsvc "github.com/trezcool/alama/services/logger"
	"github.com/trezcool/alama/storage/gradedb"
	"github.com/trezcool/alama/storage/kvstore"
)

func setup(t *testing.T) *student.Service {
	t.Helper()
	db, err := gradedb.Open(context.Background(), kvstore.NewMemory(), logsvc.NewConsoleLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return student.NewService(gradedb.NewStudentRepository(db))
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	t.Run("invalid input", func(t *testing.T) {
		_, err := svc.Create(ctx, student.NewStudent{Name: "No Email"})
		var vErr *core.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Create(ctx, student.NewStudent{Name: "Clone", Email: "ana.popescu@example.com"})
		var vErr *core.ValidationError
		if assert.ErrorAs(t, err, &vErr) {
			assert.ErrorIs(t, vErr.Err, student.ErrEmailExists)
		}
	})

	t.Run("valid input", func(t *testing.T) {
		std, err := svc.Create(ctx, student.NewStudent{Name: " New Kid ", Email: "KID@test.cd"})
		assert.NoError(t, err)
		assert.NotEmpty(t, std.ID)
		assert.Equal(t, "New Kid", std.Name)
		assert.Equal(t, "kid@test.cd", std.Email)

		got, err := svc.GetByID(ctx, std.ID)
		assert.NoError(t, err)
		assert.Equal(t, std, got)
	})
}
