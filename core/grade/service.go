package grade

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/alama/core"
	"github.com/trezcool/alama/core/course"
	"github.com/trezcool/alama/core/student"
)

var (
	// errors
	ErrNotFound        = errors.New("grade not found")
	ErrValueOutOfRange = errors.New("grade value must be between 0 and 100")
)

type (
	Repository interface {
		CreateGrade(ctx context.Context, g Grade) (Grade, error)
		QueryAllGrades(ctx context.Context) ([]Grade, error)
		GetGradeByID(ctx context.Context, id string) (Grade, error)
		// FilterGrades applies AND operation on available QueryFilter fields.
		FilterGrades(ctx context.Context, filter QueryFilter) ([]Grade, error)
		UpdateGrade(ctx context.Context, g Grade) (Grade, error)
		DeleteGrade(ctx context.Context, id string) error
	}

	// StudentDirectory and CourseDirectory are the store slices needed to
	// reject grades referencing records that do not exist.
	StudentDirectory interface {
		GetStudentByID(ctx context.Context, id string) (student.Student, error)
	}
	CourseDirectory interface {
		GetCourseByID(ctx context.Context, id string) (course.Course, error)
	}

	Service struct {
		repo     Repository
		students StudentDirectory
		courses  CourseDirectory
	}
)

func NewService(repo Repository, students StudentDirectory, courses CourseDirectory) *Service {
	return &Service{repo: repo, students: students, courses: courses}
}

// nowFunc stamps CreatedAt/UpdatedAt; mockable. Day precision in UTC.
var nowFunc = func() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func (svc *Service) Create(ctx context.Context, ng NewGrade) (Grade, error) {
	if err := ng.Validate(); err != nil {
		return Grade{}, err
	}
	if _, err := svc.students.GetStudentByID(ctx, ng.StudentID); err != nil {
		return Grade{}, err
	}
	if _, err := svc.courses.GetCourseByID(ctx, ng.CourseID); err != nil {
		return Grade{}, err
	}
	now := nowFunc()
	g := Grade{
		ID:        uuid.NewString(),
		StudentID: ng.StudentID,
		CourseID:  ng.CourseID,
		Value:     ng.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateGrade(ctx, g)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Grade, error) {
	return svc.repo.QueryAllGrades(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Grade, error) {
	return svc.repo.GetGradeByID(ctx, id)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Grade, error) {
	return svc.repo.FilterGrades(ctx, filter)
}

// Update sets a new value on an existing grade, touching UpdatedAt only.
// The stored grade is left unchanged when the value is out of range.
func (svc *Service) Update(ctx context.Context, id string, value int) (Grade, error) {
	if value < 0 || value > 100 {
		return Grade{}, core.NewValidationError(ErrValueOutOfRange,
			core.FieldError{Field: "value", Error: ErrValueOutOfRange.Error()})
	}
	g, err := svc.repo.GetGradeByID(ctx, id)
	if err != nil {
		return Grade{}, err
	}
	g.Value = value
	g.UpdatedAt = nowFunc()
	return svc.repo.UpdateGrade(ctx, g)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteGrade(ctx, id)
}
