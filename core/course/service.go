package course

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/trezcool/alama/core"
	"github.com/trezcool/alama/core/student"
)

var (
	// errors
	ErrNotFound = errors.New("course not found")
)

type (
	Repository interface {
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		QueryAllCourses(ctx context.Context) ([]Course, error)
		GetCourseByID(ctx context.Context, id string) (Course, error)
		UpdateCourse(ctx context.Context, crs Course) (Course, error)
	}

	// StudentDirectory is the slice of the student store needed to
	// keep enrollments referencing existing students only.
	StudentDirectory interface {
		GetStudentByID(ctx context.Context, id string) (student.Student, error)
	}

	Service struct {
		repo     Repository
		students StudentDirectory
		conf     *core.Config
	}
)

func NewService(repo Repository, students StudentDirectory, conf *core.Config) *Service {
	return &Service{repo: repo, students: students, conf: conf}
}

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	if err := nc.Validate(); err != nil {
		return Course{}, err
	}
	crs := Course{
		ID:        uuid.NewString(),
		Name:      nc.Name,
		TeacherID: svc.conf.DefaultTeacherID,
		Students:  []string{},
	}
	return svc.repo.CreateCourse(ctx, crs)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Course, error) {
	return svc.repo.QueryAllCourses(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Course, error) {
	return svc.repo.GetCourseByID(ctx, id)
}

// Update replaces the stored course wholesale. Duplicate enrollment ids
// are collapsed, first occurrence wins; ids referencing no known student
// are rejected.
func (svc *Service) Update(ctx context.Context, uc UpdateCourse) (Course, error) {
	if err := uc.Validate(); err != nil {
		return Course{}, err
	}
	if _, err := svc.repo.GetCourseByID(ctx, uc.ID); err != nil {
		return Course{}, err
	}
	enrolled := dedupe(uc.Students)
	for _, sid := range enrolled {
		if _, err := svc.students.GetStudentByID(ctx, sid); err != nil {
			return Course{}, err
		}
	}
	crs := Course{
		ID:        uc.ID,
		Name:      uc.Name,
		TeacherID: uc.TeacherID,
		Students:  enrolled,
	}
	return svc.repo.UpdateCourse(ctx, crs)
}

// Enroll adds the student to the course. Enrolling an already enrolled
// student is a successful no-op.
func (svc *Service) Enroll(ctx context.Context, courseID, studentID string) (Course, error) {
	crs, err := svc.repo.GetCourseByID(ctx, courseID)
	if err != nil {
		return Course{}, err
	}
	if _, err = svc.students.GetStudentByID(ctx, studentID); err != nil {
		return Course{}, err
	}
	if crs.HasStudent(studentID) {
		return crs, nil
	}
	crs.Students = append(crs.Students, studentID)
	return svc.repo.UpdateCourse(ctx, crs)
}

// Withdraw removes the student from the course, leaving the order of the
// remaining enrollments unchanged.
func (svc *Service) Withdraw(ctx context.Context, courseID, studentID string) (Course, error) {
	crs, err := svc.repo.GetCourseByID(ctx, courseID)
	if err != nil {
		return Course{}, err
	}
	kept := make([]string, 0, len(crs.Students))
	for _, sid := range crs.Students {
		if sid != studentID {
			kept = append(kept, sid)
		}
	}
	crs.Students = kept
	return svc.repo.UpdateCourse(ctx, crs)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
