package course

import (
	"fmt"

	"github.com/trezcool/alama/core"
	"github.com/trezcool/alama/core/student"
)

type Course struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	TeacherID string   `json:"teacherId"`
	Students  []string `json:"students"` // enrolled student ids, insertion order
}

// HasStudent reports whether the student id is enrolled.
func (c Course) HasStudent(id string) bool {
	for _, sid := range c.Students {
		if sid == id {
			return true
		}
	}
	return false
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Name string `json:"name" validate:"required"`
}

func (nc *NewCourse) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	return core.TranslateError(core.Validate.Struct(nc))
}

// UpdateCourse defines a full replacement of an existing Course.
type UpdateCourse struct {
	ID        string   `json:"id" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	TeacherID string   `json:"teacherId" validate:"required"`
	Students  []string `json:"students"`
}

func (uc *UpdateCourse) Validate() error {
	uc.Name = core.CleanString(uc.Name)
	return core.TranslateError(core.Validate.Struct(uc))
}

// ResolveName looks a course up by id and falls back to a placeholder
// containing the raw id when not found.
func ResolveName(courses []Course, id string) string {
	for _, c := range courses {
		if c.ID == id {
			return c.Name
		}
	}
	return fmt.Sprintf("Unknown Course (%s)", id)
}

// EnrolledStudents returns the students enrolled in the course,
// in enrollment order.
func EnrolledStudents(c Course, all []student.Student) []student.Student {
	byID := make(map[string]student.Student, len(all))
	for _, s := range all {
		byID[s.ID] = s
	}
	enrolled := make([]student.Student, 0, len(c.Students))
	for _, id := range c.Students {
		if s, ok := byID[id]; ok {
			enrolled = append(enrolled, s)
		}
	}
	return enrolled
}

// UnassignedStudents returns the students not enrolled in the course,
// optionally narrowed by a case-insensitive search on name or id.
func UnassignedStudents(c Course, all []student.Student, search string) []student.Student {
	unassigned := make([]student.Student, 0, len(all))
	for _, s := range all {
		if !c.HasStudent(s.ID) {
			unassigned = append(unassigned, s)
		}
	}
	return student.Search(unassigned, search)
}
