package grade

import (
	"time"

	"github.com/trezcool/alama/core"
)

type Grade struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	CourseID  string    `json:"courseId"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"createdAt"` // UTC, day precision
	UpdatedAt time.Time `json:"updatedAt"` // UTC, day precision
}

// NewGrade contains information needed to record a new Grade.
type NewGrade struct {
	StudentID string `json:"studentId" validate:"required"`
	CourseID  string `json:"courseId" validate:"required"`
	Value     int    `json:"value" validate:"gte=0,lte=100"`
}

func (ng *NewGrade) Validate() error {
	ng.StudentID = core.CleanString(ng.StudentID)
	ng.CourseID = core.CleanString(ng.CourseID)
	return core.TranslateError(core.Validate.Struct(ng))
}

// QueryFilter narrows grade queries; zero fields match everything.
type QueryFilter struct {
	StudentID string
	CourseID  string
}

func (f QueryFilter) Match(g Grade) bool {
	if f.StudentID != "" && g.StudentID != f.StudentID {
		return false
	}
	if f.CourseID != "" && g.CourseID != f.CourseID {
		return false
	}
	return true
}
