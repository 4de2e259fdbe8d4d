package student

import (
	"fmt"
	"strings"

	"github.com/trezcool/alama/core"
)

type Student struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	return core.TranslateError(core.Validate.Struct(ns))
}

// ResolveName looks a student up by id and falls back to a placeholder
// containing the raw id when not found.
func ResolveName(students []Student, id string) string {
	for _, s := range students {
		if s.ID == id {
			return s.Name
		}
	}
	return fmt.Sprintf("Unknown Student (%s)", id)
}

// Search filters students on a case-insensitive substring match against
// the name or the id. An empty term matches everything.
func Search(students []Student, term string) []Student {
	term = core.CleanString(term, true /* lower */)
	if term == "" {
		return students
	}
	matches := make([]Student, 0, len(students))
	for _, s := range students {
		if strings.Contains(strings.ToLower(s.Name), term) || strings.Contains(strings.ToLower(s.ID), term) {
			matches = append(matches, s)
		}
	}
	return matches
}
