package gradedb

import (
	"time"

	"github.com/trezcool/alama/core/course"
	"github.com/trezcool/alama/core/grade"
	"github.com/trezcool/alama/core/student"
)

var seedDate = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

// Demo seed collections installed on first load. Returned as fresh copies so
// callers may mutate freely.

func SeedStudents() []student.Student {
	return []student.Student{
		{ID: "1", Name: "Ana Popescu", Email: "ana.popescu@example.com"},
		{ID: "2", Name: "Ion Ionescu", Email: "ion.ionescu@example.com"},
		{ID: "3", Name: "Maria Marinescu", Email: "maria.marinescu@example.com"},
		{ID: "4", Name: "Mihai Georgescu", Email: "mihai.georgescu@example.com"},
		{ID: "5", Name: "Elena Vasilescu", Email: "elena.vasilescu@example.com"},
	}
}

func SeedCourses() []course.Course {
	return []course.Course{
		{ID: "1", Name: "Mathematics", TeacherID: "1", Students: []string{"1", "2"}},
		{ID: "2", Name: "Physics", TeacherID: "1", Students: []string{"1", "3"}},
	}
}

func SeedGrades() []grade.Grade {
	return []grade.Grade{
		{ID: "1", StudentID: "1", CourseID: "1", Value: 85, CreatedAt: seedDate, UpdatedAt: seedDate},
		{ID: "2", StudentID: "2", CourseID: "1", Value: 92, CreatedAt: seedDate, UpdatedAt: seedDate},
	}
}
