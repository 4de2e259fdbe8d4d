package main

import (
	"context"
	"fmt"

	"github.com/trezcool/alama/core/course"
	"github.com/trezcool/alama/core/grade"
	"github.com/trezcool/alama/core/student"
)

func (cli *commandLine) signIn(ctx context.Context, email string) error {
	ident, err := cli.authSvc.SignIn(ctx, email)
	if err != nil {
		return err
	}
	fmt.Printf("signed in as %s <%s> (%s)\n", ident.Name, ident.Email, ident.Role)
	return nil
}

func (cli *commandLine) whoAmI() error {
	ident, ok := cli.authSvc.Current()
	if !ok {
		fmt.Println("signed out")
		return nil
	}
	fmt.Printf("%s <%s> (%s)\n", ident.Name, ident.Email, ident.Role)
	return nil
}

func (cli *commandLine) listStudents(ctx context.Context, search string) error {
	students, err := cli.stdSvc.QueryAll(ctx)
	if err != nil {
		return err
	}
	for _, std := range student.Search(students, search) {
		fmt.Printf("%-36s  %-20s  %s\n", std.ID, std.Name, std.Email)
	}
	return nil
}

func (cli *commandLine) addStudent(ctx context.Context, name, email string) error {
	if err := cli.requireTeacher(); err != nil {
		return err
	}
	std, err := cli.stdSvc.Create(ctx, student.NewStudent{Name: name, Email: email})
	if err != nil {
		return err
	}
	fmt.Printf("created student %s (%s)\n", std.Name, std.ID)
	return nil
}

func (cli *commandLine) listCourses(ctx context.Context) error {
	courses, err := cli.crsSvc.QueryAll(ctx)
	if err != nil {
		return err
	}
	for _, crs := range courses {
		fmt.Printf("%-36s  %-20s  %d enrolled\n", crs.ID, crs.Name, len(crs.Students))
	}
	return nil
}

func (cli *commandLine) addCourse(ctx context.Context, name string) error {
	if err := cli.requireTeacher(); err != nil {
		return err
	}
	crs, err := cli.crsSvc.Create(ctx, course.NewCourse{Name: name})
	if err != nil {
		return err
	}
	fmt.Printf("created course %s (%s)\n", crs.Name, crs.ID)
	return nil
}

func (cli *commandLine) changeEnrollment(ctx context.Context, op, courseID, studentID string) error {
	if err := cli.requireTeacher(); err != nil {
		return err
	}
	var crs course.Course
	var err error
	if op == "enroll" {
		crs, err = cli.crsSvc.Enroll(ctx, courseID, studentID)
	} else {
		crs, err = cli.crsSvc.Withdraw(ctx, courseID, studentID)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d student(s) now enrolled\n", crs.Name, len(crs.Students))
	return nil
}

func (cli *commandLine) addGrade(ctx context.Context, studentID, courseID string, value int) error {
	if err := cli.requireTeacher(); err != nil {
		return err
	}
	g, err := cli.grdSvc.Create(ctx, grade.NewGrade{StudentID: studentID, CourseID: courseID, Value: value})
	if err != nil {
		return err
	}
	fmt.Printf("recorded grade %d (%s)\n", g.Value, g.ID)
	return nil
}

func (cli *commandLine) setGrade(ctx context.Context, id string, value int) error {
	if err := cli.requireTeacher(); err != nil {
		return err
	}
	g, err := cli.grdSvc.Update(ctx, id, value)
	if err != nil {
		return err
	}
	fmt.Printf("grade %s is now %d\n", g.ID, g.Value)
	return nil
}

func (cli *commandLine) deleteGrade(ctx context.Context, id string) error {
	if err := cli.requireTeacher(); err != nil {
		return err
	}
	if err := cli.grdSvc.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Printf("deleted grade %s\n", id)
	return nil
}

// report prints grades with resolved names, their band and the average.
// It requires a session: teachers see everything, a signed-in student only
// their own grades.
func (cli *commandLine) report(ctx context.Context, courseID, studentID string) error {
	ident, ok := cli.authSvc.Current()
	if !ok {
		return errNotSignedIn
	}
	if ident.IsStudent() {
		studentID = ident.ID
	}

	grades, err := cli.grdSvc.Filter(ctx, grade.QueryFilter{StudentID: studentID, CourseID: courseID})
	if err != nil {
		return err
	}
	students, err := cli.stdSvc.QueryAll(ctx)
	if err != nil {
		return err
	}
	courses, err := cli.crsSvc.QueryAll(ctx)
	if err != nil {
		return err
	}

	for _, g := range grades {
		fmt.Printf("%-20s  %-15s  %3d  %-9s  %s\n",
			student.ResolveName(students, g.StudentID),
			course.ResolveName(courses, g.CourseID),
			g.Value,
			grade.BandFor(g.Value),
			g.UpdatedAt.Format("2006-01-02"),
		)
	}
	fmt.Printf("average: %.1f\n", grade.Average(grades))
	return nil
}
