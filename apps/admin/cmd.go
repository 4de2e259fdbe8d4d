package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/trezcool/alama/core/auth"
	"github.com/trezcool/alama/core/course"
	"github.com/trezcool/alama/core/grade"
	"github.com/trezcool/alama/core/student"
)

var (
	errHelp        = errors.New("help provided")
	errNotSignedIn = errors.New("not signed in; run: signin -email EMAIL")
)

type commandLine struct {
	stdSvc  *student.Service
	crsSvc  *course.Service
	grdSvc  *grade.Service
	authSvc *auth.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  signin -email EMAIL                            - sign in as a known identity")
	fmt.Println("  signout                                        - sign out and reset cached state")
	fmt.Println("  whoami                                         - show the active identity")
	fmt.Println("  students [-search TERM]                        - list students")
	fmt.Println("  addstudent -name NAME -email EMAIL             - register a student")
	fmt.Println("  courses                                        - list courses")
	fmt.Println("  addcourse -name NAME                           - create a course")
	fmt.Println("  enroll -course ID -student ID                  - add a student to a course")
	fmt.Println("  withdraw -course ID -student ID                - remove a student from a course")
	fmt.Println("  addgrade -student ID -course ID -value N       - record a grade (0-100)")
	fmt.Println("  setgrade -id ID -value N                       - change a grade's value (0-100)")
	fmt.Println("  delgrade -id ID                                - delete a grade")
	fmt.Println("  report [-course ID] [-student ID]              - grades with names, bands and average")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "signin":
		cmd := flag.NewFlagSet("signin", flag.ExitOnError)
		email := cmd.String("email", "", "The identity's email.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *email == "" {
			cmd.Usage()
			return errHelp
		}
		return cli.signIn(ctx, *email)

	case "signout":
		return cli.authSvc.SignOut(ctx)

	case "whoami":
		return cli.whoAmI()

	case "students":
		cmd := flag.NewFlagSet("students", flag.ExitOnError)
		search := cmd.String("search", "", "Case-insensitive match on name or id.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listStudents(ctx, *search)

	case "addstudent":
		cmd := flag.NewFlagSet("addstudent", flag.ExitOnError)
		name := cmd.String("name", "", "The student's full name.")
		email := cmd.String("email", "", "The student's email.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.addStudent(ctx, *name, *email)

	case "courses":
		return cli.listCourses(ctx)

	case "addcourse":
		cmd := flag.NewFlagSet("addcourse", flag.ExitOnError)
		name := cmd.String("name", "", "The course name.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.addCourse(ctx, *name)

	case "enroll", "withdraw":
		cmd := flag.NewFlagSet(args[1], flag.ExitOnError)
		courseID := cmd.String("course", "", "The course id.")
		studentID := cmd.String("student", "", "The student id.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *courseID == "" || *studentID == "" {
			cmd.Usage()
			return errHelp
		}
		return cli.changeEnrollment(ctx, args[1], *courseID, *studentID)

	case "addgrade":
		cmd := flag.NewFlagSet("addgrade", flag.ExitOnError)
		studentID := cmd.String("student", "", "The student id.")
		courseID := cmd.String("course", "", "The course id.")
		value := cmd.Int("value", 0, "The grade value, 0-100.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.addGrade(ctx, *studentID, *courseID, *value)

	case "setgrade":
		cmd := flag.NewFlagSet("setgrade", flag.ExitOnError)
		id := cmd.String("id", "", "The grade id.")
		value := cmd.Int("value", 0, "The new value, 0-100.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *id == "" {
			cmd.Usage()
			return errHelp
		}
		return cli.setGrade(ctx, *id, *value)

	case "delgrade":
		cmd := flag.NewFlagSet("delgrade", flag.ExitOnError)
		id := cmd.String("id", "", "The grade id.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *id == "" {
			cmd.Usage()
			return errHelp
		}
		return cli.deleteGrade(ctx, *id)

	case "report":
		cmd := flag.NewFlagSet("report", flag.ExitOnError)
		courseID := cmd.String("course", "", "Limit to one course.")
		studentID := cmd.String("student", "", "Limit to one student.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.report(ctx, *courseID, *studentID)

	default:
		cli.printUsage()
		return errHelp
	}
}

// requireTeacher gates the mutating commands on a signed-in teacher.
func (cli *commandLine) requireTeacher() error {
	ident, ok := cli.authSvc.Current()
	if !ok {
		return errNotSignedIn
	}
	if !ident.IsTeacher() {
		return errors.New("permission denied: teacher role required")
	}
	return nil
}
