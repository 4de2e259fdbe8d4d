package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/trezcool/alama/core"
	"github.com/trezcool/alama/core/auth"
	"github.com/trezcool/alama/core/course"
	"github.com/trezcool/alama/core/grade"
	"github.com/trezcool/alama/core/student"
	logsvc "github.com/trezcool/alama/services/logger"
	"github.com/trezcool/alama/storage/gradedb"
	"github.com/trezcool/alama/storage/kvstore"
)

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stdout, "ADMIN : ", log.LstdFlags)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
		logger.Enable(true)
	}

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up storage: %v", err), err)
	}
	defer closeStore()

	db, err := gradedb.Open(ctx, store, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening datastore: %v", err), err)
	}

	stdRepo := gradedb.NewStudentRepository(db)
	crsRepo := gradedb.NewCourseRepository(db)
	grdRepo := gradedb.NewGradeRepository(db)
	sessRepo := gradedb.NewSessionRepository(db)

	cli := &commandLine{
		stdSvc:  student.NewService(stdRepo),
		crsSvc:  course.NewService(crsRepo, stdRepo, conf),
		grdSvc:  grade.NewService(grdRepo, stdRepo, crsRepo),
		authSvc: auth.NewService(sessRepo, auth.DefaultDirectory, db, conf, logger),
	}
	if err = cli.authSvc.Restore(ctx); err != nil {
		logger.Fatal(fmt.Sprintf("restoring session: %v", err), err)
	}

	if err = cli.run(ctx, os.Args); err != nil {
		if err == errHelp {
			os.Exit(2)
		}
		printErr(err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, conf *core.Config) (core.KVStore, func(), error) {
	noop := func() {}
	switch conf.Storage {
	case core.StorageMemory:
		return kvstore.NewMemory(), noop, nil
	case core.StorageFile:
		store, err := kvstore.NewFile(conf.DataDir)
		return store, noop, err
	case core.StorageRedis:
		store, err := kvstore.NewRedis(ctx, conf)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { _ = store.Close() }, nil
	case core.StoragePostgres:
		store, err := kvstore.NewPostgres(ctx, conf)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", conf.Storage)
	}
}

func printErr(err error) {
	if vErr, ok := err.(*core.ValidationError); ok {
		fmt.Fprintln(os.Stderr, "invalid input:")
		for _, fld := range vErr.Fields {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", fld.Field, fld.Error)
		}
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
