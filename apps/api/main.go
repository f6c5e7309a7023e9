package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/maitrya143/pravah/apps/api/echo"
	"github.com/maitrya143/pravah/core"
	"github.com/maitrya143/pravah/core/attendance"
	"github.com/maitrya143/pravah/core/diary"
	"github.com/maitrya143/pravah/core/feedback"
	"github.com/maitrya143/pravah/core/history"
	"github.com/maitrya143/pravah/core/student"
	"github.com/maitrya143/pravah/core/syllabus"
	"github.com/maitrya143/pravah/core/user"
	emailsvc "github.com/maitrya143/pravah/services/email"
	logsvc "github.com/maitrya143/pravah/services/logger"
	localdiskdb "github.com/maitrya143/pravah/storage/database/localdisk"
	"github.com/maitrya143/pravah/storage/database/mongodb"
)

type repositories struct {
	user       user.Repository
	student    student.Repository
	attendance attendance.Repository
	diary      diary.Repository
	feedback   feedback.Repository
	syllabus   syllabus.Repository

	close func() error
}

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	repos, err := setUpRepositories(conf, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up storage: %v", err), err)
	}
	defer func() {
		if err = repos.close(); err != nil {
			logger.Error(fmt.Sprintf("closing storage: %v", err), err)
		}
	}()

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	usrSvc := user.NewService(repos.user)
	studentSvc := student.NewService(repos.student)
	attendanceSvc := attendance.NewService(repos.attendance)
	diarySvc := diary.NewService(repos.diary)
	feedbackSvc := feedback.NewService(repos.feedback, mailSvc, conf)
	syllabusSvc := syllabus.NewService(repos.syllabus)
	historySvc := history.NewService(studentSvc, attendanceSvc, diarySvc)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:          conf,
			Logger:        logger,
			UserSvc:       usrSvc,
			StudentSvc:    studentSvc,
			AttendanceSvc: attendanceSvc,
			DiarySvc:      diarySvc,
			FeedbackSvc:   feedbackSvc,
			SyllabusSvc:   syllabusSvc,
			HistorySvc:    historySvc,
			Validate:      validate,
			Translator:    translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpRepositories(conf *core.Config, logger core.Logger) (*repositories, error) {
	switch conf.Storage.Engine {
	case "mongodb":
		db, err := mongodb.Open(conf)
		if err != nil {
			return nil, err
		}
		return &repositories{
			user:       mongodb.NewUserRepository(db),
			student:    mongodb.NewStudentRepository(db),
			attendance: mongodb.NewAttendanceRepository(db),
			diary:      mongodb.NewDiaryRepository(db),
			feedback:   mongodb.NewFeedbackRepository(db),
			syllabus:   mongodb.NewSyllabusRepository(db),
			close:      db.Close,
		}, nil

	default: // localdisk; offline mode
		db, err := localdiskdb.Open(conf, logger)
		if err != nil {
			return nil, err
		}
		return &repositories{
			user:       localdiskdb.NewUserRepository(db),
			student:    localdiskdb.NewStudentRepository(db),
			attendance: localdiskdb.NewAttendanceRepository(db),
			diary:      localdiskdb.NewDiaryRepository(db),
			feedback:   localdiskdb.NewFeedbackRepository(db),
			syllabus:   localdiskdb.NewSyllabusRepository(db),
			close:      func() error { return nil },
		}, nil
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
