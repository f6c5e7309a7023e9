package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/maitrya143/pravah/core"
	"github.com/maitrya143/pravah/core/attendance"
	"github.com/maitrya143/pravah/core/diary"
	"github.com/maitrya143/pravah/core/feedback"
	"github.com/maitrya143/pravah/core/history"
	"github.com/maitrya143/pravah/core/student"
	"github.com/maitrya143/pravah/core/syllabus"
	"github.com/maitrya143/pravah/core/user"
)

type (
	ServerDeps struct {
		Conf           *core.Config
		Logger         core.Logger
		UserSvc        *user.Service
		StudentSvc     *student.Service
		AttendanceSvc  *attendance.Service
		DiarySvc       *diary.Service
		FeedbackSvc    *feedback.Service
		SyllabusSvc    *syllabus.Service
		HistorySvc     *history.Service
		Validate       *validator.Validate
		Translator     ut.Translator
		DisableReqLogs bool
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.deps.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", home)

	registerAuthAPI(s.app.Group("/auth"), s.deps.UserSvc, s.deps.Validate)
	registerCenterAPI(s.app.Group("/centers"))
	registerStudentAPI(s.app.Group("/students"), s.deps.StudentSvc, s.deps.Validate)
	registerAttendanceAPI(s.app.Group("/attendance"), s.deps.AttendanceSvc, s.deps.Validate)
	registerDiaryAPI(s.app.Group("/diary"), s.deps.DiarySvc, s.deps.Validate)
	registerFeedbackAPI(s.app.Group("/feedback"), s.deps.FeedbackSvc, s.deps.Validate)
	registerSyllabusAPI(s.app.Group("/syllabus"), s.deps.SyllabusSvc, s.deps.Validate)
	registerHistoryAPI(s.app.Group("/history"), s.deps.HistorySvc)
}

func (s *Server) Start() {
	s.errs <- s.app.Start(s.deps.Conf.Server.Address())
}

// Errors reports fatal server errors; the application should exit on receive.
func (s *Server) Errors() <-chan error { return s.errs }

// ShutdownSignal receives OS termination signals and internal shutdown
// requests raised by the error handler on integrity failures.
func (s *Server) ShutdownSignal() <-chan os.Signal { return s.shutdown }

func (s *Server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Pravah API!")
}
