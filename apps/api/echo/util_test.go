package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/maitrya143/pravah/core"
	"github.com/maitrya143/pravah/core/attendance"
	"github.com/maitrya143/pravah/core/diary"
	"github.com/maitrya143/pravah/core/feedback"
	"github.com/maitrya143/pravah/core/history"
	"github.com/maitrya143/pravah/core/student"
	"github.com/maitrya143/pravah/core/syllabus"
	"github.com/maitrya143/pravah/core/user"
	emailsvc "github.com/maitrya143/pravah/services/email"
	localdiskdb "github.com/maitrya143/pravah/storage/database/localdisk"
	testutil "github.com/maitrya143/pravah/tests"
)

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func setup(t *testing.T) (*Server, ServerDeps) {
	conf := testutil.NewConfig(t)
	logger := testutil.NewLogger()

	db, err := localdiskdb.Open(conf, logger)
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	mailSvc := emailsvc.NewConsoleServiceMock(conf)

	usrSvc := user.NewService(localdiskdb.NewUserRepository(db))
	studentSvc := student.NewService(localdiskdb.NewStudentRepository(db))
	attendanceSvc := attendance.NewService(localdiskdb.NewAttendanceRepository(db))
	diarySvc := diary.NewService(localdiskdb.NewDiaryRepository(db))
	feedbackSvc := feedback.NewService(localdiskdb.NewFeedbackRepository(db), mailSvc, conf)
	syllabusSvc := syllabus.NewService(localdiskdb.NewSyllabusRepository(db))
	historySvc := history.NewService(studentSvc, attendanceSvc, diarySvc)

	validate := validator.New()
	translator := newTestTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	deps := ServerDeps{
		Conf:           conf,
		Logger:         logger,
		UserSvc:        usrSvc,
		StudentSvc:     studentSvc,
		AttendanceSvc:  attendanceSvc,
		DiarySvc:       diarySvc,
		FeedbackSvc:    feedbackSvc,
		SyllabusSvc:    syllabusSvc,
		HistorySvc:     historySvc,
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
	}
	return NewServer(deps), deps
}

func newTestTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

// errJSON renders the error envelope the handler emits.
func errJSON(t *testing.T, message interface{}) []byte {
	return marchallObj(t, echo.Map{"success": false, "message": message})
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
