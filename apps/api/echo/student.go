package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/maitrya143/pravah/core"
	"github.com/maitrya143/pravah/core/center"
	"github.com/maitrya143/pravah/core/student"
)

type studentApi struct {
	svc      *student.Service
	validate *validator.Validate
}

func registerStudentAPI(g *echo.Group, svc *student.Service, validate *validator.Validate) {
	api := studentApi{svc: svc, validate: validate}

	g.GET("", api.query)
	g.POST("", api.create)
}

func (api *studentApi) query(ctx echo.Context) error {
	students, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	if students == nil {
		students = []student.Student{}
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) create(ctx echo.Context) error {
	var data AdmitStudentRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AdmitStudentRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	c, ok := center.Get(data.CenterID)
	if !ok {
		return core.NewValidationError(nil, core.FieldError{Field: "centerId", Error: "unknown center"})
	}

	st, err := api.svc.Admit(ctx.Request().Context(), data.NewStudent, c)
	if err != nil {
		return errors.Wrap(err, "admitting student")
	}
	return ctx.JSON(http.StatusCreated, st)
}

// AdmitStudentRequest is the admission form plus the center the logged-in
// volunteer is working at; there are no server-side sessions so the client
// sends it along.
type AdmitStudentRequest struct {
	student.NewStudent
	CenterID string `json:"centerId" validate:"required"`
}

func (ar *AdmitStudentRequest) Validate(validate *validator.Validate) error {
	ar.Name = core.CleanString(ar.Name)
	ar.CenterID = core.CleanString(ar.CenterID, true /* upper */)
	return validate.Struct(ar)
}
