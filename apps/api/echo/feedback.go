package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/maitrya143/pravah/core"
	"github.com/maitrya143/pravah/core/feedback"
)

type feedbackApi struct {
	svc      *feedback.Service
	validate *validator.Validate
}

func registerFeedbackAPI(g *echo.Group, svc *feedback.Service, validate *validator.Validate) {
	api := feedbackApi{svc: svc, validate: validate}

	g.GET("", api.query)
	g.POST("", api.create)
}

func (api *feedbackApi) query(ctx echo.Context) error {
	fbs, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying feedback")
	}
	if fbs == nil {
		fbs = []feedback.Feedback{}
	}
	return ctx.JSON(http.StatusOK, fbs)
}

func (api *feedbackApi) create(ctx echo.Context) error {
	var data feedback.NewFeedback
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFeedback")
	}
	data.VolunteerID = core.CleanString(data.VolunteerID, true /* upper */)
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	if _, err := api.svc.Save(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "saving feedback")
	}
	return ctx.JSON(http.StatusCreated, SuccessResponse{Success: true})
}
