package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/maitrya143/pravah/core/diary"
)

type diaryApi struct {
	svc      *diary.Service
	validate *validator.Validate
}

func registerDiaryAPI(g *echo.Group, svc *diary.Service, validate *validator.Validate) {
	api := diaryApi{svc: svc, validate: validate}

	g.GET("", api.query)
	g.POST("", api.create)
}

func (api *diaryApi) query(ctx echo.Context) error {
	entries, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying diaries")
	}
	if entries == nil {
		entries = []diary.Entry{}
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *diaryApi) create(ctx echo.Context) error {
	var data diary.NewEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEntry")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	entry, err := api.svc.Save(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "saving diary entry")
	}
	return ctx.JSON(http.StatusCreated, entry)
}
