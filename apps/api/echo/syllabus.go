package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/maitrya143/pravah/core"
	"github.com/maitrya143/pravah/core/syllabus"
)

type syllabusApi struct {
	svc      *syllabus.Service
	validate *validator.Validate
}

func registerSyllabusAPI(g *echo.Group, svc *syllabus.Service, validate *validator.Validate) {
	api := syllabusApi{svc: svc, validate: validate}

	g.GET("", api.query)
	g.POST("", api.saveBatch)
	g.GET("/catalog", api.catalog)
}

func (api *syllabusApi) query(ctx echo.Context) error {
	centerID := core.CleanString(ctx.QueryParam("centerId"), true /* upper */)
	week := core.CleanString(ctx.QueryParam("week"))
	if centerID == "" || week == "" {
		return core.NewValidationError(errors.New("centerId and week are required"))
	}

	entries, err := api.svc.Get(ctx.Request().Context(), centerID, week)
	if err != nil {
		return errors.Wrap(err, "querying syllabus progress")
	}
	if entries == nil {
		entries = []syllabus.ProgressEntry{}
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *syllabusApi) saveBatch(ctx echo.Context) error {
	var updates []syllabus.NewProgressEntry
	if err := ctx.Bind(&updates); err != nil {
		return errors.Wrap(err, "binding to []NewProgressEntry")
	}
	for i := range updates {
		updates[i].CenterID = core.CleanString(updates[i].CenterID, true /* upper */)
		if err := api.validate.Struct(&updates[i]); err != nil {
			return err
		}
	}

	if err := api.svc.SaveBatch(ctx.Request().Context(), updates); err != nil {
		return errors.Wrap(err, "saving syllabus progress")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (api *syllabusApi) catalog(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, syllabus.PrimaryCatalog)
}
