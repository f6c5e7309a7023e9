package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/maitrya143/pravah/core"
	"github.com/maitrya143/pravah/core/attendance"
	"github.com/maitrya143/pravah/core/diary"
	"github.com/maitrya143/pravah/core/history"
	"github.com/maitrya143/pravah/core/student"
)

type historyApi struct {
	svc *history.Service
}

func registerHistoryAPI(g *echo.Group, svc *history.Service) {
	api := historyApi{svc: svc}

	g.GET("", api.query)
	g.DELETE("/:type/:id", api.destroy)
}

func (api *historyApi) query(ctx echo.Context) error {
	items, err := api.svc.All(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying history")
	}

	if typ := core.CleanString(ctx.QueryParam("type")); typ != "" {
		items = history.Filter(items, history.ParseType(typ))
	}
	if items == nil {
		items = []history.Item{}
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *historyApi) destroy(ctx echo.Context) error {
	typ := history.ParseType(core.CleanString(ctx.Param("type")))
	id := ctx.Param("id")

	if err := api.svc.Delete(ctx.Request().Context(), id, typ); err != nil {
		switch errors.Cause(err) {
		case student.ErrNotFound, attendance.ErrNotFound, diary.ErrNotFound:
			return errHTTPNotFound
		}
		return errors.Wrap(err, "deleting history item")
	}
	return ctx.NoContent(http.StatusNoContent)
}
