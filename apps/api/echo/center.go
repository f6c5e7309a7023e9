package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maitrya143/pravah/core"
	"github.com/maitrya143/pravah/core/center"
)

func registerCenterAPI(g *echo.Group) {
	g.GET("", queryCenters)
}

func queryCenters(ctx echo.Context) error {
	city := core.CleanString(ctx.QueryParam("city"), true /* upper */)
	if city == "" {
		return ctx.JSON(http.StatusOK, center.Catalog)
	}

	code := center.CityCode(city)
	if _, ok := center.Cities[code]; !ok {
		return core.NewValidationError(nil, core.FieldError{Field: "city", Error: "unknown city code"})
	}
	return ctx.JSON(http.StatusOK, center.ForCity(code))
}
