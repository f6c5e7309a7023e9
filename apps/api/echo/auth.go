package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/maitrya143/pravah/core"
	"github.com/maitrya143/pravah/core/user"
)

type authApi struct {
	svc      *user.Service
	validate *validator.Validate
}

func registerAuthAPI(g *echo.Group, svc *user.Service, validate *validator.Validate) {
	api := authApi{svc: svc, validate: validate}

	g.POST("/register", api.register)
	g.POST("/login", api.login)
	g.PUT("/update/:volunteerId", api.update)
}

// Handlers

func (api *authApi) register(ctx echo.Context) error {
	var data RegisterRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RegisterRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	_, err := api.svc.Register(ctx.Request().Context(), data.VolunteerID, data.Name, data.Password)
	if err != nil {
		if errors.Cause(err) == user.ErrVolunteerIDExists {
			return errVolunteerIDTaken
		}
		return errors.Wrap(err, "registering volunteer")
	}

	return ctx.JSON(http.StatusCreated, SuccessResponse{Success: true})
}

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.svc.Authenticate(ctx.Request().Context(), data.VolunteerID, data.Password)
	if err != nil {
		if errors.Cause(err) == user.ErrInvalidCredentials {
			return errInvalidCredentials
		}
		return errors.Wrap(err, "authenticating")
	}

	return ctx.JSON(http.StatusOK, AuthResponse{Success: true, User: usr})
}

func (api *authApi) update(ctx echo.Context) error {
	var data user.UpdateUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateUser")
	}
	if data.IsEmpty() {
		return core.NewValidationError(errors.New("no fields to update"))
	}

	volunteerID := core.CleanString(ctx.Param("volunteerId"), true /* upper */)
	usr, err := api.svc.Update(ctx.Request().Context(), volunteerID, data)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return errHTTPNotFound
		}
		return errors.Wrap(err, "updating volunteer")
	}

	return ctx.JSON(http.StatusOK, AuthResponse{Success: true, User: usr})
}

type (
	RegisterRequest struct {
		VolunteerID string `json:"volunteerId" validate:"required,min=5,citycode"`
		Name        string `json:"name" validate:"required"`
		Password    string `json:"password" validate:"required"`
	}

	LoginRequest struct {
		VolunteerID string `json:"volunteerId" validate:"required"`
		Password    string `json:"password" validate:"required"`
	}

	SuccessResponse struct {
		Success bool `json:"success"`
	}

	AuthResponse struct {
		Success bool      `json:"success"`
		User    user.User `json:"user"`
	}
)

func (rr *RegisterRequest) Validate(validate *validator.Validate) error {
	rr.VolunteerID = core.CleanString(rr.VolunteerID, true /* upper */)
	rr.Name = core.CleanString(rr.Name)
	return validate.Struct(rr)
}

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.VolunteerID = core.CleanString(lr.VolunteerID, true /* upper */)
	return validate.Struct(lr)
}
