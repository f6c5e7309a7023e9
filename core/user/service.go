package user

import (
	"context"

	"github.com/pkg/errors"

	"github.com/maitrya143/pravah/core"
)

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrVolunteerIDExists  = errors.New("volunteer ID already registered")
	ErrInvalidCredentials = errors.New("invalid volunteer ID or password")
)

type (
	Repository interface {
		CreateUser(ctx context.Context, usr User) (User, error)
		QueryAllUsers(ctx context.Context) ([]User, error)
		GetUserByVolunteerID(ctx context.Context, volunteerID string) (User, error)
		UpdateUser(ctx context.Context, usr User) (User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new volunteer account. The volunteer ID is normalized to
// uppercase before the uniqueness check and before storage. Input validation
// (minimum length, presence of a city code) is the caller's responsibility.
func (svc *Service) Register(ctx context.Context, volunteerID, name, password string) (User, error) {
	vid := core.CleanString(volunteerID, true /* upper */)

	if _, err := svc.repo.GetUserByVolunteerID(ctx, vid); err == nil {
		return User{}, ErrVolunteerIDExists
	} else if errors.Cause(err) != ErrNotFound {
		return User{}, err
	}

	return svc.repo.CreateUser(ctx, User{
		VolunteerID: vid,
		Name:        name,
		Password:    password,
	})
}

// Authenticate looks up the volunteer by normalized ID and compares the
// supplied password for exact equality. The ID comparison is
// case-insensitive; the password comparison is not.
func (svc *Service) Authenticate(ctx context.Context, volunteerID, password string) (User, error) {
	vid := core.CleanString(volunteerID, true /* upper */)

	usr, err := svc.repo.GetUserByVolunteerID(ctx, vid)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !usr.CheckPassword(password) {
		return User{}, ErrInvalidCredentials
	}
	return usr, nil
}

func (svc *Service) GetByVolunteerID(ctx context.Context, volunteerID string) (User, error) {
	return svc.repo.GetUserByVolunteerID(ctx, core.CleanString(volunteerID, true /* upper */))
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

// Update merges the provided fields into the existing record, leaving
// unspecified fields untouched.
func (svc *Service) Update(ctx context.Context, volunteerID string, uu UpdateUser) (User, error) {
	vid := core.CleanString(volunteerID, true /* upper */)

	usr, err := svc.repo.GetUserByVolunteerID(ctx, vid)
	if err != nil {
		return User{}, err
	}
	if uu.Name != nil {
		usr.Name = *uu.Name
	}
	if uu.Password != nil {
		usr.Password = *uu.Password
	}
	return svc.repo.UpdateUser(ctx, usr)
}
