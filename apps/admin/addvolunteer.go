package main

import (
	"context"

	"github.com/pkg/errors"

	"github.com/maitrya143/pravah/core/user"
)

const (
	demoVolunteerID   = "25MDA177"
	demoVolunteerName = "Demo Volunteer"
	demoPassword      = "password"
)

// addVolunteer registers a volunteer account, or resets the name and
// password when the ID is already taken.
func (cli *commandLine) addVolunteer(id, name, pwd string) error {
	ctx := context.Background()

	_, err := cli.usrSvc.Register(ctx, id, name, pwd)
	if err == nil {
		return nil
	}
	if errors.Cause(err) != user.ErrVolunteerIDExists {
		return err
	}

	_, err = cli.usrSvc.Update(ctx, id, user.UpdateUser{Name: &name, Password: &pwd})
	return err
}

func (cli *commandLine) seedDemo() error {
	return cli.addVolunteer(demoVolunteerID, demoVolunteerName, demoPassword)
}
