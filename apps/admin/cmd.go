package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/maitrya143/pravah/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	usrSvc *user.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  addvolunteer -id VOLUNTEER_ID -name NAME - add or update a volunteer account")
	fmt.Println("  seeddemo - install the demo volunteer account (25MDA177)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addVolunteerCmd := flag.NewFlagSet("addvolunteer", flag.ExitOnError)
	addVolunteerID := addVolunteerCmd.String("id", "", "The Volunteer ID, e.g. 25MDA177. The password will be prompted next.")
	addVolunteerName := addVolunteerCmd.String("name", "", "The volunteer's full name.")

	switch args[1] {
	case "addvolunteer":
		if err := addVolunteerCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addVolunteerID == "" || *addVolunteerName == "" {
			addVolunteerCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addVolunteerCmd.Usage()
			return errHelp
		}
		return cli.addVolunteer(*addVolunteerID, *addVolunteerName, string(pwd))
	case "seeddemo":
		return cli.seedDemo()
	default:
		cli.printUsage()
		return errHelp
	}
}
