package main

import (
	"log"
	"os"

	"github.com/maitrya143/pravah/core"
	"github.com/maitrya143/pravah/core/user"
	logsvc "github.com/maitrya143/pravah/services/logger"
	localdiskdb "github.com/maitrya143/pravah/storage/database/localdisk"
	"github.com/maitrya143/pravah/storage/database/mongodb"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up storage
	usrRepo, closeDB, err := setUpUserRepository(conf)
	errAndDie(err)
	defer func() { errAndDie(closeDB()) }()

	// start CLI
	cli := commandLine{
		usrSvc: user.NewService(usrRepo),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func setUpUserRepository(conf *core.Config) (user.Repository, func() error, error) {
	switch conf.Storage.Engine {
	case "mongodb":
		db, err := mongodb.Open(conf)
		if err != nil {
			return nil, nil, err
		}
		return mongodb.NewUserRepository(db), db.Close, nil

	default: // localdisk; offline mode
		db, err := localdiskdb.Open(conf, logsvc.NewStdLogger(logger))
		if err != nil {
			return nil, nil, err
		}
		return localdiskdb.NewUserRepository(db), func() error { return nil }, nil
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
