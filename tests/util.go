package testutil

import (
	"context"
	"log"
	"net/mail"
	"os"
	"testing"

	"github.com/maitrya143/pravah/core"
	"github.com/maitrya143/pravah/core/user"
	logsvc "github.com/maitrya143/pravah/services/logger"
	localdiskdb "github.com/maitrya143/pravah/storage/database/localdisk"
)

func NewConfig(t *testing.T) *core.Config {
	return &core.Config{
		AppName:  "Pravah",
		Env:      "TEST",
		TestMode: true,
		Storage: core.StorageConfig{
			Engine:  "localdisk",
			DataDir: t.TempDir(),
		},
		DefaultFromEmail: mail.Address{Name: "Pravah", Address: "noreply@pravahngo.org"},
		FeedbackEmail:    mail.Address{Name: "Coordinators", Address: "coordinators@pravahngo.org"},
	}
}

func NewLogger() core.Logger {
	return logsvc.NewStdLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags))
}

func PrepareDB(t *testing.T) *localdiskdb.DB {
	db, err := localdiskdb.Open(NewConfig(t), NewLogger())
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	return db
}

func CreateUser(t *testing.T, repo user.Repository, volunteerID, name, pwd string) user.User {
	usr, err := repo.CreateUser(context.Background(), user.User{
		VolunteerID: volunteerID,
		Name:        name,
		Password:    pwd,
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}
