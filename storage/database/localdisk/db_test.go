package localdiskdb

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/maitrya143/pravah/core"
	"github.com/maitrya143/pravah/core/student"
	"github.com/maitrya143/pravah/core/user"
	logsvc "github.com/maitrya143/pravah/services/logger"
)

func testConfig(dir string) *core.Config {
	return &core.Config{Storage: core.StorageConfig{Engine: "localdisk", DataDir: dir}}
}

func testLogger() core.Logger {
	return logsvc.NewStdLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags))
}

func TestDB_reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	db, err := Open(testConfig(dir), testLogger())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err = NewUserRepository(db).CreateUser(ctx, user.User{VolunteerID: "25NGP050", Name: "Asha", Password: "pw1"}); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	if _, err = NewStudentRepository(db).CreateStudent(ctx, student.Student{ID: "25NGPSBF123", Name: "Meena", CenterID: "NGP01"}); err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}

	// a fresh DB on the same dir sees the mirrored data
	db2, err := Open(testConfig(dir), testLogger())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	usr, err := NewUserRepository(db2).GetUserByVolunteerID(ctx, "25NGP050")
	if err != nil {
		t.Fatalf("GetUserByVolunteerID() failed: %v", err)
	}
	if usr.Password != "pw1" {
		t.Errorf("reloaded Password = %q; want %q", usr.Password, "pw1")
	}
	students, err := NewStudentRepository(db2).QueryAllStudents(ctx)
	if err != nil {
		t.Fatalf("QueryAllStudents() failed: %v", err)
	}
	if len(students) != 1 || students[0].ID != "25NGPSBF123" {
		t.Errorf("reloaded students = %+v", students)
	}
}

func TestDB_corruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pravah_users.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	// a corrupt mirror is logged and treated as empty
	db, err := Open(testConfig(dir), testLogger())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	users, err := NewUserRepository(db).QueryAllUsers(context.Background())
	if err != nil {
		t.Fatalf("QueryAllUsers() failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("QueryAllUsers() = %+v; want empty", users)
	}
}

func TestDB_persistFailureSwallowed(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	db, err := Open(testConfig(dir), testLogger())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	// make the mirror path unwritable; the in-memory write must still succeed
	if err := os.Mkdir(filepath.Join(dir, "pravah_users.json"), 0755); err != nil {
		t.Fatalf("Mkdir() failed: %v", err)
	}

	repo := NewUserRepository(db)
	if _, err = repo.CreateUser(ctx, user.User{VolunteerID: "25MDA177", Name: "Demo", Password: "password"}); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	if _, err = repo.GetUserByVolunteerID(ctx, "25MDA177"); err != nil {
		t.Errorf("GetUserByVolunteerID() after failed persist = %v; want nil", err)
	}
}
