package diary_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/maitrya143/pravah/core/diary"
	localdiskdb "github.com/maitrya143/pravah/storage/database/localdisk"
	testutil "github.com/maitrya143/pravah/tests"
)

func setup(t *testing.T) *diary.Service {
	db := testutil.PrepareDB(t)
	return diary.NewService(localdiskdb.NewDiaryRepository(db))
}

func TestService_Save(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	entry, err := svc.Save(ctx, diary.NewEntry{
		Date:          "2025-07-21",
		CenterID:      "NGP01",
		StudentCount:  12,
		SubjectTaught: "Maths",
		Volunteers: []diary.VolunteerEntry{
			{Name: "Asha", Status: "Present", Subject: "Maths"},
		},
	})
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if entry.ID == "" {
		t.Error("Save() ID not set")
	}
	if entry.CreatedAt.IsZero() {
		t.Error("Save() CreatedAt not set")
	}
}

func TestService_QueryAll_newestFirst(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	var lastID string
	for _, date := range []string{"2025-07-19", "2025-07-20"} {
		entry, err := svc.Save(ctx, diary.NewEntry{Date: date, CenterID: "NGP01"})
		if err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
		lastID = entry.ID
		time.Sleep(time.Millisecond)
	}

	entries, err := svc.QueryAll(ctx)
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("QueryAll() returned %d entries; want 2", len(entries))
	}
	if entries[0].ID != lastID {
		t.Errorf("QueryAll() first entry = %q; want the latest save %q", entries[0].ID, lastID)
	}
}

func TestService_Delete(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	entry, err := svc.Save(ctx, diary.NewEntry{Date: "2025-07-21", CenterID: "NGP01"})
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if err := svc.Delete(ctx, entry.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := svc.Delete(ctx, "nope"); errors.Cause(err) != diary.ErrNotFound {
		t.Errorf("Delete() error = %v; want ErrNotFound", err)
	}
}
