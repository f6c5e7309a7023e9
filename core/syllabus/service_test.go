package syllabus_test

import (
	"context"
	"testing"

	"github.com/maitrya143/pravah/core/syllabus"
	localdiskdb "github.com/maitrya143/pravah/storage/database/localdisk"
	testutil "github.com/maitrya143/pravah/tests"
)

func setup(t *testing.T) *syllabus.Service {
	db := testutil.PrepareDB(t)
	return syllabus.NewService(localdiskdb.NewSyllabusRepository(db))
}

func TestService_SaveBatch(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	batch := []syllabus.NewProgressEntry{
		{CenterID: "NGP01", Week: "2025-W30", ClassName: "3rd", Subject: "Maths", Percentage: 40},
		{CenterID: "NGP01", Week: "2025-W30", ClassName: "3rd", Subject: "English", Percentage: 25},
	}
	if err := svc.SaveBatch(ctx, batch); err != nil {
		t.Fatalf("SaveBatch() failed: %v", err)
	}

	entries, err := svc.Get(ctx, "NGP01", "2025-W30")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Get() returned %d entries; want 2", len(entries))
	}

	// saving the same keys again replaces, never duplicates
	batch[0].Percentage = 60
	if err := svc.SaveBatch(ctx, batch[:1]); err != nil {
		t.Fatalf("SaveBatch() failed: %v", err)
	}
	entries, err = svc.Get(ctx, "NGP01", "2025-W30")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Get() returned %d entries after upsert; want 2", len(entries))
	}
	for _, e := range entries {
		if e.Subject == "Maths" && e.Percentage != 60 {
			t.Errorf("Get() Maths Percentage = %d; want 60", e.Percentage)
		}
		if e.Subject == "English" && e.Percentage != 25 {
			t.Errorf("Get() English Percentage = %d; want 25 (untouched)", e.Percentage)
		}
		if e.ID == "" || e.LastUpdated == "" {
			t.Errorf("Get() entry %q missing id or lastUpdated", e.Subject)
		}
	}
}

func TestService_SaveBatch_duplicateKeys(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	// the same key twice in one batch collapses to the last occurrence
	batch := []syllabus.NewProgressEntry{
		{CenterID: "NGP01", Week: "2025-W30", ClassName: "3rd", Subject: "Maths", Percentage: 40},
		{CenterID: "NGP01", Week: "2025-W30", ClassName: "3rd", Subject: "Maths", Percentage: 70},
	}
	if err := svc.SaveBatch(ctx, batch); err != nil {
		t.Fatalf("SaveBatch() failed: %v", err)
	}

	entries, err := svc.Get(ctx, "NGP01", "2025-W30")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Get() returned %d entries; want 1", len(entries))
	}
	if entries[0].Percentage != 70 {
		t.Errorf("Get() Percentage = %d; want 70", entries[0].Percentage)
	}
}

func TestService_Get_filters(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	batch := []syllabus.NewProgressEntry{
		{CenterID: "NGP01", Week: "2025-W30", ClassName: "3rd", Subject: "Maths", Percentage: 40},
		{CenterID: "NGP01", Week: "2025-W31", ClassName: "3rd", Subject: "Maths", Percentage: 55},
		{CenterID: "MDA05", Week: "2025-W30", ClassName: "3rd", Subject: "Maths", Percentage: 10},
	}
	if err := svc.SaveBatch(ctx, batch); err != nil {
		t.Fatalf("SaveBatch() failed: %v", err)
	}

	entries, err := svc.Get(ctx, "NGP01", "2025-W30")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Percentage != 40 {
		t.Errorf("Get(NGP01, 2025-W30) = %+v; want the single 40%% entry", entries)
	}

	entries, err = svc.Get(ctx, "MDA05", "2025-W31")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Get(MDA05, 2025-W31) returned %d entries; want 0", len(entries))
	}
}
