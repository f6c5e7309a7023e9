package syllabus

import (
	"context"
	"time"
)

type (
	Repository interface {
		// UpsertProgress removes any stored entries sharing a composite key
		// with the given batch, then inserts the whole batch. Entries not in
		// the batch are left untouched. The batch carries at most one entry
		// per key.
		UpsertProgress(ctx context.Context, entries []ProgressEntry) error
		QueryProgress(ctx context.Context, centerID, week string) ([]ProgressEntry, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SaveBatch upserts the batch by composite key. A batch may freely mix new
// and existing keys; saving the same batch twice leaves one entry per key.
// Within a batch the last occurrence of a key wins.
func (svc *Service) SaveBatch(ctx context.Context, updates []NewProgressEntry) error {
	if len(updates) == 0 {
		return nil
	}
	now := time.Now().UTC().Format(time.RFC3339)

	entries := make([]ProgressEntry, 0, len(updates))
	seen := make(map[Key]int, len(updates))
	for _, u := range updates {
		e := ProgressEntry{
			CenterID:    u.CenterID,
			Week:        u.Week,
			ClassName:   u.ClassName,
			Subject:     u.Subject,
			Percentage:  u.Percentage,
			LastUpdated: now,
		}
		e.ID = e.Key().String()
		if i, ok := seen[e.Key()]; ok {
			entries[i] = e
			continue
		}
		seen[e.Key()] = len(entries)
		entries = append(entries, e)
	}
	return svc.repo.UpsertProgress(ctx, entries)
}

// Get returns all stored entries for the center and week, in no specified order.
func (svc *Service) Get(ctx context.Context, centerID, week string) ([]ProgressEntry, error) {
	return svc.repo.QueryProgress(ctx, centerID, week)
}
