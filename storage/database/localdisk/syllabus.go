package localdiskdb

import (
	"context"

	"github.com/maitrya143/pravah/core/syllabus"
)

type syllabusRepository struct {
	db *DB
}

func NewSyllabusRepository(db *DB) syllabus.Repository {
	return &syllabusRepository{db: db}
}

func (repo *syllabusRepository) UpsertProgress(_ context.Context, entries []syllabus.ProgressEntry) error {
	t := repo.db.progress
	t.mu.Lock()
	defer t.mu.Unlock()

	incoming := make(map[syllabus.Key]bool, len(entries))
	for _, e := range entries {
		incoming[e.Key()] = true
	}

	// drop stored entries being replaced, keep the rest
	kept := t.items[:0]
	for _, e := range t.items {
		if !incoming[e.Key()] {
			kept = append(kept, e)
		}
	}
	t.items = append(kept, entries...)
	repo.db.persist(progressCollection, t.items)
	return nil
}

func (repo *syllabusRepository) QueryProgress(_ context.Context, centerID, week string) ([]syllabus.ProgressEntry, error) {
	t := repo.db.progress
	t.mu.RLock()
	defer t.mu.RUnlock()

	var matches []syllabus.ProgressEntry
	for _, e := range t.items {
		if e.CenterID == centerID && e.Week == week {
			matches = append(matches, e)
		}
	}
	return matches, nil
}
