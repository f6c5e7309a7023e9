package localdiskdb

import (
	"context"

	"github.com/maitrya143/pravah/core/diary"
)

type diaryRepository struct {
	db *DB
}

func NewDiaryRepository(db *DB) diary.Repository {
	return &diaryRepository{db: db}
}

func (repo *diaryRepository) CreateDiary(_ context.Context, e diary.Entry) (diary.Entry, error) {
	t := repo.db.diaries
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = append(t.items, e)
	repo.db.persist(diariesCollection, t.items)
	return e, nil
}

func (repo *diaryRepository) QueryAllDiaries(_ context.Context) ([]diary.Entry, error) {
	t := repo.db.diaries
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries := make([]diary.Entry, len(t.items))
	copy(entries, t.items)
	return entries, nil
}

func (repo *diaryRepository) DeleteDiaryByID(_ context.Context, id string) error {
	t := repo.db.diaries
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.items {
		if t.items[i].ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			repo.db.persist(diariesCollection, t.items)
			return nil
		}
	}
	return diary.ErrNotFound
}
