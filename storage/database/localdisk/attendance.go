package localdiskdb

import (
	"context"

	"github.com/maitrya143/pravah/core/attendance"
)

type attendanceRepository struct {
	db *DB
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) CreateAttendance(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	t := repo.db.attendance
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = append(t.items, rec)
	repo.db.persist(attendanceCollection, t.items)
	return rec, nil
}

func (repo *attendanceRepository) QueryAllAttendance(_ context.Context) ([]attendance.Record, error) {
	t := repo.db.attendance
	t.mu.RLock()
	defer t.mu.RUnlock()

	recs := make([]attendance.Record, len(t.items))
	copy(recs, t.items)
	return recs, nil
}

func (repo *attendanceRepository) DeleteAttendanceByID(_ context.Context, id string) error {
	t := repo.db.attendance
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.items {
		if t.items[i].ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			repo.db.persist(attendanceCollection, t.items)
			return nil
		}
	}
	return attendance.ErrNotFound
}
