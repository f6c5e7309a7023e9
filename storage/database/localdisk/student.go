package localdiskdb

import (
	"context"

	"github.com/maitrya143/pravah/core/student"
)

type studentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(_ context.Context, st student.Student) (student.Student, error) {
	t := repo.db.students
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = append(t.items, st)
	repo.db.persist(studentsCollection, t.items)
	return st, nil
}

func (repo *studentRepository) QueryAllStudents(_ context.Context) ([]student.Student, error) {
	t := repo.db.students
	t.mu.RLock()
	defer t.mu.RUnlock()

	students := make([]student.Student, len(t.items))
	copy(students, t.items)
	return students, nil
}

func (repo *studentRepository) DeleteStudentByID(_ context.Context, id string) error {
	t := repo.db.students
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.items {
		if t.items[i].ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			repo.db.persist(studentsCollection, t.items)
			return nil
		}
	}
	return student.ErrNotFound
}
