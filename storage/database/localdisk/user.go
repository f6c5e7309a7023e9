package localdiskdb

import (
	"context"

	"github.com/maitrya143/pravah/core/user"
)

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	t := repo.db.users
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = append(t.items, usr)
	repo.db.persist(usersCollection, t.items)
	return usr, nil
}

func (repo *userRepository) QueryAllUsers(_ context.Context) ([]user.User, error) {
	t := repo.db.users
	t.mu.RLock()
	defer t.mu.RUnlock()

	users := make([]user.User, len(t.items))
	copy(users, t.items)
	return users, nil
}

func (repo *userRepository) GetUserByVolunteerID(_ context.Context, volunteerID string) (user.User, error) {
	t := repo.db.users
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, usr := range t.items {
		if usr.VolunteerID == volunteerID {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) UpdateUser(_ context.Context, usr user.User) (user.User, error) {
	t := repo.db.users
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.items {
		if t.items[i].VolunteerID == usr.VolunteerID {
			t.items[i] = usr
			repo.db.persist(usersCollection, t.items)
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}
