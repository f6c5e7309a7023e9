package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maitrya143/pravah/core/user"
)

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) col() *mongo.Collection {
	return repo.db.db.Collection(usersCollection)
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	if _, err := repo.col().InsertOne(ctx, usr); err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return usr, nil
}

func (repo *userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	cursor, err := repo.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	defer cursor.Close(ctx)

	var users []user.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decoding users")
	}
	return users, nil
}

func (repo *userRepository) GetUserByVolunteerID(ctx context.Context, volunteerID string) (user.User, error) {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	var usr user.User
	err := repo.col().FindOne(ctx, bson.M{"volunteerId": volunteerID}).Decode(&usr)
	if err == mongo.ErrNoDocuments {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, errors.Wrap(err, "finding user")
	}
	return usr, nil
}

func (repo *userRepository) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	res, err := repo.col().ReplaceOne(ctx, bson.M{"volunteerId": usr.VolunteerID}, usr)
	if err != nil {
		return user.User{}, errors.Wrap(err, "updating user")
	}
	if res.MatchedCount == 0 {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}
