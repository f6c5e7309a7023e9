package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maitrya143/pravah/core/diary"
)

type diaryRepository struct {
	db *DB
}

func NewDiaryRepository(db *DB) diary.Repository {
	return &diaryRepository{db: db}
}

func (repo *diaryRepository) col() *mongo.Collection {
	return repo.db.db.Collection(diariesCollection)
}

func (repo *diaryRepository) CreateDiary(ctx context.Context, e diary.Entry) (diary.Entry, error) {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	if _, err := repo.col().InsertOne(ctx, e); err != nil {
		return diary.Entry{}, errors.Wrap(err, "inserting diary entry")
	}
	return e, nil
}

func (repo *diaryRepository) QueryAllDiaries(ctx context.Context) ([]diary.Entry, error) {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	cursor, err := repo.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying diaries")
	}
	defer cursor.Close(ctx)

	var entries []diary.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, errors.Wrap(err, "decoding diaries")
	}
	return entries, nil
}

func (repo *diaryRepository) DeleteDiaryByID(ctx context.Context, id string) error {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	res, err := repo.col().DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return errors.Wrap(err, "deleting diary entry")
	}
	if res.DeletedCount == 0 {
		return diary.ErrNotFound
	}
	return nil
}
