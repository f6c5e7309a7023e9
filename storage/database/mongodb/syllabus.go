package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maitrya143/pravah/core/syllabus"
)

type syllabusRepository struct {
	db *DB
}

func NewSyllabusRepository(db *DB) syllabus.Repository {
	return &syllabusRepository{db: db}
}

func (repo *syllabusRepository) col() *mongo.Collection {
	return repo.db.db.Collection(progressCollection)
}

func (repo *syllabusRepository) UpsertProgress(ctx context.Context, entries []syllabus.ProgressEntry) error {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	for _, e := range entries {
		filter := bson.M{
			"centerId":  e.CenterID,
			"week":      e.Week,
			"className": e.ClassName,
			"subject":   e.Subject,
		}
		_, err := repo.col().ReplaceOne(ctx, filter, e, options.Replace().SetUpsert(true))
		if err != nil {
			return errors.Wrap(err, "upserting syllabus progress")
		}
	}
	return nil
}

func (repo *syllabusRepository) QueryProgress(ctx context.Context, centerID, week string) ([]syllabus.ProgressEntry, error) {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	cursor, err := repo.col().Find(ctx, bson.M{"centerId": centerID, "week": week})
	if err != nil {
		return nil, errors.Wrap(err, "querying syllabus progress")
	}
	defer cursor.Close(ctx)

	var entries []syllabus.ProgressEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, errors.Wrap(err, "decoding syllabus progress")
	}
	return entries, nil
}
