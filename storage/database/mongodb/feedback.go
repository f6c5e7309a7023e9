package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maitrya143/pravah/core/feedback"
)

type feedbackRepository struct {
	db *DB
}

func NewFeedbackRepository(db *DB) feedback.Repository {
	return &feedbackRepository{db: db}
}

func (repo *feedbackRepository) col() *mongo.Collection {
	return repo.db.db.Collection(feedbacksCollection)
}

func (repo *feedbackRepository) CreateFeedback(ctx context.Context, fb feedback.Feedback) (feedback.Feedback, error) {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	if _, err := repo.col().InsertOne(ctx, fb); err != nil {
		return feedback.Feedback{}, errors.Wrap(err, "inserting feedback")
	}
	return fb, nil
}

func (repo *feedbackRepository) QueryAllFeedback(ctx context.Context) ([]feedback.Feedback, error) {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	cursor, err := repo.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying feedback")
	}
	defer cursor.Close(ctx)

	var fbs []feedback.Feedback
	if err := cursor.All(ctx, &fbs); err != nil {
		return nil, errors.Wrap(err, "decoding feedback")
	}
	return fbs, nil
}
