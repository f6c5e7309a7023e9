// Package mongodb is the remote document store backend: one collection per
// entity, each holding the entity's full attribute set.
package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maitrya143/pravah/core"
)

const (
	usersCollection      = "users"
	studentsCollection   = "students"
	attendanceCollection = "attendance"
	diariesCollection    = "diaries"
	feedbacksCollection  = "feedbacks"
	progressCollection   = "syllabus_progress"
)

type DB struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

func Open(conf *core.Config) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.Storage.MongoTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.Storage.MongoURI))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "pinging mongodb")
	}

	return &DB{
		client:  client,
		db:      client.Database(conf.Storage.MongoName),
		timeout: conf.Storage.MongoTimeout,
	}, nil
}

func (db *DB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), db.timeout)
	defer cancel()
	return db.client.Disconnect(ctx)
}

// ctx bounds a single operation with the configured timeout.
func (db *DB) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, db.timeout)
}
