package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maitrya143/pravah/core/attendance"
)

type attendanceRepository struct {
	db *DB
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) col() *mongo.Collection {
	return repo.db.db.Collection(attendanceCollection)
}

func (repo *attendanceRepository) CreateAttendance(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	if _, err := repo.col().InsertOne(ctx, rec); err != nil {
		return attendance.Record{}, errors.Wrap(err, "inserting attendance record")
	}
	return rec, nil
}

func (repo *attendanceRepository) QueryAllAttendance(ctx context.Context) ([]attendance.Record, error) {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	cursor, err := repo.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying attendance")
	}
	defer cursor.Close(ctx)

	var recs []attendance.Record
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, errors.Wrap(err, "decoding attendance")
	}
	return recs, nil
}

func (repo *attendanceRepository) DeleteAttendanceByID(ctx context.Context, id string) error {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	res, err := repo.col().DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return errors.Wrap(err, "deleting attendance record")
	}
	if res.DeletedCount == 0 {
		return attendance.ErrNotFound
	}
	return nil
}
