package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maitrya143/pravah/core/student"
)

type studentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) col() *mongo.Collection {
	return repo.db.db.Collection(studentsCollection)
}

func (repo *studentRepository) CreateStudent(ctx context.Context, st student.Student) (student.Student, error) {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	if _, err := repo.col().InsertOne(ctx, st); err != nil {
		return student.Student{}, errors.Wrap(err, "inserting student")
	}
	return st, nil
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	cursor, err := repo.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	defer cursor.Close(ctx)

	var students []student.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, errors.Wrap(err, "decoding students")
	}
	return students, nil
}

func (repo *studentRepository) DeleteStudentByID(ctx context.Context, id string) error {
	ctx, cancel := repo.db.ctx(ctx)
	defer cancel()

	res, err := repo.col().DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return errors.Wrap(err, "deleting student")
	}
	if res.DeletedCount == 0 {
		return student.ErrNotFound
	}
	return nil
}
