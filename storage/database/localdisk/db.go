// Package localdiskdb keeps every collection in memory and mirrors it to a
// JSON file after each mutation, matching the localStorage layout of the
// offline client: one pravah_<collection>.json array per entity.
package localdiskdb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/maitrya143/pravah/core"
	"github.com/maitrya143/pravah/core/attendance"
	"github.com/maitrya143/pravah/core/diary"
	"github.com/maitrya143/pravah/core/feedback"
	"github.com/maitrya143/pravah/core/student"
	"github.com/maitrya143/pravah/core/syllabus"
	"github.com/maitrya143/pravah/core/user"
)

// collection names, shared with the document store
const (
	usersCollection      = "users"
	studentsCollection   = "students"
	attendanceCollection = "attendance"
	diariesCollection    = "diaries"
	feedbacksCollection  = "feedbacks"
	progressCollection   = "syllabus_progress"
)

type (
	DB struct {
		dir    string
		logger core.Logger

		users      *userTable
		students   *studentTable
		attendance *attendanceTable
		diaries    *diaryTable
		feedbacks  *feedbackTable
		progress   *progressTable
	}

	userTable struct {
		mu    sync.RWMutex
		items []user.User
	}
	studentTable struct {
		mu    sync.RWMutex
		items []student.Student
	}
	attendanceTable struct {
		mu    sync.RWMutex
		items []attendance.Record
	}
	diaryTable struct {
		mu    sync.RWMutex
		items []diary.Entry
	}
	feedbackTable struct {
		mu    sync.RWMutex
		items []feedback.Feedback
	}
	progressTable struct {
		mu    sync.RWMutex
		items []syllabus.ProgressEntry
	}
)

func Open(conf *core.Config, logger core.Logger) (*DB, error) {
	dir := conf.Storage.DataDir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "creating data dir")
	}

	db := &DB{
		dir:        dir,
		logger:     logger,
		users:      &userTable{},
		students:   &studentTable{},
		attendance: &attendanceTable{},
		diaries:    &diaryTable{},
		feedbacks:  &feedbackTable{},
		progress:   &progressTable{},
	}
	db.load(usersCollection, &db.users.items)
	db.load(studentsCollection, &db.students.items)
	db.load(attendanceCollection, &db.attendance.items)
	db.load(diariesCollection, &db.diaries.items)
	db.load(feedbacksCollection, &db.feedbacks.items)
	db.load(progressCollection, &db.progress.items)
	return db, nil
}

func (db *DB) path(name string) string {
	return filepath.Join(db.dir, "pravah_"+name+".json")
}

// load reads a mirrored collection into memory. A missing or unreadable file
// leaves the collection empty, like the client starting with fresh storage.
func (db *DB) load(name string, v interface{}) {
	data, err := os.ReadFile(db.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			db.logger.Error(fmt.Sprintf("reading %s: %v", name, err), err)
		}
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		db.logger.Error(fmt.Sprintf("decoding %s: %v", name, err), err)
	}
}

// persist mirrors a collection to disk. A failed write is logged and
// swallowed: the in-memory mutation stands and data entry continues.
func (db *DB) persist(name string, v interface{}) {
	data, err := json.Marshal(v)
	if err == nil {
		err = os.WriteFile(db.path(name), data, 0644)
	}
	if err != nil {
		db.logger.Error(fmt.Sprintf("persisting %s: %v", name, err), err)
	}
}
