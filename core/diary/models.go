package diary

import "time"

// VolunteerEntry is one volunteer's log within a day's diary.
type VolunteerEntry struct {
	Name         string `json:"name" bson:"name"`
	InTime       string `json:"inTime" bson:"inTime"`
	OutTime      string `json:"outTime" bson:"outTime"`
	Status       string `json:"status" bson:"status"` // Present | Absent
	ClassHandled string `json:"classHandled" bson:"classHandled"`
	Subject      string `json:"subject" bson:"subject"`
	Topic        string `json:"topic" bson:"topic"`
}

// Entry is the operational diary for one center day.
type Entry struct {
	ID            string           `json:"id" bson:"id"`
	Date          string           `json:"date" bson:"date"`
	CenterID      string           `json:"centerId" bson:"centerId"`
	StudentCount  int              `json:"studentCount" bson:"studentCount"`
	InTime        string           `json:"inTime" bson:"inTime"`
	OutTime       string           `json:"outTime" bson:"outTime"`
	Thought       string           `json:"thought" bson:"thought"`
	SubjectTaught string           `json:"subjectTaught" bson:"subjectTaught"`
	TopicTaught   string           `json:"topicTaught" bson:"topicTaught"`
	Volunteers    []VolunteerEntry `json:"volunteers" bson:"volunteers"`
	CreatedAt     time.Time        `json:"createdAt" bson:"createdAt"` // UTC
}

type NewEntry struct {
	Date          string           `json:"date" validate:"required"`
	CenterID      string           `json:"centerId" validate:"required"`
	StudentCount  int              `json:"studentCount" validate:"min=0"`
	InTime        string           `json:"inTime"`
	OutTime       string           `json:"outTime"`
	Thought       string           `json:"thought"`
	SubjectTaught string           `json:"subjectTaught"`
	TopicTaught   string           `json:"topicTaught"`
	Volunteers    []VolunteerEntry `json:"volunteers"`
}
