package syllabus

import "fmt"

// ProgressEntry tracks completion of one subject for one class, week and
// center. At most one entry exists per composite key; saving again for the
// same key replaces the stored entry.
type ProgressEntry struct {
	ID          string `json:"id" bson:"id"`
	CenterID    string `json:"centerId" bson:"centerId"`
	Week        string `json:"week" bson:"week"`
	ClassName   string `json:"className" bson:"className"`
	Subject     string `json:"subject" bson:"subject"`
	Percentage  int    `json:"percentage" bson:"percentage"`
	LastUpdated string `json:"lastUpdated" bson:"lastUpdated"` // RFC 3339, set on save
}

// Key is the composite identity of a progress entry.
type Key struct {
	CenterID  string
	Week      string
	ClassName string
	Subject   string
}

func (p ProgressEntry) Key() Key {
	return Key{CenterID: p.CenterID, Week: p.Week, ClassName: p.ClassName, Subject: p.Subject}
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%s|%s|%s", k.CenterID, k.Week, k.ClassName, k.Subject)
}

type NewProgressEntry struct {
	CenterID   string `json:"centerId" validate:"required"`
	Week       string `json:"week" validate:"required"`
	ClassName  string `json:"className" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Percentage int    `json:"percentage" validate:"min=0,max=100"`
}
