package attendance

import "time"

type Mode string

const (
	ModeQR     Mode = "QR"
	ModeManual Mode = "MANUAL"
)

// Record is one attendance submission for a center day. Records are created
// once and never updated; they may be deleted through the history feed.
type Record struct {
	ID                string    `json:"id" bson:"id"`
	Date              string    `json:"date" bson:"date"` // may carry a time component
	PresentStudentIDs []string  `json:"presentStudentIds" bson:"presentStudentIds"`
	Mode              Mode      `json:"mode" bson:"mode"`
	TotalStudents     int       `json:"totalStudents" bson:"totalStudents"`
	CreatedAt         time.Time `json:"createdAt" bson:"createdAt"` // UTC
}

type NewRecord struct {
	Date              string   `json:"date" validate:"required"`
	PresentStudentIDs []string `json:"presentStudentIds"`
	Mode              Mode     `json:"mode" validate:"required,oneof=QR MANUAL"`
	TotalStudents     int      `json:"totalStudents" validate:"min=0"`
}
