package feedback

// Feedback is created once and never updated or deleted.
type Feedback struct {
	ID            string `json:"id" bson:"id"`
	VolunteerID   string `json:"volunteerId" bson:"volunteerId"`
	VolunteerName string `json:"volunteerName" bson:"volunteerName"`
	CenterID      string `json:"centerId" bson:"centerId"`
	Subject       string `json:"subject" bson:"subject"`
	Message       string `json:"message" bson:"message"`
	Date          string `json:"date" bson:"date"` // RFC 3339, set on save
}

type NewFeedback struct {
	VolunteerID   string `json:"volunteerId" validate:"required"`
	VolunteerName string `json:"volunteerName"`
	CenterID      string `json:"centerId"`
	Subject       string `json:"subject" validate:"required"`
	Message       string `json:"message" validate:"required"`
}
