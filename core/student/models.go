package student

type Student struct {
	ID                 string `json:"id" bson:"id"` // generated; doubles as the QR payload
	Name               string `json:"name" bson:"name"`
	Gender             string `json:"gender" bson:"gender"`
	DOB                string `json:"dob" bson:"dob"`
	Age                int    `json:"age" bson:"age"`
	ClassLevel         string `json:"classLevel" bson:"classLevel"`
	SchoolName         string `json:"schoolName" bson:"schoolName"`
	ParentName         string `json:"parentName" bson:"parentName"`
	ParentOccupation   string `json:"parentOccupation" bson:"parentOccupation"`
	Aadhaar            string `json:"aadhaar" bson:"aadhaar"`
	Contact            string `json:"contact" bson:"contact"`
	RegistrationNumber string `json:"registrationNumber" bson:"registrationNumber"`
	AdmissionDate      string `json:"admissionDate" bson:"admissionDate"`
	CenterID           string `json:"centerId" bson:"centerId"` // which center admitted them
}

// NewStudent contains the admission form fields; the id and center assignment
// are filled in by the service.
type NewStudent struct {
	Name               string `json:"name" validate:"required"`
	Gender             string `json:"gender" validate:"required,oneof=Male Female Other"`
	DOB                string `json:"dob"`
	Age                int    `json:"age" validate:"omitempty,min=1"`
	ClassLevel         string `json:"classLevel"`
	SchoolName         string `json:"schoolName"`
	ParentName         string `json:"parentName"`
	ParentOccupation   string `json:"parentOccupation"`
	Aadhaar            string `json:"aadhaar"`
	Contact            string `json:"contact"`
	RegistrationNumber string `json:"registrationNumber"`
	AdmissionDate      string `json:"admissionDate" validate:"required"`
}
