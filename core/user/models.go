package user

import (
	"github.com/maitrya143/pravah/core/center"
)

// User is a volunteer account. The password is stored and compared as
// plaintext to match the behavior of the system this one replaces; see
// DESIGN.md before deploying this anywhere that matters.
type User struct {
	VolunteerID string `json:"volunteerId" bson:"volunteerId"`
	Name        string `json:"name" bson:"name"`
	Password    string `json:"password" bson:"password"`
	CenterID    string `json:"centerId,omitempty" bson:"centerId,omitempty"`
	CenterName  string `json:"centerName,omitempty" bson:"centerName,omitempty"`
}

func (u *User) CheckPassword(pwd string) bool {
	return u.Password == pwd
}

// UpdateUser defines what information may be provided to modify an existing
// User. Nil fields are left untouched.
type UpdateUser struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func (uu UpdateUser) IsEmpty() bool { return uu.Name == nil && uu.Password == nil }

// Session is the state held for the duration of a logged-in session: the
// authenticated volunteer and their chosen center. There is no token, expiry
// or multi-session concept.
type Session struct {
	User   User
	Center center.Center
}

func NewSession(usr User) *Session {
	return &Session{User: usr}
}

func (s *Session) SelectCenter(c center.Center) {
	s.Center = c
	s.User.CenterID = c.ID
	s.User.CenterName = c.Name
}

func (s *Session) IsActive() bool { return s.User.VolunteerID != "" }

// Logout simply discards the session state.
func (s *Session) Logout() {
	*s = Session{}
}
