package models

import "time"

type Address struct {
	Line1 string `json:"line1" bson:"line1"`
	Line2 string `json:"line2,omitempty" bson:"line2,omitempty"`
}

type User struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"-" bson:"password"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address   Address   `json:"address,omitempty" bson:"address,omitempty"`
	DOB       string    `json:"dob,omitempty" bson:"dob,omitempty"`
	Gender    string    `json:"gender,omitempty" bson:"gender,omitempty"`
	ImageURL  string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Snapshot returns a copy safe to denormalize into an appointment,
// with the credential hash stripped.
func (u User) Snapshot() User {
	u.Password = ""
	return u
}

// ProfileUpdate carries the fields a profile update is allowed to touch.
// ImageURL is only written when an image was uploaded with the request.
type ProfileUpdate struct {
	Name     string
	Phone    string
	Address  Address
	DOB      string
	Gender   string
	ImageURL string
}
