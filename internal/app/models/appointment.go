package models

import "time"

type Appointment struct {
	ID         string    `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID     string    `json:"userId" bson:"userId"`
	DoctorID   string    `json:"docId" bson:"docId"`
	UserData   User      `json:"userData" bson:"userData"`
	DoctorData Doctor    `json:"docData" bson:"docData"`
	Amount     float64   `json:"amount" bson:"amount"`
	SlotDate   string    `json:"slotDate" bson:"slotDate"`
	SlotTime   string    `json:"slotTime" bson:"slotTime"`
	Cancelled  bool      `json:"cancelled" bson:"cancelled"`
	Payment    bool      `json:"payment" bson:"payment"`
	CreatedAt  time.Time `json:"date" bson:"date"`
}
