package models

// Doctor records are owned by a separate administrative surface.
// This service reads fee/availability and mutates only SlotsBooked.
type Doctor struct {
	ID          string              `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string              `json:"name" bson:"name"`
	Speciality  string              `json:"speciality,omitempty" bson:"speciality,omitempty"`
	ImageURL    string              `json:"image,omitempty" bson:"image,omitempty"`
	Fee         float64             `json:"fees" bson:"fees"`
	Available   bool                `json:"available" bson:"available"`
	SlotsBooked map[string][]string `json:"slots_booked,omitempty" bson:"slots_booked,omitempty"`
}

// Snapshot returns a copy safe to denormalize into an appointment,
// with the slot map dropped.
func (d Doctor) Snapshot() Doctor {
	d.SlotsBooked = nil
	return d
}
