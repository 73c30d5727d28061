package requests

type BookAppointment struct {
	UserID   string `json:"userId" validate:"omitempty"`
	DoctorID string `json:"docId" validate:"required"`
	SlotDate string `json:"slotDate" validate:"required"`
	SlotTime string `json:"slotTime" validate:"required"`
}

type CancelAppointment struct {
	UserID        string `json:"userId" validate:"omitempty"`
	AppointmentID string `json:"appointmentId" validate:"required"`
}
