package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccessMessage = "user registered successfully"
	LoginSuccessMessage    = "successfully login"

	// User-related messages
	GetProfileSuccessMessage    = "get profile successfully"
	UpdateProfileSuccessMessage = "profile updated successfully"

	// Appointment-related messages
	BookAppointmentSuccessMessage   = "appointment booked"
	ListAppointmentsSuccessMessage  = "get appointments successfully"
	CancelAppointmentSuccessMessage = "appointment cancelled"

	// Payment-related messages
	CreatePaymentOrderSuccessMessage = "payment order created"
	VerifyPaymentSuccessMessage      = "payment successful"
)
