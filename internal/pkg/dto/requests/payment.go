package requests

type CreatePaymentOrder struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
}

// VerifyPayment carries the gateway checkout result. The signature is the
// gateway's HMAC-SHA256 digest over "order_id|payment_id" and is verified
// before any payment state is read or mutated.
type VerifyPayment struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}
