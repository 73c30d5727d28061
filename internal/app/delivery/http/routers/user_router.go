package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/appointments"
	"medibook-service/internal/app/services/auth"
	"medibook-service/internal/app/services/payments"
	"medibook-service/internal/app/services/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	appointmentController *appointments.AppointmentController,
	paymentController *payments.PaymentController,
) {
	router.Post("/register", authController.Register)
	router.Post("/login", authController.Login)

	router.With(middlewares.Authenticate).Post("/get-profile", userController.GetProfile)
	router.With(middlewares.Authenticate).Post("/update-profile", userController.UpdateProfile)

	router.With(middlewares.Authenticate).Post("/book-appointment", appointmentController.BookAppointment)
	router.With(middlewares.Authenticate).Get("/list-appointments", appointmentController.ListAppointments)
	router.With(middlewares.Authenticate).Post("/cancel-appointment", appointmentController.CancelAppointment)

	router.With(middlewares.Authenticate).Post("/payment-razorpay", paymentController.CreatePaymentOrder)
	router.With(middlewares.Authenticate).Post("/verifyRazorpay", paymentController.VerifyPayment)
}
