package router

import (
	bookingHandler "travel-booking-service/internal/module/booking/handler"
	catalogHandler "travel-booking-service/internal/module/catalog/handler"
	feedbackHandler "travel-booking-service/internal/module/feedback/handler"
	ideaHandler "travel-booking-service/internal/module/idea/handler"
	paymentHandler "travel-booking-service/internal/module/payment/handler"
	sellerHandler "travel-booking-service/internal/module/seller/handler"
	userHandler "travel-booking-service/internal/module/user/handler"
	"travel-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Booking  *bookingHandler.BookingHandler
	Payment  *paymentHandler.PaymentHandler
	Catalog  *catalogHandler.CatalogHandler
	User     *userHandler.UserHandler
	Seller   *sellerHandler.SellerHandler
	Idea     *ideaHandler.IdeaHandler
	Feedback *feedbackHandler.FeedbackHandler
}

func Initialize(app *fiber.App, h *Handlers, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// identity provider webhook, verified by signature instead of token
	Api.Post("/webhooks/identity", m.VerifyWebhookSignature, h.User.IdentityWebhook)

	v1 := Api.Group("/v1")

	bookings := v1.Group("/bookings")
	bookings.Post("/", m.ValidateToken, h.Booking.CreateBooking)
	bookings.Get("/user/:userId", m.ValidateToken, h.Booking.GetUserBookings)
	bookings.Get("/code/:code", m.ValidateToken, h.Booking.GetBookingByCode)
	bookings.Get("/stats", m.ValidateToken, m.RequireAdmin, h.Booking.GetBookingStats)
	bookings.Get("/:bookingId", m.ValidateToken, h.Booking.GetBookingByID)
	bookings.Get("/:bookingId/voucher", m.ValidateToken, h.Booking.GetVoucher)
	bookings.Patch("/:bookingId/status", m.ValidateToken, m.RequireAdmin, h.Booking.UpdateBookingStatus)
	bookings.Patch("/:bookingId/payment", m.ValidateToken, h.Booking.UpdatePaymentStatus)
	bookings.Post("/:bookingId/cancel", m.ValidateToken, h.Booking.CancelBooking)

	payment := v1.Group("/payment")
	payment.Post("/order", m.ValidateToken, h.Payment.CreateOrder)
	payment.Post("/verify", m.ValidateToken, h.Payment.VerifyPayment)

	services := v1.Group("/services")
	services.Get("/:type", h.Catalog.ListServices)
	services.Get("/:type/search", h.Catalog.SearchServices)
	services.Get("/:type/:id", h.Catalog.GetService)

	users := v1.Group("/users")
	users.Get("/me", m.ValidateToken, h.User.GetMe)
	users.Patch("/:userId", m.ValidateToken, m.RequireAdmin, h.User.UpdateUser)

	v1.Post("/credits/consume", m.ValidateToken, h.User.ConsumeCredit)

	seller := v1.Group("/seller")
	seller.Post("/requests", m.ValidateToken, h.Seller.SubmitRequest)
	seller.Get("/requests/me", m.ValidateToken, h.Seller.GetMyRequests)
	seller.Get("/requests", m.ValidateToken, m.RequireAdmin, h.Seller.ListRequests)
	seller.Patch("/requests/:requestId", m.ValidateToken, m.RequireAdmin, h.Seller.ReviewRequest)

	ideas := v1.Group("/ideas")
	ideas.Post("/", m.ValidateToken, h.Idea.SubmitIdea)
	ideas.Get("/", h.Idea.GetIdeas)
	ideas.Get("/:ideaId", h.Idea.GetIdea)
	ideas.Post("/:ideaId/vote", m.ValidateToken, h.Idea.VoteIdea)
	ideas.Patch("/:ideaId/status", m.ValidateToken, m.RequireAdmin, h.Idea.UpdateIdeaStatus)

	feedback := v1.Group("/feedback")
	feedback.Post("/", h.Feedback.SubmitFeedback)
	feedback.Get("/", m.ValidateToken, m.RequireAdmin, h.Feedback.GetFeedback)
	feedback.Patch("/:feedbackId/status", m.ValidateToken, m.RequireAdmin, h.Feedback.UpdateFeedbackStatus)

	// management surface behind the admin role
	admin := v1.Group("/admin", m.ValidateToken, m.RequireAdmin)
	admin.Get("/services/:type", h.Catalog.ListServicesAdmin)
	admin.Post("/services/:type", h.Catalog.CreateService)
	admin.Patch("/services/:type/:id", h.Catalog.UpdateService)
	admin.Delete("/services/:type/:id", h.Catalog.DeleteService)
	admin.Get("/bookings", h.Booking.GetAllBookings)
	admin.Delete("/bookings/:bookingId", h.Booking.DeleteBooking)
	admin.Get("/users", h.User.ListUsers)
	admin.Delete("/users/:userId", h.User.DeleteUser)

	return app

}
