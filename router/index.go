package router

import (
	"railway_booking/handler"
	"railway_booking/middleware"
	"railway_booking/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", middleware.Protected(), handler.Logout)
	auth.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)

	user := v1.Group("/user")
	user.Get("/me", middleware.Protected(), handler.Me)
	user.Put("/profile", middleware.Protected(), validate.UpdateProfile(), handler.UpdateProfile)
	user.Patch("/theme", middleware.Protected(), validate.UpdateTheme(), handler.UpdateTheme)
	user.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetUsers)
	user.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteUsers)

	train := v1.Group("/train")
	train.Get("/", handler.GetTrains)
	train.Get("/:slug", handler.GetTrainBySlug)
	train.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateTrain(), handler.CreateTrain)
	train.Put("/:trainId", middleware.Protected(), middleware.AdminOnly(), validate.EditTrain("trainId"), handler.EditTrain)
	train.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteTrains)

	schedule := v1.Group("/schedule")
	schedule.Get("/search", validate.SearchSchedules(), handler.SearchSchedules)
	schedule.Get("/", handler.GetSchedules)
	schedule.Get("/:scheduleId", validate.GetById("scheduleId"), handler.GetScheduleById)
	schedule.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateSchedule(), handler.CreateSchedule)
	schedule.Put("/:scheduleId", middleware.Protected(), middleware.AdminOnly(), validate.EditSchedule("scheduleId"), handler.EditSchedule)
	schedule.Patch("/:scheduleId/status", middleware.Protected(), middleware.AdminOnly(), validate.UpdateScheduleStatus("scheduleId"), handler.UpdateScheduleStatus)
	schedule.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteSchedules)

	booking := v1.Group("/booking")
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Get("/", middleware.Protected(), handler.GetMyBookings)
	booking.Get("/admin", middleware.Protected(), middleware.AdminOnly(), validate.FilterBookings(), handler.GetBookingsAdmin)
	booking.Get("/:pnr", middleware.Protected(), handler.GetBookingByPNR)
	booking.Post("/:pnr/cancel", middleware.Protected(), handler.CancelBooking)

	v1.Post("/payments", middleware.Protected(), handler.CreatePayment)

	notification := v1.Group("/notification")
	notification.Get("/", middleware.Protected(), handler.GetMyNotifications)
	notification.Patch("/:notificationId/read", middleware.Protected(), validate.GetById("notificationId"), handler.MarkNotificationRead)
	notification.Get("/ws/:userId", websocket.New(handler.NotificationSocket))

	report := v1.Group("/report")
	report.Get("/dashboard", middleware.Protected(), middleware.AdminOnly(), handler.GetDashboard)
	report.Get("/export/bookings", middleware.Protected(), middleware.AdminOnly(), handler.ExportBookings)
	report.Get("/export/passengers", middleware.Protected(), middleware.AdminOnly(), handler.ExportPassengers)
	report.Get("/export/revenue", middleware.Protected(), middleware.AdminOnly(), handler.ExportRevenue)
}
