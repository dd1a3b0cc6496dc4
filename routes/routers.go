package routes

import (
	"bookit/controllers"
	middlewares "bookit/middleware"
	"bookit/models"
	"bookit/services"

	"github.com/gin-gonic/gin"
)

type Services struct {
	Rooms     *services.RoomService
	Reviews   *services.ReviewService
	Bookings  *services.BookingService
	JWTSecret string
}

func SetupRoutes(router *gin.Engine, svc Services) {
	roomController := controllers.NewRoomController(svc.Rooms)
	reviewController := controllers.NewReviewController(svc.Reviews)
	bookingController := controllers.NewBookingController(svc.Bookings)

	auth := middlewares.AuthMiddleware(svc.JWTSecret)
	admin := middlewares.AuthMiddleware(svc.JWTSecret, models.RoleSuperAdmin, models.RoleAdmin)

	v1 := router.Group("/api/v1")

	v1.GET("/rooms", roomController.GetAllRooms)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)

	v1.GET("/reviews", reviewController.GetRoomReviews)
	v1.PUT("/reviews", auth, reviewController.CreateRoomReview)
	v1.GET("/reviews/check", auth, reviewController.CheckReviewAvailability)

	v1.GET("/bookings/check", bookingController.CheckBookingAvailability)
	v1.GET("/bookings/booked-dates", bookingController.CheckBookedDates)
	v1.POST("/bookings", auth, bookingController.CreateBooking)
	v1.GET("/bookings/me", auth, bookingController.MyBookings)
	v1.GET("/bookings/:id", auth, bookingController.GetBookingDetail)
	v1.PUT("/bookings/:id/cancel", auth, bookingController.CancelBooking)

	adminGroup := v1.Group("/admin", admin)
	adminGroup.POST("/rooms", roomController.CreateRoom)
	adminGroup.PUT("/rooms/:id", roomController.UpdateRoom)
	adminGroup.DELETE("/rooms/:id", roomController.DeleteRoom)
	adminGroup.DELETE("/reviews", reviewController.DeleteReview)
	adminGroup.GET("/bookings", bookingController.GetAdminBookings)
	adminGroup.DELETE("/bookings/:id", bookingController.DeleteBooking)
}
