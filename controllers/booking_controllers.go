package controllers

import (
	"net/http"

	"bookit/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) BookingController {
	return BookingController{Bookings: bookings}
}

type CreateBookingRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	AmountPaid   int    `json:"amountPaid"`
	PaymentRef   string `json:"paymentRef"`
}

// CheckBookingAvailability godoc
// @Summary Check whether a room is free for [checkInDate, checkOutDate)
// @Tags bookings
// @Produce json
// @Param roomId query int true "Room ID"
// @Param checkInDate query string true "YYYY-MM-DD"
// @Param checkOutDate query string true "YYYY-MM-DD"
// @Router /bookings/check [get]
func (b BookingController) CheckBookingAvailability(c *gin.Context) {
	roomID, ok := parseID(c, c.Query("roomId"), "room id")
	if !ok {
		return
	}
	checkIn, err := services.ParseDate(c.Query("checkInDate"))
	if err != nil {
		respondError(c, err)
		return
	}
	checkOut, err := services.ParseDate(c.Query("checkOutDate"))
	if err != nil {
		respondError(c, err)
		return
	}

	available, err := b.Bookings.IsRoomAvailable(c.Request.Context(), roomID, checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 1, "data": gin.H{"isAvailable": available}})
}

// CheckBookedDates godoc
// @Summary List the booked nights of a room
// @Tags bookings
// @Produce json
// @Param roomId query int true "Room ID"
// @Router /bookings/booked-dates [get]
func (b BookingController) CheckBookedDates(c *gin.Context) {
	roomID, ok := parseID(c, c.Query("roomId"), "room id")
	if !ok {
		return
	}

	dates, err := b.Bookings.ListBookedDates(c.Request.Context(), roomID)
	if err != nil {
		respondError(c, err)
		return
	}

	bookedDates := make([]string, 0, len(dates))
	for _, d := range dates {
		bookedDates = append(bookedDates, d.Format(services.DateLayout))
	}
	c.JSON(http.StatusOK, gin.H{"code": 1, "data": gin.H{"bookedDates": bookedDates}})
}

// CreateBooking godoc
// @Summary Book a room for [checkInDate, checkOutDate)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param booking body CreateBookingRequest true "Booking"
// @Router /bookings [post]
func (b BookingController) CreateBooking(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var request CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Invalid input", "details": err.Error()})
		return
	}
	checkIn, err := services.ParseDate(request.CheckInDate)
	if err != nil {
		respondError(c, err)
		return
	}
	checkOut, err := services.ParseDate(request.CheckOutDate)
	if err != nil {
		respondError(c, err)
		return
	}

	booking, err := b.Bookings.CreateBooking(c.Request.Context(), actor, services.BookingInput{
		RoomID:     request.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		AmountPaid: request.AmountPaid,
		PaymentRef: request.PaymentRef,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 1, "mess": "Booking created successfully", "data": booking})
}

// MyBookings godoc
// @Summary List the current user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Router /bookings/me [get]
func (b BookingController) MyBookings(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	bookings, err := b.Bookings.MyBookings(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 1, "data": bookings})
}

// GetBookingDetail godoc
// @Summary Get a booking of the current user (any booking for admins)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Router /bookings/{id} [get]
func (b BookingController) GetBookingDetail(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	bookingID, ok := parseID(c, c.Param("id"), "booking id")
	if !ok {
		return
	}

	booking, err := b.Bookings.GetBooking(c.Request.Context(), actor, bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 1, "data": booking})
}

// CancelBooking godoc
// @Summary Cancel a booking; it stops blocking the calendar
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Router /bookings/{id}/cancel [put]
func (b BookingController) CancelBooking(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	bookingID, ok := parseID(c, c.Param("id"), "booking id")
	if !ok {
		return
	}

	booking, err := b.Bookings.CancelBooking(c.Request.Context(), actor, bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Booking cancelled", "data": booking})
}

// GetAdminBookings godoc
// @Summary List all bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Router /admin/bookings [get]
func (b BookingController) GetAdminBookings(c *gin.Context) {
	bookings, err := b.Bookings.AllBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 1, "data": bookings})
}

// DeleteBooking godoc
// @Summary Delete a booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Router /admin/bookings/{id} [delete]
func (b BookingController) DeleteBooking(c *gin.Context) {
	bookingID, ok := parseID(c, c.Param("id"), "booking id")
	if !ok {
		return
	}

	if err := b.Bookings.DeleteBooking(c.Request.Context(), bookingID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Booking deleted successfully"})
}
