package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"bookit/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type BookingService struct {
	DB       *gorm.DB
	Redis    *redis.Client
	CacheTTL time.Duration
	Now      func() time.Time
}

func NewBookingService(db *gorm.DB, rdb *redis.Client, ttl time.Duration) *BookingService {
	return &BookingService{DB: db, Redis: rdb, CacheTTL: ttl, Now: time.Now}
}

type BookingInput struct {
	RoomID     uint
	CheckIn    time.Time
	CheckOut   time.Time
	AmountPaid int
	PaymentRef string
}

// IsRoomAvailable reports whether no confirmed booking of the room overlaps
// [checkIn, checkOut).
func (s *BookingService) IsRoomAvailable(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	checkIn, checkOut = TruncateDate(checkIn), TruncateDate(checkOut)
	if err := validateStay(checkIn, checkOut); err != nil {
		return false, err
	}

	db := s.DB.WithContext(ctx)
	if err := ensureRoomExists(db, roomID); err != nil {
		return false, err
	}

	bookings, err := confirmedBookings(db, roomID)
	if err != nil {
		return false, err
	}
	return !hasOverlap(bookings, checkIn, checkOut), nil
}

// ListBookedDates returns the booked nights of the room, ascending and deduplicated.
func (s *BookingService) ListBookedDates(ctx context.Context, roomID uint) ([]time.Time, error) {
	cacheKey := bookedDatesCacheKey(roomID)

	var cached []string
	if err := GetFromRedis(ctx, s.Redis, cacheKey, &cached); err == nil {
		if dates, err := parseDates(cached); err == nil {
			return dates, nil
		}
	}

	db := s.DB.WithContext(ctx)
	if err := ensureRoomExists(db, roomID); err != nil {
		return nil, err
	}

	bookings, err := confirmedBookings(db, roomID)
	if err != nil {
		return nil, err
	}
	dates := ExpandBookedDates(bookings)

	if err := SetToRedis(ctx, s.Redis, cacheKey, formatDates(dates), s.CacheTTL); err != nil {
		log.Printf("Failed to cache booked dates for room %d: %v", roomID, err)
	}
	return dates, nil
}

// CreateBooking checks availability and inserts the booking as one unit
// serialized per room, so two requests can never both pass the check.
func (s *BookingService) CreateBooking(ctx context.Context, actor Actor, in BookingInput) (*models.Booking, error) {
	checkIn, checkOut := TruncateDate(in.CheckIn), TruncateDate(in.CheckOut)
	if err := validateStay(checkIn, checkOut); err != nil {
		return nil, err
	}
	if err := validateStayLength(checkIn, checkOut); err != nil {
		return nil, err
	}
	if checkIn.Before(TruncateDate(s.Now())) {
		return nil, fmt.Errorf("%w: check-in date cannot be in the past", ErrValidation)
	}
	if in.AmountPaid < 0 {
		return nil, fmt.Errorf("%w: amount paid cannot be negative", ErrValidation)
	}

	paymentRef := in.PaymentRef
	if paymentRef == "" {
		paymentRef = uuid.NewString()
	}

	var booking models.Booking
	err := mutateRoom(ctx, s.DB, in.RoomID, false, func(tx *gorm.DB, room *models.Room) error {
		bookings, err := confirmedBookings(tx, room.ID)
		if err != nil {
			return err
		}
		if hasOverlap(bookings, checkIn, checkOut) {
			return fmt.Errorf("%w: room %d is already booked between %s and %s",
				ErrConflict, room.ID, checkIn.Format(DateLayout), checkOut.Format(DateLayout))
		}

		booking = models.Booking{
			RoomID:       room.ID,
			UserID:       actor.ID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			DaysOfStay:   nights(checkIn, checkOut),
			AmountPaid:   in.AmountPaid,
			PaymentRef:   paymentRef,
			PaidAt:       s.Now(),
			Status:       models.BookingConfirmed,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, booking.RoomID)
	return &booking, nil
}

// CancelBooking is allowed for the owner or an admin. A cancelled booking no
// longer blocks the calendar.
func (s *BookingService) CancelBooking(ctx context.Context, actor Actor, bookingID uint) (*models.Booking, error) {
	booking, err := s.findBooking(s.DB.WithContext(ctx), bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.ID && !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: booking %d belongs to another user", ErrForbidden, bookingID)
	}
	if booking.Status == models.BookingCancelled {
		return booking, nil
	}

	err = mutateRoom(ctx, s.DB, booking.RoomID, false, func(tx *gorm.DB, _ *models.Room) error {
		return tx.Model(&models.Booking{}).Where("id = ?", booking.ID).Update("status", models.BookingCancelled).Error
	})
	if err != nil {
		return nil, err
	}
	booking.Status = models.BookingCancelled

	s.invalidate(ctx, booking.RoomID)
	return booking, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, bookingID uint) error {
	booking, err := s.findBooking(s.DB.WithContext(ctx), bookingID)
	if err != nil {
		return err
	}
	if err := s.DB.WithContext(ctx).Delete(&models.Booking{}, booking.ID).Error; err != nil {
		return err
	}
	s.invalidate(ctx, booking.RoomID)
	return nil
}

func (s *BookingService) GetBooking(ctx context.Context, actor Actor, bookingID uint) (*models.Booking, error) {
	booking, err := s.findBooking(s.DB.WithContext(ctx).Preload("Room"), bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.ID && !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: booking %d belongs to another user", ErrForbidden, bookingID)
	}
	return booking, nil
}

func (s *BookingService) MyBookings(ctx context.Context, actor Actor) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	err := s.DB.WithContext(ctx).Preload("Room").
		Where("user_id = ?", actor.ID).
		Order("check_in_date DESC").
		Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) AllBookings(ctx context.Context) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	err := s.DB.WithContext(ctx).Preload("Room").Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) findBooking(db *gorm.DB, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
		}
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) invalidate(ctx context.Context, roomID uint) {
	if err := DeleteFromRedis(ctx, s.Redis, bookedDatesCacheKey(roomID)); err != nil {
		log.Printf("Failed to invalidate booked dates cache for room %d: %v", roomID, err)
	}
}

func ensureRoomExists(db *gorm.DB, roomID uint) error {
	var count int64
	if err := db.Model(&models.Room{}).Where("id = ?", roomID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: room %d", ErrNotFound, roomID)
	}
	return nil
}

func confirmedBookings(db *gorm.DB, roomID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Where("room_id = ? AND status = ?", roomID, models.BookingConfirmed).
		Order("check_in_date ASC").
		Find(&bookings).Error
	return bookings, err
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(DateLayout)
	}
	return out
}

func parseDates(values []string) ([]time.Time, error) {
	out := make([]time.Time, len(values))
	for i, v := range values {
		d, err := time.Parse(DateLayout, v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
