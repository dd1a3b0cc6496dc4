package models

import "time"

const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	RoomID       uint      `json:"roomId" gorm:"not null;index"`
	Room         *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	UserID       uint      `json:"userId" gorm:"not null;index"`
	CheckInDate  time.Time `json:"checkInDate" gorm:"not null"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"not null"`
	DaysOfStay   int       `json:"daysOfStay"`
	AmountPaid   int       `json:"amountPaid"`
	PaymentRef   string    `json:"paymentRef" gorm:"type:varchar(64)"`
	PaidAt       time.Time `json:"paidAt"`
	Status       string    `json:"status" gorm:"type:varchar(20);default:confirmed;index"`
}

// Overlaps dùng khoảng nửa mở [checkIn, checkOut): trả phòng và nhận phòng
// cùng ngày không bị tính là trùng.
func (b Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(b.CheckOutDate) && checkOut.After(b.CheckInDate)
}

func (b Booking) IsConfirmed() bool {
	return b.Status == BookingConfirmed
}
