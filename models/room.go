package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// RoomImage là ảnh đã được lưu trên media host.
type RoomImage struct {
	StorageKey string `json:"storageKey"`
	URL        string `json:"url"`
}

// Room sở hữu danh sách review. Reviews, Ratings và NumOfReviews chỉ thay đổi
// qua UpsertReview và RemoveReview để điểm trung bình luôn khớp với danh sách.
type Room struct {
	ID             uint                           `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time                      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time                      `gorm:"autoUpdateTime" json:"updatedAt"`
	Name           string                         `gorm:"not null" json:"name" validate:"required,max=100"`
	Description    string                         `gorm:"type:text" json:"description" validate:"required"`
	Address        string                         `json:"address" validate:"required"`
	PricePerNight  int                            `json:"pricePerNight" validate:"gte=0"`
	GuestCapacity  int                            `json:"guestCapacity" validate:"gte=1"`
	NumOfBeds      int                            `json:"numOfBeds" validate:"gte=1"`
	Internet       bool                           `json:"internet"`
	Breakfast      bool                           `json:"breakfast"`
	AirConditioned bool                           `json:"airConditioned"`
	PetsAllowed    bool                           `json:"petsAllowed"`
	RoomCleaning   bool                           `json:"roomCleaning"`
	Category       string                         `gorm:"type:varchar(20)" json:"category" validate:"oneof=King Single Twins"`
	Images         datatypes.JSONSlice[RoomImage] `json:"images"`
	Ratings        float64                        `gorm:"default:0" json:"ratings"`
	NumOfReviews   int                            `gorm:"default:0" json:"numOfReviews"`
	Reviews        []Review                       `gorm:"foreignKey:RoomID" json:"reviews,omitempty"`
	UserID         uint                           `json:"userId"`
	Version        int64                          `gorm:"not null;default:0" json:"-"`
}

func (r *Room) Validate() error {
	return validator.New().Struct(r)
}

func (r *Room) reviewIndexByUser(userID uint) int {
	for i := range r.Reviews {
		if r.Reviews[i].UserID == userID {
			return i
		}
	}
	return -1
}

// UpsertReview ghi đè đánh giá cũ của user (giữ nguyên vị trí) hoặc thêm mới.
// Trả về review đã thay đổi và true nếu là review mới.
func (r *Room) UpsertReview(userID uint, name string, rating int, comment string) (*Review, bool) {
	if i := r.reviewIndexByUser(userID); i >= 0 {
		r.Reviews[i].Rating = rating
		r.Reviews[i].Comment = comment
		r.refreshAggregate()
		return &r.Reviews[i], false
	}

	r.Reviews = append(r.Reviews, Review{
		RoomID:  r.ID,
		UserID:  userID,
		Name:    name,
		Rating:  rating,
		Comment: comment,
	})
	r.refreshAggregate()
	return &r.Reviews[len(r.Reviews)-1], true
}

func (r *Room) RemoveReview(reviewID uint) (Review, bool) {
	for i := range r.Reviews {
		if r.Reviews[i].ID == reviewID {
			removed := r.Reviews[i]
			r.Reviews = append(r.Reviews[:i:i], r.Reviews[i+1:]...)
			r.refreshAggregate()
			return removed, true
		}
	}
	return Review{}, false
}

func (r *Room) HasReviewFrom(userID uint) bool {
	return r.reviewIndexByUser(userID) >= 0
}

func (r *Room) refreshAggregate() {
	r.NumOfReviews = len(r.Reviews)
	r.Ratings = AverageRating(r.Reviews)
}

// AverageRating là trung bình cộng số sao, bằng 0 khi chưa có review.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, rv := range reviews {
		sum += rv.Rating
	}
	return float64(sum) / float64(len(reviews))
}
