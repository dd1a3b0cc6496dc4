package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookit/models"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ReviewService struct {
	DB       *gorm.DB
	Redis    *redis.Client
	CacheTTL time.Duration
	validate *validator.Validate
}

func NewReviewService(db *gorm.DB, rdb *redis.Client, ttl time.Duration) *ReviewService {
	return &ReviewService{DB: db, Redis: rdb, CacheTTL: ttl, validate: validator.New()}
}

type ReviewInput struct {
	RoomID  uint   `json:"roomId" validate:"required"`
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// SubmitReview creates the actor's review of the room or, when one exists,
// replaces its rating and comment in place. Submitting the same input twice
// leaves a single review.
func (s *ReviewService) SubmitReview(ctx context.Context, actor Actor, in ReviewInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if actor.ID == 0 {
		return fmt.Errorf("%w: reviewer is required", ErrValidation)
	}

	err := mutateRoom(ctx, s.DB, in.RoomID, true, func(tx *gorm.DB, room *models.Room) error {
		review, created := room.UpsertReview(actor.ID, actor.Name, in.Rating, in.Comment)
		if created {
			return tx.Create(review).Error
		}
		return tx.Model(&models.Review{}).Where("id = ?", review.ID).Updates(map[string]interface{}{
			"rating":  review.Rating,
			"comment": review.Comment,
		}).Error
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, in.RoomID)
	return nil
}

// DeleteReview removes one review of the room and recomputes its rating.
func (s *ReviewService) DeleteReview(ctx context.Context, roomID, reviewID uint) error {
	err := mutateRoom(ctx, s.DB, roomID, true, func(tx *gorm.DB, room *models.Room) error {
		removed, ok := room.RemoveReview(reviewID)
		if !ok {
			return fmt.Errorf("%w: review %d in room %d", ErrNotFound, reviewID, roomID)
		}
		return tx.Delete(&models.Review{}, removed.ID).Error
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, roomID)
	return nil
}

func (s *ReviewService) GetReviews(ctx context.Context, roomID uint) ([]models.Review, error) {
	cacheKey := reviewsCacheKey(roomID)

	var reviews []models.Review
	if err := GetFromRedis(ctx, s.Redis, cacheKey, &reviews); err == nil {
		return reviews, nil
	}

	db := s.DB.WithContext(ctx)
	if err := ensureRoomExists(db, roomID); err != nil {
		return nil, err
	}

	reviews = make([]models.Review, 0)
	if err := db.Where("room_id = ?", roomID).Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, err
	}

	if err := SetToRedis(ctx, s.Redis, cacheKey, reviews, s.CacheTTL); err != nil {
		log.Printf("Failed to cache reviews for room %d: %v", roomID, err)
	}
	return reviews, nil
}

// CheckReviewAvailability reports whether the user may review the room,
// which requires at least one confirmed booking of it.
func (s *ReviewService) CheckReviewAvailability(ctx context.Context, roomID, userID uint) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.Booking{}).
		Where("room_id = ? AND user_id = ? AND status = ?", roomID, userID, models.BookingConfirmed).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *ReviewService) invalidate(ctx context.Context, roomID uint) {
	if err := DeleteFromRedis(ctx, s.Redis, reviewsCacheKey(roomID), roomCacheKey(roomID)); err != nil {
		log.Printf("Failed to invalidate review cache for room %d: %v", roomID, err)
	}
}
