package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookit/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxRoomUpdateAttempts = 3

var errStaleRoom = errors.New("room version changed")

// mutateRoom runs fn inside a transaction that reads the room row FOR UPDATE,
// so concurrent writers to one room queue on the row lock instead of failing.
// The room is then claimed by bumping its version with a conditional update;
// a claim that matches zero rows means the row changed under a store without
// row locks, and the whole unit is retried against a fresh read. The room's
// derived review fields are written back after fn returns, so a committed
// room always carries aggregates that match its committed reviews.
func mutateRoom(ctx context.Context, db *gorm.DB, roomID uint, preloadReviews bool, fn func(tx *gorm.DB, room *models.Room) error) error {
	for attempt := 1; attempt <= maxRoomUpdateAttempts; attempt++ {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			room, err := lockRoom(tx, roomID, preloadReviews)
			if err != nil {
				return err
			}

			if err := claimRoom(tx, room); err != nil {
				return err
			}

			if err := fn(tx, room); err != nil {
				return err
			}

			return tx.Model(&models.Room{}).Where("id = ?", room.ID).Updates(map[string]interface{}{
				"ratings":        room.Ratings,
				"num_of_reviews": room.NumOfReviews,
			}).Error
		})
		if !errors.Is(err, errStaleRoom) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 5 * time.Millisecond):
		}
	}
	return fmt.Errorf("%w: room %d is busy, retries exhausted", ErrConcurrency, roomID)
}

func loadRoom(tx *gorm.DB, roomID uint, preloadReviews bool) (*models.Room, error) {
	return findRoom(roomQuery(tx, preloadReviews, false), roomID)
}

// lockRoom is loadRoom holding the row lock until the transaction ends.
// SQLite has no row locks and ignores the clause.
func lockRoom(tx *gorm.DB, roomID uint, preloadReviews bool) (*models.Room, error) {
	return findRoom(roomQuery(tx, preloadReviews, true), roomID)
}

func roomQuery(tx *gorm.DB, preloadReviews, forUpdate bool) *gorm.DB {
	q := tx
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if preloadReviews {
		q = q.Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.id ASC")
		})
	}
	return q
}

func findRoom(q *gorm.DB, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := q.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room %d", ErrNotFound, roomID)
		}
		return nil, err
	}
	return &room, nil
}

func claimRoom(tx *gorm.DB, room *models.Room) error {
	res := tx.Model(&models.Room{}).
		Where("id = ? AND version = ?", room.ID, room.Version).
		Update("version", room.Version+1)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errStaleRoom
	}
	room.Version++
	return nil
}
