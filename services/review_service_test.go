package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"bookit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func reloadRoom(t *testing.T, db *gorm.DB, id uint) *models.Room {
	t.Helper()
	room, err := loadRoom(db, id, true)
	require.NoError(t, err)
	return room
}

func TestSubmitReview_CreatesAndAggregates(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(setupTestDB(t), nil, 0)
	room := seedRoom(t, svc.DB, "Harbour")

	require.NoError(t, svc.SubmitReview(ctx, Actor{ID: 1, Name: "Alice"}, ReviewInput{RoomID: room.ID, Rating: 5, Comment: "lovely"}))
	require.NoError(t, svc.SubmitReview(ctx, Actor{ID: 2, Name: "Bob"}, ReviewInput{RoomID: room.ID, Rating: 2}))

	got := reloadRoom(t, svc.DB, room.ID)
	require.Len(t, got.Reviews, 2)
	assert.Equal(t, 2, got.NumOfReviews)
	assert.Equal(t, 3.5, got.Ratings)
	assert.Equal(t, "Alice", got.Reviews[0].Name)
}

func TestSubmitReview_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(setupTestDB(t), nil, 0)
	room := seedRoom(t, svc.DB, "Harbour")
	in := ReviewInput{RoomID: room.ID, Rating: 4, Comment: "good"}

	require.NoError(t, svc.SubmitReview(ctx, guest, in))
	require.NoError(t, svc.SubmitReview(ctx, guest, in))

	got := reloadRoom(t, svc.DB, room.ID)
	assert.Len(t, got.Reviews, 1)
	assert.Equal(t, 1, got.NumOfReviews)
	assert.Equal(t, 4.0, got.Ratings)
}

func TestSubmitReview_UpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(setupTestDB(t), nil, 0)
	room := seedRoom(t, svc.DB, "Harbour")

	require.NoError(t, svc.SubmitReview(ctx, Actor{ID: 1, Name: "Alice"}, ReviewInput{RoomID: room.ID, Rating: 5, Comment: "first"}))
	require.NoError(t, svc.SubmitReview(ctx, Actor{ID: 2, Name: "Bob"}, ReviewInput{RoomID: room.ID, Rating: 3}))
	before := reloadRoom(t, svc.DB, room.ID)

	require.NoError(t, svc.SubmitReview(ctx, Actor{ID: 1, Name: "Alice"}, ReviewInput{RoomID: room.ID, Rating: 1, Comment: "second"}))

	after := reloadRoom(t, svc.DB, room.ID)
	require.Len(t, after.Reviews, 2)
	assert.Equal(t, before.Reviews[0].ID, after.Reviews[0].ID)
	assert.Equal(t, uint(1), after.Reviews[0].UserID)
	assert.Equal(t, 1, after.Reviews[0].Rating)
	assert.Equal(t, "second", after.Reviews[0].Comment)
	assert.Equal(t, 2.0, after.Ratings)
	assert.Equal(t, 2, after.NumOfReviews)
}

func TestSubmitReview_Errors(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(setupTestDB(t), nil, 0)
	room := seedRoom(t, svc.DB, "Harbour")

	err := svc.SubmitReview(ctx, guest, ReviewInput{RoomID: room.ID + 100, Rating: 3})
	assert.ErrorIs(t, err, ErrNotFound)

	for _, rating := range []int{0, 6, -1} {
		err := svc.SubmitReview(ctx, guest, ReviewInput{RoomID: room.ID, Rating: rating})
		assert.ErrorIs(t, err, ErrValidation, "rating %d", rating)
	}

	err = svc.SubmitReview(ctx, Actor{}, ReviewInput{RoomID: room.ID, Rating: 3})
	assert.ErrorIs(t, err, ErrValidation)

	got := reloadRoom(t, svc.DB, room.ID)
	assert.Empty(t, got.Reviews)
	assert.Equal(t, 0.0, got.Ratings)
}

func TestDeleteReview(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(setupTestDB(t), nil, 0)
	room := seedRoom(t, svc.DB, "Harbour")

	require.NoError(t, svc.SubmitReview(ctx, Actor{ID: 1}, ReviewInput{RoomID: room.ID, Rating: 5}))
	require.NoError(t, svc.SubmitReview(ctx, Actor{ID: 2}, ReviewInput{RoomID: room.ID, Rating: 1}))
	reviews := reloadRoom(t, svc.DB, room.ID).Reviews
	require.Len(t, reviews, 2)

	require.NoError(t, svc.DeleteReview(ctx, room.ID, reviews[0].ID))
	got := reloadRoom(t, svc.DB, room.ID)
	assert.Equal(t, 1, got.NumOfReviews)
	assert.Equal(t, 1.0, got.Ratings)

	assert.ErrorIs(t, svc.DeleteReview(ctx, room.ID, reviews[0].ID), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteReview(ctx, room.ID+100, reviews[1].ID), ErrNotFound)

	require.NoError(t, svc.DeleteReview(ctx, room.ID, reviews[1].ID))
	got = reloadRoom(t, svc.DB, room.ID)
	assert.Empty(t, got.Reviews)
	assert.Equal(t, 0, got.NumOfReviews)
	assert.Equal(t, 0.0, got.Ratings)
}

func TestSubmitReview_ConcurrentReviewers(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(setupTestDB(t), nil, 0)
	room := seedRoom(t, svc.DB, "Harbour")

	const n = 10
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			actor := Actor{ID: uint(i), Name: fmt.Sprintf("user-%d", i)}
			errs <- svc.SubmitReview(ctx, actor, ReviewInput{RoomID: room.ID, Rating: i%5 + 1})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	got := reloadRoom(t, svc.DB, room.ID)
	assert.Len(t, got.Reviews, n)
	assert.Equal(t, n, got.NumOfReviews)
	assert.InDelta(t, models.AverageRating(got.Reviews), got.Ratings, 1e-9)
}

func TestSubmitReview_ConcurrentSameUser(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(setupTestDB(t), nil, 0)
	room := seedRoom(t, svc.DB, "Harbour")

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.SubmitReview(ctx, guest, ReviewInput{RoomID: room.ID, Rating: 4}))
		}()
	}
	wg.Wait()

	got := reloadRoom(t, svc.DB, room.ID)
	assert.Len(t, got.Reviews, 1)
	assert.Equal(t, 1, got.NumOfReviews)
	assert.Equal(t, 4.0, got.Ratings)
}

func TestClaimRoom_StaleVersion(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "Harbour")

	stale, err := loadRoom(db, room.ID, false)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).Update("version", gorm.Expr("version + 1")).Error)

	assert.ErrorIs(t, claimRoom(db, stale), errStaleRoom)

	fresh, err := loadRoom(db, room.ID, false)
	require.NoError(t, err)
	require.NoError(t, claimRoom(db, fresh))
	assert.EqualValues(t, 2, fresh.Version)
}

func TestSubmitReview_RetriesExhausted(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	room := seedRoom(t, db, "Harbour")

	// every claim races with a writer that bumps the version first
	err := db.Callback().Update().Before("gorm:update").Register("test:bump_version", func(tx *gorm.DB) {
		if tx.Statement.Table == "rooms" {
			_, _ = tx.Statement.ConnPool.ExecContext(tx.Statement.Context, "UPDATE rooms SET version = version + 1")
		}
	})
	require.NoError(t, err)

	svc := NewReviewService(db, nil, 0)
	err = svc.SubmitReview(ctx, guest, ReviewInput{RoomID: room.ID, Rating: 5})
	assert.ErrorIs(t, err, ErrConcurrency)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetReviews_Cache(t *testing.T) {
	ctx := context.Background()
	mr, rdb := setupTestRedis(t)
	svc := NewReviewService(setupTestDB(t), rdb, 0)
	room := seedRoom(t, svc.DB, "Harbour")

	reviews, err := svc.GetReviews(ctx, room.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.True(t, mr.Exists(reviewsCacheKey(room.ID)))

	require.NoError(t, svc.SubmitReview(ctx, guest, ReviewInput{RoomID: room.ID, Rating: 3, Comment: "ok"}))
	assert.False(t, mr.Exists(reviewsCacheKey(room.ID)))

	reviews, err = svc.GetReviews(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "ok", reviews[0].Comment)

	_, err = svc.GetReviews(ctx, room.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckReviewAvailability(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	room := seedRoom(t, db, "Harbour")
	bookings := NewBookingService(db, nil, 0)
	bookings.Now = fixedNow("2023-12-01")
	reviews := NewReviewService(db, nil, 0)

	ok, err := reviews.CheckReviewAvailability(ctx, room.ID, guest.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	b, err := bookings.CreateBooking(ctx, guest, BookingInput{RoomID: room.ID, CheckIn: mustDate(t, "2024-01-01"), CheckOut: mustDate(t, "2024-01-02")})
	require.NoError(t, err)

	ok, err = reviews.CheckReviewAvailability(ctx, room.ID, guest.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = bookings.CancelBooking(ctx, guest, b.ID)
	require.NoError(t, err)

	ok, err = reviews.CheckReviewAvailability(ctx, room.ID, guest.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
