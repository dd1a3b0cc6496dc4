package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"bookit/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const RoomsPerPage = 4

// catalogColumns are the room columns owned by the catalog. Ratings,
// review counts and the version belong to the review and booking engines.
var catalogColumns = []string{
	"name", "description", "address", "price_per_night", "guest_capacity", "num_of_beds",
	"internet", "breakfast", "air_conditioned", "pets_allowed", "room_cleaning", "category", "images", "updated_at",
}

type RoomService struct {
	DB       *gorm.DB
	Redis    *redis.Client
	CacheTTL time.Duration
	Media    MediaHost
	Folder   string
}

func NewRoomService(db *gorm.DB, rdb *redis.Client, ttl time.Duration, media MediaHost, folder string) *RoomService {
	return &RoomService{DB: db, Redis: rdb, CacheTTL: ttl, Media: media, Folder: folder}
}

type RoomFilter struct {
	Keyword       string
	Category      string
	GuestCapacity int
	Page          int
}

type RoomPage struct {
	Rooms              []models.Room `json:"rooms"`
	RoomsCount         int64         `json:"roomsCount"`
	ResPerPage         int           `json:"resPerPage"`
	FilteredRoomsCount int64         `json:"filteredRoomsCount"`
}

type RoomInput struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Address        string   `json:"address"`
	PricePerNight  int      `json:"pricePerNight"`
	GuestCapacity  int      `json:"guestCapacity"`
	NumOfBeds      int      `json:"numOfBeds"`
	Internet       bool     `json:"internet"`
	Breakfast      bool     `json:"breakfast"`
	AirConditioned bool     `json:"airConditioned"`
	PetsAllowed    bool     `json:"petsAllowed"`
	RoomCleaning   bool     `json:"roomCleaning"`
	Category       string   `json:"category"`
	Images         []string `json:"images"`
}

func (in RoomInput) applyTo(room *models.Room) {
	room.Name = strings.TrimSpace(in.Name)
	room.Description = in.Description
	room.Address = in.Address
	room.PricePerNight = in.PricePerNight
	room.GuestCapacity = in.GuestCapacity
	room.NumOfBeds = in.NumOfBeds
	room.Internet = in.Internet
	room.Breakfast = in.Breakfast
	room.AirConditioned = in.AirConditioned
	room.PetsAllowed = in.PetsAllowed
	room.RoomCleaning = in.RoomCleaning
	room.Category = in.Category
}

func (s *RoomService) ListRooms(ctx context.Context, f RoomFilter) (RoomPage, error) {
	db := s.DB.WithContext(ctx)
	page := RoomPage{Rooms: make([]models.Room, 0), ResPerPage: RoomsPerPage}

	if err := db.Model(&models.Room{}).Count(&page.RoomsCount).Error; err != nil {
		return page, err
	}

	filter := func(q *gorm.DB) *gorm.DB {
		if kw := strings.TrimSpace(f.Keyword); kw != "" {
			q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(kw)+"%")
		}
		if f.Category != "" {
			q = q.Where("category = ?", f.Category)
		}
		if f.GuestCapacity > 0 {
			q = q.Where("guest_capacity = ?", f.GuestCapacity)
		}
		return q
	}

	if err := db.Model(&models.Room{}).Scopes(filter).Count(&page.FilteredRoomsCount).Error; err != nil {
		return page, err
	}

	current := f.Page
	if current < 1 {
		current = 1
	}
	err := db.Scopes(filter).
		Order("id ASC").
		Offset((current - 1) * RoomsPerPage).
		Limit(RoomsPerPage).
		Find(&page.Rooms).Error
	if err != nil {
		return page, err
	}
	return page, nil
}

func (s *RoomService) GetRoom(ctx context.Context, roomID uint) (*models.Room, error) {
	cacheKey := roomCacheKey(roomID)

	var cached models.Room
	if err := GetFromRedis(ctx, s.Redis, cacheKey, &cached); err == nil && cached.ID == roomID {
		return &cached, nil
	}

	room, err := loadRoom(s.DB.WithContext(ctx), roomID, true)
	if err != nil {
		return nil, err
	}

	if err := SetToRedis(ctx, s.Redis, cacheKey, room, s.CacheTTL); err != nil {
		log.Printf("Failed to cache room %d: %v", roomID, err)
	}
	return room, nil
}

func (s *RoomService) CreateRoom(ctx context.Context, actor Actor, in RoomInput) (*models.Room, error) {
	room := &models.Room{UserID: actor.ID}
	in.applyTo(room)
	if err := room.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	images, err := s.uploadImages(ctx, in.Images)
	if err != nil {
		return nil, err
	}
	room.Images = images

	if err := s.DB.WithContext(ctx).Create(room).Error; err != nil {
		s.destroyImages(ctx, images)
		return nil, err
	}
	return room, nil
}

// UpdateRoom replaces the catalog fields. New images replace the old ones,
// which are destroyed on the media host.
func (s *RoomService) UpdateRoom(ctx context.Context, roomID uint, in RoomInput) (*models.Room, error) {
	room, err := loadRoom(s.DB.WithContext(ctx), roomID, false)
	if err != nil {
		return nil, err
	}

	in.applyTo(room)
	if err := room.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if len(in.Images) > 0 {
		images, err := s.uploadImages(ctx, in.Images)
		if err != nil {
			return nil, err
		}
		s.destroyImages(ctx, room.Images)
		room.Images = images
	}

	if err := s.DB.WithContext(ctx).Model(room).Select(catalogColumns).Updates(room).Error; err != nil {
		return nil, err
	}

	s.invalidate(ctx, roomID)
	return room, nil
}

// DeleteRoom removes the room together with its reviews and bookings.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID uint) error {
	room, err := loadRoom(s.DB.WithContext(ctx), roomID, false)
	if err != nil {
		return err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", roomID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", roomID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Room{}, roomID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: room %d", ErrNotFound, roomID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.destroyImages(ctx, room.Images)
	s.invalidate(ctx, roomID)
	return nil
}

func (s *RoomService) uploadImages(ctx context.Context, files []string) ([]models.RoomImage, error) {
	images := make([]models.RoomImage, 0, len(files))
	if len(files) == 0 {
		return images, nil
	}
	if s.Media == nil {
		return nil, errors.New("image upload is not configured")
	}

	for _, file := range files {
		img, err := s.Media.Upload(ctx, file, s.Folder)
		if err != nil {
			s.destroyImages(ctx, images)
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func (s *RoomService) destroyImages(ctx context.Context, images []models.RoomImage) {
	if s.Media == nil {
		return
	}
	for _, img := range images {
		if err := s.Media.Destroy(ctx, img.StorageKey); err != nil {
			log.Printf("Failed to destroy image %s: %v", img.StorageKey, err)
		}
	}
}

func (s *RoomService) invalidate(ctx context.Context, roomID uint) {
	keys := []string{roomCacheKey(roomID), reviewsCacheKey(roomID), bookedDatesCacheKey(roomID)}
	if err := DeleteFromRedis(ctx, s.Redis, keys...); err != nil {
		log.Printf("Failed to invalidate cache for room %d: %v", roomID, err)
	}
}
