package services

import (
	"context"
	"errors"
	"fmt"

	"bookit/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaHost stores room images out of band. Only the returned storage key
// and URL are persisted with the room.
type MediaHost interface {
	Upload(ctx context.Context, file string, folder string) (models.RoomImage, error)
	Destroy(ctx context.Context, storageKey string) error
}

type CloudinaryMedia struct {
	Cld *cloudinary.Cloudinary
}

func NewCloudinaryMedia(cld *cloudinary.Cloudinary) *CloudinaryMedia {
	return &CloudinaryMedia{Cld: cld}
}

// Upload accepts a base64 data URI or a remote image URL.
func (m *CloudinaryMedia) Upload(ctx context.Context, file string, folder string) (models.RoomImage, error) {
	resp, err := m.Cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return models.RoomImage{}, fmt.Errorf("upload image: %w", err)
	}
	if resp.Error.Message != "" {
		return models.RoomImage{}, errors.New("upload image: " + resp.Error.Message)
	}
	return models.RoomImage{StorageKey: resp.PublicID, URL: resp.SecureURL}, nil
}

func (m *CloudinaryMedia) Destroy(ctx context.Context, storageKey string) error {
	resp, err := m.Cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: storageKey})
	if err != nil {
		return fmt.Errorf("destroy image %s: %w", storageKey, err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("destroy image %s: %s", storageKey, resp.Error.Message)
	}
	return nil
}
