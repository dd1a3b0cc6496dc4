package config

import (
	"errors"

	"github.com/cloudinary/cloudinary-go/v2"
)

func ConnectCloudinary(s Settings) (*cloudinary.Cloudinary, error) {
	if s.CloudinaryCloudName == "" || s.CloudinaryAPIKey == "" || s.CloudinaryAPISecret == "" {
		return nil, errors.New("cloudinary credentials are not configured")
	}
	return cloudinary.NewFromParams(s.CloudinaryCloudName, s.CloudinaryAPIKey, s.CloudinaryAPISecret)
}
