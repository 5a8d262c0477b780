package storage

import (
	"errors"
	"mime/multipart"

	"RecipeShare-Backend/internal/utils"
)

// AllowImage lists the content types accepted for uploaded images.
var AllowImage = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

var (
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrFileOpenFailed     = errors.New("failed to open uploaded file")
)

// FileStorage stores uploaded files and resolves their public URLs.
// Object keys are storage-internal; links are what gets persisted on entities.
type FileStorage interface {
	UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error)
	UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error)
	DeleteFile(objectKey string) error
	GetPublicLinkKey(objectKey string) string
	GetObjectKeyFromLink(link string) string
}

// NewFileStorage picks the configured driver. Local disk is the default;
// S3 is used when STORAGE_DRIVER is set to "s3".
func NewFileStorage() FileStorage {
	if utils.GetConfig("STORAGE_DRIVER") == "s3" {
		return NewAwsS3()
	}
	return NewLocalStorage()
}

func typeAllowed(contentType string, allowedTypes []string) bool {
	if len(allowedTypes) == 0 {
		return true
	}
	for _, t := range allowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}
