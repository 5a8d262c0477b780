package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"RecipeShare-Backend/internal/utils"
)

type localStorage struct {
	baseDir    string
	publicPath string
}

// NewLocalStorage stores files under UPLOAD_DIR and serves them as
// relative /uploads links.
func NewLocalStorage() FileStorage {
	baseDir := utils.GetConfig("UPLOAD_DIR")
	if baseDir == "" {
		baseDir = "./uploads"
	}
	return &localStorage{
		baseDir:    baseDir,
		publicPath: "/uploads",
	}
}

func (l *localStorage) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if !typeAllowed(contentType, allowedTypes) {
		return "", ErrFileTypeNotAllowed
	}

	ext := filepath.Ext(file.Filename)
	objectKey := fmt.Sprintf("%s/%s%s", folder, fileName, ext)

	if err := l.write(objectKey, file); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (l *localStorage) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if !typeAllowed(contentType, allowedTypes) {
		return "", ErrFileTypeNotAllowed
	}

	if err := l.write(objectKey, file); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (l *localStorage) write(objectKey string, file *multipart.FileHeader) error {
	dst := filepath.Join(l.baseDir, filepath.FromSlash(objectKey))
	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return ErrFileOpenFailed
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

func (l *localStorage) DeleteFile(objectKey string) error {
	return os.Remove(filepath.Join(l.baseDir, filepath.FromSlash(objectKey)))
}

func (l *localStorage) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("%s/%s", l.publicPath, objectKey)
}

func (l *localStorage) GetObjectKeyFromLink(link string) string {
	prefix := l.publicPath + "/"
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
