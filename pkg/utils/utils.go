package utils

import (
	"crypto/rand"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	ErrNoFile          = errors.New("no file uploaded")
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrUnsupportedType = errors.New("uploaded file is not a supported image")
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateImageFile(file *multipart.FileHeader) (string, error)
}

type utils struct {
	maxFileSize int64
}

func New() IUtils {
	return &utils{
		maxFileSize: 5 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".ico":  true,
}

// ValidateImageFile checks size, extension and sniffed content and returns
// the content type to store the object with.
func (u *utils) ValidateImageFile(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", ErrNoFile
	}

	if file.Size > u.maxFileSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return "", ErrUnsupportedType
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}

	contentType := http.DetectContentType(head[:n])
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return contentType, nil
	case ext == ".svg" && strings.HasPrefix(contentType, "text/"):
		// svg sniffs as text/xml or text/plain
		return "image/svg+xml", nil
	}

	return "", ErrUnsupportedType
}
