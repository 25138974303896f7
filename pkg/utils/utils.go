package utils

import (
	"crypto/rand"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateAudioFile(file *multipart.FileHeader) error
}

type utils struct {
	maxFileSize int64
}

func New() IUtils {
	return &utils{
		maxFileSize: 25 * 1024 * 1024,
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

var audioExtensions = map[string]bool{
	".mp3":  true,
	".mp4":  true,
	".m4a":  true,
	".wav":  true,
	".webm": true,
	".ogg":  true,
	".flac": true,
}

func (u *utils) ValidateAudioFile(file *multipart.FileHeader) error {
	if file == nil {
		return errors.New("no file uploaded")
	}

	if file.Size > u.maxFileSize {
		return errors.New("file size exceeds limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !audioExtensions[ext] {
		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "audio/") {
			return errors.New("uploaded file is not an audio recording")
		}
	}

	return nil
}
