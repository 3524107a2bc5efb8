package uploads

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/storekit/backend/pkg/apperr"
)

// URLPrefix is where stored files are served from.
const URLPrefix = "/uploads"

var (
	errBadFormat = apperr.New(apperr.Invalid, "unsupported image format: only jpg, jpeg, png, gif and webp are allowed")
	errTooLarge  = apperr.New(apperr.Invalid, "image file is too large")
)

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Storage keeps uploaded images on local disk under baseDir, one file per
// upload with a random name, and serves them under URLPrefix.
type Storage struct {
	baseDir  string
	maxBytes int64
}

func NewStorage(baseDir string) *Storage {
	return &Storage{baseDir: baseDir, maxBytes: 5 << 20} // 5MB
}

// Save writes the uploaded file and returns its public URL.
func (s *Storage) Save(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExts[ext] {
		return "", errBadFormat
	}
	if fh.Size > s.maxBytes {
		return "", errTooLarge
	}
	file, err := fh.Open()
	if err != nil {
		return "", apperr.Wrap(apperr.Invalid, "failed to open uploaded file", err)
	}
	defer file.Close()

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to prepare storage", err)
	}
	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to store file", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, io.LimitReader(file, s.maxBytes)); err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to store file", err)
	}
	return URLPrefix + "/" + name, nil
}

// Remove unlinks the file behind a previously returned URL. Unknown URLs and
// already-deleted files are not errors.
func (s *Storage) Remove(url string) error {
	name := path.Base(strings.TrimPrefix(url, URLPrefix+"/"))
	if name == "" || name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
