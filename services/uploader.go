package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/12432383-sudo/housecraft-shop/repository"
)

// MaxUploadSize caps product photos at 10 MiB.
const MaxUploadSize = 10 * 1024 * 1024

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadStage is the coarse progress signal for a single upload.
type UploadStage int

const (
	UploadStarted UploadStage = iota
	UploadStored
	UploadCompleted
)

// ProgressFunc receives the stage transitions of an upload. May be nil.
type ProgressFunc func(stage UploadStage)

// UploadFile is one incoming image: declared name, size and MIME type plus
// the byte stream.
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Body        io.Reader
}

// Uploader validates, names and stores product imagery, returning public
// URLs. It knows nothing about products; the admin surface wires the URLs
// into drafts.
type Uploader struct {
	store repository.ObjectStore
	log   *zap.Logger
}

func NewUploader(store repository.ObjectStore, log *zap.Logger) *Uploader {
	return &Uploader{store: store, log: log}
}

// Validate rejects oversized files and anything outside the image
// allow-lists. The first failing check is the reported reason.
func (u *Uploader) Validate(f UploadFile) error {
	if f.Size > MaxUploadSize {
		return errors.New("file size must be under 10MB")
	}
	if !allowedMIMETypes[f.ContentType] {
		return errors.New("only JPG, PNG, GIF, and WebP images are allowed")
	}
	ext := strings.ToLower(path.Ext(f.Name))
	if !allowedExtensions[ext] {
		return errors.New("invalid file extension")
	}
	return nil
}

// Upload stores one validated file under a collision-resistant name scoped
// to folder and returns its public URL. The object name is never derived
// from the client filename. Validation failures return before any I/O;
// transport failures come back as one of a few operator-readable messages.
func (u *Uploader) Upload(ctx context.Context, f UploadFile, folder string, progress ProgressFunc) (string, error) {
	if err := u.Validate(f); err != nil {
		return "", err
	}

	report := func(stage UploadStage) {
		if progress != nil {
			progress(stage)
		}
	}

	ext := strings.ToLower(path.Ext(f.Name))
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)

	report(UploadStarted)
	if err := u.store.Put(ctx, key, f.ContentType, f.Body); err != nil {
		u.log.Error("image upload failed", zap.String("key", key), zap.Error(err))
		return "", friendlyUploadError(err)
	}
	report(UploadStored)

	url := u.store.PublicURL(key)
	report(UploadCompleted)
	return url, nil
}

// UploadMany uploads sequentially; one bad file does not abort the rest.
// The result is the URLs that succeeded.
func (u *Uploader) UploadMany(ctx context.Context, files []UploadFile, folder string, progress ProgressFunc) []string {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := u.Upload(ctx, f, folder, progress)
		if err != nil {
			u.log.Warn("skipping file in batch upload", zap.String("name", f.Name), zap.Error(err))
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

// Delete removes the object a public URL points at. A URL the store does
// not recognize as its own fails without touching it.
func (u *Uploader) Delete(ctx context.Context, url string) error {
	key, ok := u.store.Key(url)
	if !ok {
		return fmt.Errorf("not a product image URL: %s", url)
	}
	return u.store.Remove(ctx, key)
}

// friendlyUploadError maps a transport failure to an operator-facing
// category by matching the lowercase failure text.
func friendlyUploadError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unauthorized") || strings.Contains(msg, "auth"):
		return errors.New("please sign in to upload images")
	case strings.Contains(msg, "quota") || strings.Contains(msg, "limit"):
		return errors.New("storage limit reached, please try again later")
	case strings.Contains(msg, "network") || strings.Contains(msg, "connection"):
		return errors.New("connection issue, please check your internet and try again")
	case strings.Contains(msg, "bucket") || strings.Contains(msg, "storage"):
		return errors.New("unable to upload image, please try again")
	default:
		return errors.New("upload failed, please try again")
	}
}
