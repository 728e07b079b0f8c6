package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/musician-site/internal/config"
)

// Kind selects which bucket and limits apply to an upload.
type Kind string

const (
	KindImage Kind = "image"
	KindAudio Kind = "audio"
)

var (
	ErrUnknownKind = errors.New("storage: unknown upload kind")
	ErrTooLarge    = errors.New("storage: file too large")
	ErrContentType = errors.New("storage: content type not allowed")
)

var allowedTypes = map[Kind]map[string]bool{
	KindImage: {"image/jpeg": true, "image/png": true, "image/gif": true, "image/webp": true},
	KindAudio: {"audio/mpeg": true, "audio/wav": true, "audio/ogg": true, "audio/mp3": true},
}

// File describes an incoming upload.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Uploader validates files against the configured limits before anything
// is written to the store.
type Uploader struct {
	store ObjectStore
	cfg   config.StorageConfig
	newID func() string
}

func NewUploader(store ObjectStore, cfg config.StorageConfig) *Uploader {
	return &Uploader{store: store, cfg: cfg, newID: uuid.NewString}
}

// Check reports why f may not be stored as kind, or nil.  Size is checked
// before type.
func (u *Uploader) Check(kind Kind, f File) error {
	types, ok := allowedTypes[kind]
	if !ok {
		return ErrUnknownKind
	}
	if f.Size > u.maxSize(kind) {
		return ErrTooLarge
	}
	if !types[f.ContentType] {
		return ErrContentType
	}
	return nil
}

// Upload stores f under a random key that keeps the lower-cased file
// extension and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, kind Kind, f File) (string, error) {
	if err := u.Check(kind, f); err != nil {
		return "", err
	}
	bucket := u.bucket(kind)
	key := u.newID() + strings.ToLower(filepath.Ext(f.Name))
	if err := u.store.Put(ctx, bucket, key, f.ContentType, f.Size, f.Body); err != nil {
		return "", err
	}
	return PublicURL(u.cfg.PublicURL, bucket, key), nil
}

func (u *Uploader) maxSize(kind Kind) int64 {
	if kind == KindAudio {
		return u.cfg.MaxAudioSize
	}
	return u.cfg.MaxImageSize
}

func (u *Uploader) bucket(kind Kind) string {
	if kind == KindAudio {
		return u.cfg.AudioBucket
	}
	return u.cfg.ImageBucket
}
