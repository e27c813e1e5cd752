package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/uniportal/event-portal/internal/core/domain"
	"github.com/uniportal/event-portal/internal/core/policy"
	"github.com/uniportal/event-portal/internal/core/ports"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Thumbnailer renders a bounded JPEG preview of an image.
type Thumbnailer interface {
	Thumbnail(content io.Reader, maxWidth, maxHeight int) (io.Reader, error)
}

// UploadHook observes upload outcomes ("stored", "rejected", "failed").
type UploadHook func(result string)

type UploadService struct {
	storage      ports.FileStorage
	thumbs       Thumbnailer
	publicPrefix string
	maxBytes     int64
	log          zerolog.Logger
	onResult     UploadHook
}

// UploadOptions configures the upload service. PublicPrefix is joined with
// the stored file name to build the returned path.
type UploadOptions struct {
	PublicPrefix string
	MaxBytes     int64
	Thumbnailer  Thumbnailer
	OnResult     UploadHook
}

func NewUploadService(storage ports.FileStorage, opts UploadOptions, log zerolog.Logger) *UploadService {
	if opts.PublicPrefix == "" {
		opts.PublicPrefix = "/uploads"
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 5 << 20
	}
	return &UploadService{
		storage:      storage,
		thumbs:       opts.Thumbnailer,
		publicPrefix: opts.PublicPrefix,
		maxBytes:     opts.MaxBytes,
		log:          log,
		onResult:     opts.OnResult,
	}
}

// SaveEventImage stores an uploaded event image under a random name and
// returns its public path.
func (s *UploadService) SaveEventImage(ctx context.Context, actor *domain.User, in ports.ImageUpload) (string, error) {
	if err := policy.Authorize(actor, policy.Event, policy.Upload); err != nil {
		return "", err
	}
	if in.Content == nil {
		s.report("rejected")
		return "", &domain.ValidationError{Fields: []string{"image"}}
	}
	if in.Size > s.maxBytes {
		s.report("rejected")
		return "", fmt.Errorf("%w: file exceeds %d bytes", domain.ErrInvalidImage, s.maxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(in.Content, s.maxBytes+1))
	if err != nil {
		s.report("failed")
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		s.report("rejected")
		return "", fmt.Errorf("%w: file exceeds %d bytes", domain.ErrInvalidImage, s.maxBytes)
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowedImageTypes...) {
		s.report("rejected")
		return "", fmt.Errorf("%w: unsupported type %s", domain.ErrInvalidImage, mt.String())
	}

	id := "image-" + uuid.NewString()
	name := id + mt.Extension()
	if err := s.storage.Save(ctx, name, bytes.NewReader(data)); err != nil {
		s.report("failed")
		return "", fmt.Errorf("store upload: %w", err)
	}

	stored := []string{name}
	if s.thumbs != nil {
		thumbName := id + "_thumb.jpg"
		if thumb, err := s.thumbs.Thumbnail(bytes.NewReader(data), 400, 400); err != nil {
			s.log.Warn().Err(err).Str("file", name).Msg("thumbnail generation failed")
		} else if err := s.storage.Save(ctx, thumbName, thumb); err != nil {
			s.log.Warn().Err(err).Str("file", name).Msg("thumbnail store failed")
		} else {
			stored = append(stored, thumbName)
		}
	}

	// The caller never learns the path of a cancelled upload.
	if err := ctx.Err(); err != nil {
		s.discard(stored)
		s.report("failed")
		return "", fmt.Errorf("store upload: %w", err)
	}

	s.report("stored")
	s.log.Info().Str("file", name).Str("original", in.Filename).Int("bytes", len(data)).Msg("event image stored")
	return path.Join(s.publicPrefix, name), nil
}

// discard removes files already written for an upload that did not complete.
// It must not depend on the request context, which is already done.
func (s *UploadService) discard(names []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, name := range names {
		if err := s.storage.Delete(ctx, name); err != nil {
			s.log.Warn().Err(err).Str("file", name).Msg("upload cleanup failed")
		}
	}
}

func (s *UploadService) report(result string) {
	if s.onResult != nil {
		s.onResult(result)
	}
}
