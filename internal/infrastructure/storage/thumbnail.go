package storage

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// Thumbnailer renders JPEG previews that fit inside a bounding box.
type Thumbnailer struct {
	Quality int
}

func NewThumbnailer() *Thumbnailer {
	return &Thumbnailer{Quality: 80}
}

// Thumbnail decodes content, fits it into maxWidth x maxHeight keeping the
// aspect ratio and returns the JPEG encoding. Images already inside the box
// are re-encoded unscaled.
func (t *Thumbnailer) Thumbnail(content io.Reader, maxWidth, maxHeight int) (io.Reader, error) {
	img, err := imaging.Decode(content, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("thumbnail decode: %w", err)
	}
	thumb := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(t.Quality)); err != nil {
		return nil, fmt.Errorf("thumbnail encode: %w", err)
	}
	return &buf, nil
}
