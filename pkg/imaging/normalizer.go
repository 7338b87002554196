package imaging

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

const (
	// AvatarSize is the edge length of a normalized avatar in pixels.
	AvatarSize = 250

	// MaxUploadBytes is the upload size ceiling for avatar files.
	MaxUploadBytes = 1000000
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ValidateUpload checks the size ceiling and the extension allow-list
// before any decoding happens.
func ValidateUpload(filename string, size int64) error {
	if size > MaxUploadBytes {
		return errors.New("file exceeds the 1MB size limit")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return errors.New("file should have one of three formats: jpg, jpeg or png")
	}
	return nil
}

// Normalize decodes an uploaded image and re-encodes it as a 250x250 PNG.
// Input may be JPEG or PNG; output is always PNG.
func Normalize(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.New("unable to decode image")
	}

	thumb := resize.Resize(AvatarSize, AvatarSize, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
