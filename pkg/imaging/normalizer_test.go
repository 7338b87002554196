package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 20), G: uint8(y * 20), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{"small jpg", "avatar.jpg", 500, false},
		{"jpeg extension", "photo.jpeg", 999999, false},
		{"png extension", "pic.png", 1000000, false},
		{"uppercase extension", "pic.PNG", 100, false},
		{"over size limit", "avatar.jpg", 1000001, true},
		{"gif rejected", "anim.gif", 100, true},
		{"no extension", "avatar", 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.filename, tt.size)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeProducesFixedSizePNG(t *testing.T) {
	out, err := Normalize(makeJPEG(t, 10, 10))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, AvatarSize, bounds.Dx())
	assert.Equal(t, AvatarSize, bounds.Dy())
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"))
	assert.Error(t, err)
}
