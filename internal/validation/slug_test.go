package validation

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGroupSlug(t *testing.T) {
	t.Parallel()

	valid := []string{"cats", "rock-climbing", "go2go", "a"}
	for _, slug := range valid {
		assert.NoError(t, ValidateGroupSlug(slug), slug)
	}

	invalid := []string{"", "Кошки", "UPPER", "has space", "-leading", "trailing-", "groups", "admin"}
	for _, slug := range invalid {
		assert.Error(t, ValidateGroupSlug(slug), slug)
	}
}

func TestDetectImageFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))

	format, err := DetectImageFormat(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	_, err = DetectImageFormat([]byte("plain text, not an image"))
	assert.Error(t, err)

	_, err = DetectImageFormat(nil)
	assert.Error(t, err)
}
