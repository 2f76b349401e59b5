package validation

import (
	"bytes"
	"fmt"
	"image"
	"net/http"
	"strings"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/webp" // register WebP decoder
)

// DetectImageFormat sniffs the payload and returns the decoded image
// format ("jpeg", "png", "gif", "webp"). The payload must both carry an
// image MIME signature and actually decode; either failing is an error.
func DetectImageFormat(content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("empty image payload")
	}

	mime := http.DetectContentType(content)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("payload is not an image (detected %s)", mime)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("undecodable image payload: %w", err)
	}
	return format, nil
}
