package validation

import (
	"errors"
	"strings"
)

// Image checks the rules applied before an upload is attempted: image MIME
// type and a 5MB ceiling.
func Image(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return errors.New("file must be an image")
	}
	if size > MaxImageSizeBytes {
		return errors.New("image must be 5MB or smaller")
	}
	return nil
}
