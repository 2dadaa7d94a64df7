package editor

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxAvatarBytes caps the size of an uploaded avatar image
const MaxAvatarBytes = 5 << 20

// ReadAvatar reads an uploaded image and returns its data URL encoding.
// Non-image content and files over MaxAvatarBytes are rejected.
func ReadAvatar(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxAvatarBytes+1))
	if err != nil {
		return "", &AvatarError{Message: "failed to read file", Cause: err}
	}
	if len(data) == 0 {
		return "", &AvatarError{Message: "file is empty"}
	}
	if len(data) > MaxAvatarBytes {
		return "", &AvatarError{Message: fmt.Sprintf("file exceeds %d bytes", MaxAvatarBytes)}
	}

	mime := mimetype.Detect(data).String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", &AvatarError{Message: fmt.Sprintf("detected %s", mime), Cause: ErrNotAnImage}
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
