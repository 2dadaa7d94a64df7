package editor

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestReadAvatar_PNG(t *testing.T) {
	data := pngBytes(t)

	url, err := ReadAvatar(bytes.NewReader(data))
	require.NoError(t, err)

	prefix := "data:image/png;base64,"
	require.True(t, strings.HasPrefix(url, prefix), url)
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, prefix))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestReadAvatar_RejectsNonImage(t *testing.T) {
	_, err := ReadAvatar(strings.NewReader("just some text, definitely not a picture"))
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestReadAvatar_Empty(t *testing.T) {
	_, err := ReadAvatar(strings.NewReader(""))
	var avatarErr *AvatarError
	require.ErrorAs(t, err, &avatarErr)
	assert.Contains(t, avatarErr.Error(), "empty")
}

func TestReadAvatar_TooLarge(t *testing.T) {
	big := append(pngBytes(t), make([]byte, MaxAvatarBytes)...)
	_, err := ReadAvatar(bytes.NewReader(big))
	var avatarErr *AvatarError
	require.ErrorAs(t, err, &avatarErr)
	assert.Contains(t, avatarErr.Error(), "exceeds")
}

func TestReadAvatar_ReadFailureLeavesDocumentUnchanged(t *testing.T) {
	d := sampleDocument()
	d.PersonalInfo.Avatar = "https://example.com/me.png"

	url, err := ReadAvatar(failingReader{})
	require.Error(t, err)
	if err == nil {
		d, _ = SetAvatar(url)(d)
	}
	assert.Equal(t, "https://example.com/me.png", d.PersonalInfo.Avatar)
}
