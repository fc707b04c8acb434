package photoframe

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	src := gradient(24, 16)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, "png", 0))
	got, err := Decode(&buf)
	require.NoError(t, err)
	requireSamePixels(t, src, got)

	buf.Reset()
	require.NoError(t, Encode(&buf, src, ".jpg", 90))
	got, err = Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.Rect.Size(), got.Rect.Size())

	assert.Error(t, Encode(&buf, src, "webp", 90))
	_, err = Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestEncodeDecodeFile(t *testing.T) {
	dir := t.TempDir()
	src := gradient(20, 10)

	path := filepath.Join(dir, "out.png")
	require.NoError(t, EncodeFile(path, src, 0))
	got, err := DecodeFile(path)
	require.NoError(t, err)
	requireSamePixels(t, src, got)

	assert.Error(t, EncodeFile(filepath.Join(dir, "out.xyz"), src, 90))
	_, err = DecodeFile(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestNormQuality(t *testing.T) {
	assert.Equal(t, DefaultQuality, normQuality(0))
	assert.Equal(t, DefaultQuality, normQuality(101))
	assert.Equal(t, 80, normQuality(80))
}
