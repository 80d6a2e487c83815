package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	bucket      string
	object      string
	contentType string
	data        []byte
	err         error
}

func (f *fakePutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.err != nil {
		return minio.UploadInfo{}, f.err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.bucket = bucketName
	f.object = objectName
	f.contentType = opts.ContentType
	f.data = data
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func pngImage(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf
}

func TestUploadAvatar_StoresSquareThumbnail(t *testing.T) {
	putter := &fakePutter{}
	store := NewAvatarStore(putter, "avatars", "http://localhost:9000/", 300)

	url, err := store.UploadAvatar(context.Background(), 7, "PNG", pngImage(t, 800, 400))
	require.NoError(t, err)

	assert.Equal(t, "avatars", putter.bucket)
	assert.True(t, strings.HasPrefix(putter.object, "users/7/"))
	assert.True(t, strings.HasSuffix(putter.object, ".png"))
	assert.Equal(t, "image/png", putter.contentType)
	assert.Equal(t, "http://localhost:9000/avatars/"+putter.object, url)

	thumb, _, err := image.Decode(bytes.NewReader(putter.data))
	require.NoError(t, err)
	assert.Equal(t, 300, thumb.Bounds().Dx())
	assert.Equal(t, 300, thumb.Bounds().Dy())
}

func TestUploadAvatar_UniqueObjectNames(t *testing.T) {
	putter := &fakePutter{}
	store := NewAvatarStore(putter, "avatars", "http://cdn", 300)

	first, err := store.UploadAvatar(context.Background(), 1, "png", pngImage(t, 10, 10))
	require.NoError(t, err)
	second, err := store.UploadAvatar(context.Background(), 1, "png", pngImage(t, 10, 10))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestUploadAvatar_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		store := NewAvatarStore(&fakePutter{}, "avatars", "http://cdn", 300)
		_, err := store.UploadAvatar(context.Background(), 1, "bmp", pngImage(t, 10, 10))
		assert.Error(t, err)
	})

	t.Run("not an image", func(t *testing.T) {
		store := NewAvatarStore(&fakePutter{}, "avatars", "http://cdn", 300)
		_, err := store.UploadAvatar(context.Background(), 1, "png", strings.NewReader("plain text"))
		assert.Error(t, err)
	})

	t.Run("storage failure", func(t *testing.T) {
		putter := &fakePutter{err: errors.New("bucket unavailable")}
		store := NewAvatarStore(putter, "avatars", "http://cdn", 300)
		_, err := store.UploadAvatar(context.Background(), 1, "png", pngImage(t, 10, 10))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket unavailable")
	})
}
