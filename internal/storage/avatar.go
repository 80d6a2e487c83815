package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// ObjectPutter is the slice of *minio.Client used for avatars.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

var contentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
}

type AvatarStore struct {
	client    ObjectPutter
	bucket    string
	publicURL string
	size      int
}

// NewAvatarStore stores square thumbnails of side size in bucket. Returned
// URLs are publicURL/bucket/object.
func NewAvatarStore(client ObjectPutter, bucket, publicURL string, size int) *AvatarStore {
	return &AvatarStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		size:      size,
	}
}

// UploadAvatar center-crops the image to a square thumbnail and stores it
// under a fresh object name.
func (s *AvatarStore) UploadAvatar(ctx context.Context, userID uint, ext string, r io.Reader) (string, error) {
	ext = strings.ToLower(ext)
	contentType, ok := contentTypes[ext]
	if !ok {
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return "", err
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	thumb := imaging.Fill(img, s.size, s.size, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, format); err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}

	object := fmt.Sprintf("users/%d/%s.%s", userID, uuid.NewString(), ext)
	size := int64(buf.Len())
	if _, err := s.client.PutObject(ctx, s.bucket, object, &buf, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, object), nil
}
