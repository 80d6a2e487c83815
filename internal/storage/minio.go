package storage

import (
	"context"
	"fmt"
	"log"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinioClient connects to MinIO and makes sure the avatar bucket exists.
func NewMinioClient(ctx context.Context) (*minio.Client, error) {
	client, err := minio.New(config.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", config.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", config.MinioBucket, err)
		}
		log.Printf("Bucket created: %s", config.MinioBucket)
	}
	return client, nil
}
