package upload

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/zhulik/wildkmp/internal/core"
)

const resultContentType = "text/plain"

// MinioUploader copies result files into an S3-compatible bucket.
type MinioUploader struct {
	Config *core.Config
	Logger *slog.Logger

	client *minio.Client
}

func (u *MinioUploader) Init(ctx context.Context) error {
	client, err := minio.New(u.Config.ResultsS3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(u.Config.ResultsS3AccessKeyID, u.Config.ResultsS3SecretAccessKey, ""),
		Secure: u.Config.ResultsS3Secure,
	})
	if err != nil {
		return fmt.Errorf("%w: results S3 client: %w", core.ErrInvalidConfig, err)
	}

	exists, err := client.BucketExists(ctx, u.Config.ResultsS3Bucket)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("%w: bucket %q does not exist", core.ErrInvalidConfig, u.Config.ResultsS3Bucket)
	}

	u.client = client

	return nil
}

func (u *MinioUploader) Upload(ctx context.Context, objectName, filename string) error {
	info, err := u.client.FPutObject(ctx, u.Config.ResultsS3Bucket, objectName, filename, minio.PutObjectOptions{
		ContentType: resultContentType,
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", objectName, err)
	}

	u.Logger.Debug("result uploaded", "bucket", info.Bucket, "key", info.Key, "size", info.Size)

	return nil
}
