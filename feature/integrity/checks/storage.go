package checks

import (
	"context"
	"fmt"
	"path"

	"ipo-tracker/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport is the result of the snapshot storage check.
type StorageReport struct {
	Bucket string `json:"bucket"`
	Exists bool   `json:"exists"`
	// Unarchived lists sources with no snapshot in the bucket yet.
	Unarchived []string `json:"unarchived"`
}

// CheckStorage verifies the snapshot bucket and looks for a snapshot of every source.
func CheckStorage(ctx context.Context, client storage.Client, bucket string, sources []string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, Unarchived: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.Exists = exists
	if !exists {
		report.Unarchived = append(report.Unarchived, sources...)
		return report, nil
	}

	for _, source := range sources {
		opts := minio.ListObjectsOptions{
			Prefix:    path.Join("snapshots", source) + "/",
			Recursive: true,
			MaxKeys:   1,
		}

		found, err := hasObject(ctx, client, bucket, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list snapshots of %s: %w", source, err)
		}

		if !found {
			report.Unarchived = append(report.Unarchived, source)
		}
	}

	return report, nil
}

// hasObject reports whether the listing yields at least one object. The listing
// context is cancelled on return so minio stops paging after an early exit.
func hasObject(ctx context.Context, client storage.Client, bucket string, opts minio.ListObjectsOptions) (bool, error) {
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range client.ListObjects(listCtx, bucket, opts) {
		if obj.Err != nil {
			return false, obj.Err
		}
		return true, nil
	}
	return false, nil
}

// FixStorage creates the snapshot bucket when it is missing.
func FixStorage(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		logger.Error("Failed to create snapshot bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Snapshot bucket ready", zap.String("bucket", bucket))
	return nil
}
