package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"
	"time"

	"ipo-tracker/core/storage"

	"github.com/minio/minio-go/v7"
)

// Prefix is the root of every snapshot key.
const Prefix = "snapshots"

// Snapshot describes one archived payload.
type Snapshot struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// Archiver writes raw upstream payloads to object storage.
type Archiver struct {
	client storage.Client
	bucket string
}

// New creates an archiver on a bucket.
func New(client storage.Client, bucket string) *Archiver {
	return &Archiver{client: client, bucket: bucket}
}

// ObjectKey returns snapshots/<source>/<YYYY-MM-DD>/<run-id>.json.
func ObjectKey(source string, at time.Time, runID string) string {
	return path.Join(Prefix, source, at.UTC().Format("2006-01-02"), runID+".json")
}

// Put stores one payload and returns its key.
func (a *Archiver) Put(ctx context.Context, source, runID string, at time.Time, raw []byte) (string, error) {
	key := ObjectKey(source, at, runID)
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(raw), int64(len(raw)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", key, err)
	}
	return key, nil
}

// List returns the most recent snapshots of a source, newest first.
func (a *Archiver) List(ctx context.Context, source string, limit int) ([]Snapshot, error) {
	objects := a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    path.Join(Prefix, source) + "/",
		Recursive: true,
	})

	var out []Snapshot
	for obj := range objects {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots of %s: %w", source, obj.Err)
		}
		out = append(out, Snapshot{Key: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].LastModified.After(out[j].LastModified)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
