package checks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"ipo-tracker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckStorage(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "snaps").Return(true, nil)
	client.On("ListObjects", mock.Anything, "snaps", mock.Anything).Return(
		func(_ context.Context, _ string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 1)
			if opts.Prefix == "snapshots/finnhub/" {
				ch <- minio.ObjectInfo{Key: "snapshots/finnhub/2026-10-17/r.json"}
			}
			close(ch)
			return ch
		})

	report, err := CheckStorage(context.Background(), client, "snaps", []string{"finnhub", "hkex"})
	require.NoError(t, err)
	assert.True(t, report.Exists)
	assert.Equal(t, []string{"hkex"}, report.Unarchived)
}

// pagingListing behaves like minio's lister: it keeps sending pages until the
// listing context is cancelled.
func pagingListing(wg *sync.WaitGroup) func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	return func(ctx context.Context, _ string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer close(ch)
			for i := 0; ; i++ {
				select {
				case ch <- minio.ObjectInfo{Key: fmt.Sprintf("%s%d.json", opts.Prefix, i)}:
				case <-ctx.Done():
					return
				}
			}
		}()
		return ch
	}
}

func TestCheckStorage_StopsListingAfterFirstObject(t *testing.T) {
	var listers sync.WaitGroup
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "snaps").Return(true, nil)
	client.On("ListObjects", mock.Anything, "snaps", mock.Anything).Return(pagingListing(&listers))

	// a request context is never cancelled while the check runs
	for i := 0; i < 5; i++ {
		report, err := CheckStorage(context.Background(), client, "snaps", []string{"finnhub", "hkex"})
		require.NoError(t, err)
		assert.Empty(t, report.Unarchived)
	}

	done := make(chan struct{})
	go func() {
		listers.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listing goroutines still running after CheckStorage returned")
	}
}

func TestCheckStorage_ListError(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "snaps").Return(true, nil)
	client.On("ListObjects", mock.Anything, "snaps", mock.Anything).Return(
		func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 1)
			ch <- minio.ObjectInfo{Err: errors.New("access denied")}
			close(ch)
			return ch
		})

	_, err := CheckStorage(context.Background(), client, "snaps", []string{"finnhub"})
	assert.ErrorContains(t, err, "failed to list snapshots of finnhub: access denied")
}

func TestCheckStorage_MissingBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "snaps").Return(false, nil)

	report, err := CheckStorage(context.Background(), client, "snaps", []string{"finnhub"})
	require.NoError(t, err)
	assert.False(t, report.Exists)
	assert.Equal(t, []string{"finnhub"}, report.Unarchived)
	client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckStorage_Error(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "snaps").Return(false, errors.New("network"))

	_, err := CheckStorage(context.Background(), client, "snaps", nil)
	assert.ErrorContains(t, err, "network")
}

func TestFixStorage(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "snaps").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "snaps", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

	require.NoError(t, FixStorage(context.Background(), client, "snaps", "us-east-1", zap.NewNop()))
	client.AssertExpectations(t)
}
