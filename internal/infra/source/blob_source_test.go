package source

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSplitLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		location   string
		wantBucket string
		wantKey    string
	}{
		{location: "/data/in/invoice.pdf", wantBucket: "file:///data/in", wantKey: "invoice.pdf"},
		{location: "file:///data/in/invoice.pdf", wantBucket: "file:///data/in", wantKey: "invoice.pdf"},
		{location: "s3://bucket/in/invoice.pdf?region=eu-west-1", wantBucket: "s3://bucket?region=eu-west-1", wantKey: "in/invoice.pdf"},
		{location: "gs://docs/scan.png", wantBucket: "gs://docs", wantKey: "scan.png"},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			t.Parallel()

			bucket, key, err := splitLocation(tt.location)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestSplitLocation_Invalid(t *testing.T) {
	t.Parallel()

	for _, location := range []string{"", "   ", "s3://bucket", "s3://bucket/", "mem://bucket/a.xlsx", "ftp://host/a.pdf"} {
		_, _, err := splitLocation(location)
		assert.Error(t, err, location)
	}
}

func TestBlobSource_LocalPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "invoice.pdf")
	require.NoError(t, os.WriteFile(file, []byte("%PDF-1.7"), 0o600))

	src := NewBlobSource(discardLogger())
	ctx := context.Background()

	name, size, err := src.Stat(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, "invoice.pdf", name)
	assert.Equal(t, int64(8), size)

	fileURL := (&url.URL{Scheme: "file", Path: filepath.ToSlash(file)}).String()
	opened, err := src.Open(ctx, fileURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = opened.Body.Close() })

	content, err := io.ReadAll(opened.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(content))
	assert.Equal(t, "invoice.pdf", opened.Name)
}

func TestBlobSource_NotFound(t *testing.T) {
	t.Parallel()

	src := NewBlobSource(discardLogger())

	_, _, err := src.Stat(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestBlobSource_Bucket(t *testing.T) {
	t.Parallel()

	var opened []string
	src := &blobSource{
		logger: discardLogger(),
		openBucket: func(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
			opened = append(opened, bucketURL)
			bucket := memblob.OpenBucket(nil)
			if err := bucket.WriteAll(ctx, "in/scan.png", []byte("png"), nil); err != nil {
				return nil, err
			}

			return bucket, nil
		},
	}
	ctx := context.Background()

	name, size, err := src.Stat(ctx, "s3://docs/in/scan.png?region=us-east-1")
	require.NoError(t, err)
	assert.Equal(t, "scan.png", name)
	assert.Equal(t, int64(3), size)

	file, err := src.Open(ctx, "s3://docs/in/scan.png?region=us-east-1")
	require.NoError(t, err)
	content, err := io.ReadAll(file.Body)
	require.NoError(t, err)
	require.NoError(t, file.Body.Close())

	assert.Equal(t, "png", string(content))
	assert.Equal(t, []string{"s3://docs?region=us-east-1", "s3://docs?region=us-east-1"}, opened)
}

func TestBlobSource_RejectsInMemoryBucket(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	bucket, err := blob.OpenBucket(ctx, "mem://docs")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })
	require.NoError(t, bucket.WriteAll(ctx, "scan.png", []byte("png"), nil))

	src := NewBlobSource(discardLogger())

	_, _, err = src.Stat(ctx, "mem://docs/scan.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported scheme "mem"`)

	_, err = src.Open(ctx, "mem://docs/scan.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported scheme "mem"`)
}
