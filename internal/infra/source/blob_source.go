// Package source opens upload documents from local paths or blob storage.
package source

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"invoicedesk/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	// Register the bucket schemes a location may use.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// schemes lists the bucket drivers a location may name. In-memory buckets
// are not listed: each open yields a fresh empty bucket.
var schemes = map[string]bool{"file": true, "s3": true, "gs": true}

type bucketOpener func(ctx context.Context, bucketURL string) (*blob.Bucket, error)

type blobSource struct {
	openBucket bucketOpener
	logger     *slog.Logger
}

// NewBlobSource creates a FileSource that reads through gocloud.dev/blob.
// Plain paths are served by the file:// driver.
func NewBlobSource(logger *slog.Logger) service.FileSource {
	return &blobSource{
		openBucket: blob.OpenBucket,
		logger:     logger,
	}
}

// Stat implements service.FileSource.
func (s *blobSource) Stat(ctx context.Context, location string) (string, int64, error) {
	bucketURL, key, err := splitLocation(location)
	if err != nil {
		return "", 0, err
	}

	bucket, err := s.openBucket(ctx, bucketURL)
	if err != nil {
		return "", 0, errors.Wrapf(err, "open bucket %s", bucketURL)
	}
	defer bucket.Close()

	attrs, err := bucket.Attributes(ctx, key)
	if err != nil {
		return "", 0, wrapNotFound(err, location)
	}

	return path.Base(key), attrs.Size, nil
}

// Open implements service.FileSource.
func (s *blobSource) Open(ctx context.Context, location string) (*service.File, error) {
	bucketURL, key, err := splitLocation(location)
	if err != nil {
		return nil, err
	}

	bucket, err := s.openBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	reader, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		_ = bucket.Close()

		return nil, wrapNotFound(err, location)
	}

	s.logger.DebugContext(ctx, "opened upload source",
		slog.String("bucket", bucketURL),
		slog.String("key", key),
		slog.Int64("size", reader.Size()),
	)

	return &service.File{
		Name: path.Base(key),
		Size: reader.Size(),
		Body: &bucketReader{Reader: reader, bucket: bucket},
	}, nil
}

// bucketReader closes the bucket along with the object reader.
type bucketReader struct {
	*blob.Reader
	bucket *blob.Bucket
}

func (r *bucketReader) Close() error {
	readerErr := r.Reader.Close()
	bucketErr := r.bucket.Close()
	if readerErr != nil {
		return errors.WithStack(readerErr)
	}

	return errors.WithStack(bucketErr)
}

// splitLocation separates a location into a bucket URL and an object key.
// Examples:
//   - "/data/in/invoice.pdf" -> ("file:///data/in", "invoice.pdf")
//   - "file:///data/in/invoice.pdf" -> ("file:///data/in", "invoice.pdf")
//   - "s3://bucket/in/invoice.pdf?region=eu-west-1" -> ("s3://bucket?region=eu-west-1", "in/invoice.pdf")
func splitLocation(location string) (bucketURL, key string, err error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", "", errors.New("empty location")
	}

	if !strings.Contains(location, "://") {
		abs, err := filepath.Abs(location)
		if err != nil {
			return "", "", errors.Wrapf(err, "resolve %s", location)
		}
		dirURL := url.URL{Scheme: "file", Path: filepath.ToSlash(filepath.Dir(abs))}

		return dirURL.String(), filepath.Base(abs), nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return "", "", errors.Wrapf(err, "parse %s", location)
	}

	if !schemes[u.Scheme] {
		return "", "", errors.Errorf("unsupported scheme %q in %s", u.Scheme, location)
	}

	if u.Scheme == "file" {
		dirURL := url.URL{Scheme: "file", Path: path.Dir(u.Path), RawQuery: u.RawQuery}

		return dirURL.String(), path.Base(u.Path), nil
	}

	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", errors.Errorf("no object key in %s", location)
	}
	bucket := url.URL{Scheme: u.Scheme, Host: u.Host, RawQuery: u.RawQuery}

	return bucket.String(), key, nil
}

func wrapNotFound(err error, location string) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return errors.Errorf("file not found: %s", location)
	}

	return errors.Wrapf(err, "read %s", location)
}
