package deploy

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the slice of the S3 client the uploader needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader publishes an exported directory to an S3 bucket.
type Uploader struct {
	client ObjectPutter
	bucket string
	prefix string
	logger *slog.Logger
}

// NewUploader creates an uploader. prefix may be empty; a non-empty
// prefix gets a trailing slash if it lacks one.
func NewUploader(client ObjectPutter, bucket, prefix string) *Uploader {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: slog.Default().With("component", "deploy"),
	}
}

// SetLogger replaces the uploader's logger.
func (u *Uploader) SetLogger(l *slog.Logger) {
	u.logger = l
}

// UploadDir walks dir and uploads every regular file, keyed by its
// path relative to dir under the configured prefix. Returns the number
// of objects uploaded.
func (u *Uploader) UploadDir(ctx context.Context, dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		key := u.prefix + filepath.ToSlash(rel)
		if err := u.uploadFile(ctx, p, key); err != nil {
			return fmt.Errorf("upload %s: %w", rel, err)
		}
		count++
		return nil
	})
	return count, err
}

func (u *Uploader) uploadFile(ctx context.Context, p, key string) error {
	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType(key)),
	})
	if err != nil {
		return err
	}
	u.logger.Info("uploaded", "bucket", u.bucket, "key", key)
	return nil
}

func contentType(key string) string {
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
