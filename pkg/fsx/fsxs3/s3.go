package fsxs3

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/orgstruct/bff/pkg/errx"
	"github.com/orgstruct/bff/pkg/fsx"
)

// S3FileSystem stores files as objects under an optional key prefix
type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3FileSystem(client *s3.Client, bucket, prefix string) *S3FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (s *S3FileSystem) key(path string) string {
	path = strings.TrimPrefix(path, "/")
	if s.prefix == "" {
		return path
	}
	return s.prefix + "/" + path
}

func (s *S3FileSystem) ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(path)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, errx.New("object not found", errx.TypeNotFound).WithDetail("path", path)
		}
		return nil, errx.Wrap(err, "failed to get object", errx.TypeExternal).WithDetail("path", path)
	}
	return out.Body, nil
}

func (s *S3FileSystem) Exists(ctx context.Context, path string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(path)),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, errx.Wrap(err, "failed to head object", errx.TypeExternal).WithDetail("path", path)
	}
	return true, nil
}

func (s *S3FileSystem) WriteFile(ctx context.Context, path string, content io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(path)),
		Body:   content,
	})
	if err != nil {
		return errx.Wrap(err, "failed to put object", errx.TypeExternal).WithDetail("path", path)
	}
	return nil
}

func (s *S3FileSystem) Delete(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(path)),
	})
	if err != nil {
		return errx.Wrap(err, "failed to delete object", errx.TypeExternal).WithDetail("path", path)
	}
	return nil
}

var _ fsx.FileSystem = (*S3FileSystem)(nil)
