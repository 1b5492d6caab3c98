package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	appcfg "github.com/notedesk/core/internal/config"
)

// S3Store keeps snapshots in an S3-compatible bucket. Custom endpoints
// (MinIO, R2) force path-style addressing since virtual-host style rarely
// resolves there.
type S3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(opts appcfg.S3Options) (*S3Store, error) {
	bucket := strings.TrimSpace(opts.Bucket)
	region := strings.TrimSpace(opts.Region)
	accessKey := strings.TrimSpace(opts.AccessKeyID)
	secretKey := strings.TrimSpace(opts.SecretAccessKey)
	if bucket == "" || region == "" || accessKey == "" || secretKey == "" {
		return nil, errors.New("incomplete s3 config: bucket/region/access_key_id/secret_access_key are required")
	}

	clientOpts := s3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	}

	if endpoint := strings.TrimSpace(opts.Endpoint); endpoint != "" {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		clientOpts.BaseEndpoint = aws.String(strings.TrimSuffix(endpoint, "/"))
		clientOpts.UsePathStyle = true
	}
	if opts.PathStyleAccess {
		clientOpts.UsePathStyle = true
	}

	return &S3Store{client: s3.New(clientOpts), bucket: bucket}, nil
}

func (s *S3Store) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 put %q: %w", name, err)
	}
	return nil
}

func (s *S3Store) Get(ctx context.Context, name string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		var noKey *s3types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("s3 get %q: %w", name, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}
