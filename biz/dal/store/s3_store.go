package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"userhub/be/biz/model/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// ObjectAPI is the part of *s3.Client the store needs.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store keeps the collection as one JSON object. Update uses the object's
// ETag as a version token and writes with If-Match / If-None-Match.
type S3Store struct {
	api        ObjectAPI
	bucket     string
	key        string
	maxRetries int
}

func NewS3Store(api ObjectAPI, bucket, key string, maxRetries int) *S3Store {
	if key == "" {
		key = "users.json"
	}
	return &S3Store{api: api, bucket: bucket, key: key, maxRetries: retries(maxRetries)}
}

func (s *S3Store) Load(ctx context.Context) ([]domain.UserRecord, error) {
	records, _, err := s.get(ctx)
	return records, err
}

func (s *S3Store) Save(ctx context.Context, records []domain.UserRecord) error {
	return s.put(ctx, records, nil)
}

func (s *S3Store) Update(ctx context.Context, fn UpdateFunc) error {
	for i := 0; i < s.maxRetries; i++ {
		records, etag, err := s.get(ctx)
		if err != nil {
			return err
		}
		next, err := fn(records)
		if err != nil {
			return err
		}

		// an absent object must still be absent when we write it
		cond := func(in *s3.PutObjectInput) { in.IfNoneMatch = aws.String("*") }
		if etag != nil {
			cond = func(in *s3.PutObjectInput) { in.IfMatch = etag }
		}

		err = s.put(ctx, next, cond)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return err
		}
	}
	return fmt.Errorf("%w: update s3://%s/%s: %w", ErrWrite, s.bucket, s.key, ErrVersionConflict)
}

func (s *S3Store) get(ctx context.Context) ([]domain.UserRecord, *string, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		if isNotFound(err) {
			return []domain.UserRecord{}, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: get s3://%s/%s: %w", ErrRead, s.bucket, s.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read s3://%s/%s: %w", ErrRead, s.bucket, s.key, err)
	}
	records, err := decode(data)
	if err != nil {
		return nil, nil, err
	}
	return records, out.ETag, nil
}

func (s *S3Store) put(ctx context.Context, records []domain.UserRecord, cond func(*s3.PutObjectInput)) error {
	data, err := encode(records)
	if err != nil {
		return err
	}

	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json; charset=utf-8"),
	}
	if cond != nil {
		cond(in)
	}

	if _, err := s.api.PutObject(ctx, in); err != nil {
		if isPreconditionFailed(err) {
			return fmt.Errorf("%w: %w", ErrVersionConflict, err)
		}
		return fmt.Errorf("%w: put s3://%s/%s: %w", ErrWrite, s.bucket, s.key, err)
	}
	return nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var respErr *awshttp.ResponseError
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound
}

func isPreconditionFailed(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "PreconditionFailed", "ConditionalRequestConflict":
			return true
		}
	}
	var respErr *awshttp.ResponseError
	return errors.As(err, &respErr) &&
		(respErr.HTTPStatusCode() == http.StatusPreconditionFailed || respErr.HTTPStatusCode() == http.StatusConflict)
}
