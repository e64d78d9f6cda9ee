package realtime

import (
	"context"
	"io"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"
)

// BucketObject is one entry from a LIST response.
type BucketObject struct {
	Key          string
	LastModified time.Time
	Size         int64
}

// S3Client issues unauthenticated LIST and GET calls against a public
// NEXRAD bucket. A single client and its underlying HTTP connection pool
// are meant to be shared process-wide across concurrently running
// iterators.
type S3Client struct {
	bucket string
	svc    *s3.S3
}

// NewS3Client builds a client against bucket using anonymous credentials;
// NOAA's archive and real-time buckets require no signing.
func NewS3Client(bucket string) *S3Client {
	sess := session.Must(session.NewSession(&aws.Config{
		Credentials: credentials.AnonymousCredentials,
		Region:      aws.String("us-east-1"),
		MaxRetries:  aws.Int(0), // the realtime package owns its own retry/backoff schedule
	}))
	return &S3Client{bucket: bucket, svc: s3.New(sess)}
}

// List issues `GET /?list-type=2&prefix=<prefix>[&max-keys=N]` and returns
// the contained objects plus whether the response was truncated. maxKeys
// of 0 requests the service default.
func (c *S3Client) List(ctx context.Context, prefix string, maxKeys int64) ([]BucketObject, bool, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(prefix),
	}
	if maxKeys > 0 {
		input.MaxKeys = aws.Int64(maxKeys)
	}

	out, err := c.svc.ListObjectsV2WithContext(ctx, input)
	if err != nil {
		return nil, false, &S3ListObjectsError{Prefix: prefix, Err: err}
	}

	objects := make([]BucketObject, 0, len(out.Contents))
	for _, item := range out.Contents {
		obj := BucketObject{Size: aws.Int64Value(item.Size)}
		if item.Key != nil {
			obj.Key = *item.Key
		}
		if item.LastModified != nil {
			obj.LastModified = *item.LastModified
		}
		objects = append(objects, obj)
	}

	truncated := aws.BoolValue(out.IsTruncated)
	logrus.Debugf("s3 list prefix=%q keys=%d truncated=%v", prefix, len(objects), truncated)
	return objects, truncated, nil
}

// ListExpectSingle is List for bucket layouts where the caller expects
// exactly one record per object and treats truncation as an error (the
// archive bucket's `YYYY/MM/DD/SITE` prefixes).
func (c *S3Client) ListExpectSingle(ctx context.Context, prefix string) ([]BucketObject, error) {
	objects, truncated, err := c.List(ctx, prefix, 0)
	if err != nil {
		return nil, err
	}
	if truncated {
		return nil, &TruncatedListObjectsResponse{Prefix: prefix}
	}
	return objects, nil
}

// Get issues `GET /<key>` and returns the full object body. A missing
// object maps to *S3ObjectNotFoundError so pull-based pollers can treat it
// as "not yet available" rather than a hard failure.
func (c *S3Client) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := c.svc.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			switch aerr.Code() {
			case s3.ErrCodeNoSuchKey, "NotFound":
				return nil, &S3ObjectNotFoundError{Key: key}
			}
		}
		return nil, &S3GetObjectRequestError{Key: key, Err: err}
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, &S3StreamingError{Key: key, Err: err}
	}
	return body, nil
}
