package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// StorageError wraps any S3 failure. Callers are expected to be resilient to
// it and substitute a placeholder URL rather than propagate.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// PlaceholderURL is the degraded substitute for a failed upload.
func PlaceholderURL(key string) string {
	return "https://placeholder-storage.com/" + key
}

// Uploader stores user-supplied files in an S3 bucket and hands back
// retrievable URLs.
type Uploader struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	region  string
}

// NewUploader builds an S3-backed uploader with static credentials. The
// client is constructed here and injected where needed; no ambient global
// state.
func NewUploader(ctx context.Context, accessKey, secretKey, region, bucket string) (*Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &Uploader{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		region:  region,
	}, nil
}

// ObjectKey builds a collision-free key: an optional folder prefix plus a
// fresh UUID carrying the original file's extension.
func ObjectKey(folder, filename string) string {
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx != -1 && idx < len(filename)-1 {
		ext = filename[idx+1:]
	}
	name := uuid.New().String()
	if ext != "" {
		name = name + "." + ext
	}
	return strings.TrimPrefix(folder+"/"+name, "/")
}

// Store uploads the bytes under the given key and returns the public URL.
// Fails with *StorageError; the caller substitutes PlaceholderURL(key).
func (u *Uploader) Store(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", &StorageError{Op: "upload", Err: err}
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", u.bucket, key)
	log.Printf("File uploaded successfully: %s", url)
	return url, nil
}

// PresignedURL generates a temporary GET URL for an object.
func (u *Uploader) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	req, err := u.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", &StorageError{Op: "presign", Err: err}
	}
	return req.URL, nil
}

// Delete removes an object from the bucket.
func (u *Uploader) Delete(ctx context.Context, key string) error {
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	log.Printf("File deleted: %s", key)
	return nil
}
