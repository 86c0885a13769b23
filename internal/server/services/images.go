package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/hotelbook/internal/server/config"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// Image is one uploaded listing picture.
type Image struct {
	Name        string
	ContentType string
	Data        []byte
}

// ImageStore persists images and returns the URL clients load them from.
type ImageStore interface {
	Upload(ctx context.Context, userID string, img Image) (string, error)
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ImageStore keeps images in an S3-compatible bucket addressed path-style.
type S3ImageStore struct {
	client  objectPutter
	bucket  string
	baseURL string
	now     func() time.Time
}

// NewS3ImageStore builds a client from the S3 settings in cfg. Images are
// later served from cfg.S3PublicURL, or from endpoint/bucket when unset.
func NewS3ImageStore(ctx context.Context, cfg *sc.Config) (*S3ImageStore, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	baseURL := strings.TrimRight(cfg.S3PublicURL, "/")
	if baseURL == "" {
		baseURL = strings.TrimRight(cfg.S3BaseEndpoint, "/") + "/" + cfg.S3Bucket
	}

	return &S3ImageStore{client: client, bucket: cfg.S3Bucket, baseURL: baseURL, now: time.Now}, nil
}

// StorageKey names the object for an image of userID uploaded at t.
func StorageKey(userID string, t time.Time, ext string) string {
	return fmt.Sprintf("hotels/%s/%04d/%02d/%s%s", userID, t.Year(), int(t.Month()), uuid.New(), ext)
}

func imageExt(img Image) string {
	if ext := strings.ToLower(filepath.Ext(img.Name)); ext != "" {
		return ext
	}
	if m := mimetype.Lookup(img.ContentType); m != nil {
		return m.Extension()
	}
	return ""
}

func (s *S3ImageStore) Upload(ctx context.Context, userID string, img Image) (string, error) {
	key := StorageKey(userID, s.now().UTC(), imageExt(img))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(img.Data),
		ContentLength: aws.Int64(int64(len(img.Data))),
		ContentType:   aws.String(img.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}
