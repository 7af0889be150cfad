package blobstore

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"strings"

	"albaranes/internal/infrastructure/database"
	"albaranes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingBlobBucket = errors.New("missing BLOB_BUCKET")

// S3BlobStore anchors signature images and rendered PDFs in an S3 bucket.
//
// Objects are content-addressed: the key is the sha256 of the payload
// plus the original extension, so re-uploading identical bytes lands on
// the same key and retries cost nothing. Nothing is ever deleted.
//
// Supported env vars:
//   - BLOB_BUCKET (required)
//   - BLOB_PUBLIC_BASE_URL (optional; default https://<bucket>.s3.amazonaws.com)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000 for local runs)
type S3BlobStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ interfaces.IBlobStore = (*S3BlobStore)(nil)

func NewS3BlobStore(ctx context.Context) (*S3BlobStore, error) {
	bucket := strings.TrimSpace(os.Getenv("BLOB_BUCKET"))
	if bucket == "" {
		return nil, ErrMissingBlobBucket
	}

	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimSpace(os.Getenv("S3_ENDPOINT"))
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := strings.TrimRight(os.Getenv("BLOB_PUBLIC_BASE_URL"), "/")
	if baseURL == "" {
		if endpoint != "" {
			baseURL = strings.TrimRight(endpoint, "/") + "/" + bucket
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
		}
	}

	log.Printf("[blob][store] s3 blob store ready bucket=%s", bucket)
	return &S3BlobStore{client: client, bucket: bucket, baseURL: baseURL}, nil
}

func (s *S3BlobStore) Put(ctx context.Context, data []byte, name, contentType string) (interfaces.BlobRef, error) {
	if len(data) == 0 {
		return interfaces.BlobRef{}, errors.New("empty payload")
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	sum := sha256.Sum256(data)
	key := hex.EncodeToString(sum[:])
	if ext := path.Ext(name); ext != "" {
		key += ext
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return interfaces.BlobRef{}, err
	}

	log.Printf("[blob][store] object anchored key=%s size=%d", key, len(data))
	return interfaces.BlobRef{
		Locator: key,
		URL:     s.baseURL + "/" + key,
	}, nil
}
