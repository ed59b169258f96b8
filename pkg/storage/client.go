package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hilquiasfmelo/advanced-forms/pkg/logger"
	"github.com/hilquiasfmelo/advanced-forms/pkg/metrics"
	"go.uber.org/zap"
)

// Client is an S3-compatible object storage client used to store
// submitted avatar files
type Client struct {
	s3Client   *s3.Client
	bucketName string
	bucketPath string
	endpoint   string
}

// NewClient creates a new object storage client using the S3 SDK
func NewClient(accessKeyID, secretAccessKey, bucketName, bucketPath, endpoint, region string) (*Client, error) {
	if endpoint == "" {
		endpoint = "https://storage.yandexcloud.net"
	}

	if region == "" {
		region = "ru-central1"
	}

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"", // session token not needed
		),
	})

	logger.Info("Object storage client initialized",
		zap.String("bucket", bucketName),
		zap.String("bucket_path", bucketPath),
		zap.String("endpoint", endpoint),
		zap.String("region", region),
	)

	return &Client{
		s3Client:   s3Client,
		bucketName: bucketName,
		bucketPath: bucketPath,
		endpoint:   endpoint,
	}, nil
}

// Upload stores the file content under the configured bucket path using
// fileName as the object key. Returns the public URL of the object.
func (c *Client) Upload(ctx context.Context, fileName string, content []byte, contentType string) (string, error) {
	start := time.Now()
	operation := "upload"

	if contentType == "" {
		contentType = http.DetectContentType(content)
	}

	key := c.ObjectKey(fileName)

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})

	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.StorageRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.StorageRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogAPICall("object_storage", operation, "error", duration,
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	metrics.StorageRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.StorageRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall("object_storage", operation, "success", duration,
		zap.String("key", key),
		zap.Int("size_bytes", len(content)),
	)

	return c.PublicURL(key), nil
}

// ObjectKey builds the object key for a file name under the bucket path
func (c *Client) ObjectKey(fileName string) string {
	if c.bucketPath == "" {
		return fileName
	}
	return path.Join(c.bucketPath, fileName)
}

// PublicURL returns the public URL of an object key
// Format: {endpoint}/{bucket}/{key}
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", c.endpoint, c.bucketName, key)
}
