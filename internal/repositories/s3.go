package repositories

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var (
	S3Client      *s3.Client
	S3BucketName  string
	S3Endpoint    string
	PublicBaseURL string
)

// Every storage call gets a bounded deadline so a hung backend surfaces as a
// visible failure instead of an indefinite spinner.
const storageCallTimeout = 30 * time.Second

// InitStorage initializes the S3 client using static credentials and a custom
// endpoint (Cloudflare R2 compatible).
func InitStorage(accessKey, secretKey, accountID, bucketName, region, publicBaseURL string) error {
	S3BucketName = bucketName
	S3Endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
	PublicBaseURL = strings.TrimRight(publicBaseURL, "/")

	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		Region:      region,
	}

	S3Client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(S3Endpoint)
		o.UsePathStyle = true
	})

	log.Println("Successfully initialized object storage client")

	return nil
}

// PublicObjectURL returns the public URL for a stored object key.
func PublicObjectURL(key string) string {
	return PublicBaseURL + "/" + key
}

// UploadObject writes one object to the bucket.
func UploadObject(ctx context.Context, key, contentType string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, storageCallTimeout)
	defer cancel()

	_, err := S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(S3BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}

// DeleteObject removes one object from the bucket.
func DeleteObject(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, storageCallTimeout)
	defer cancel()

	_, err := S3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(S3BucketName),
		Key:    aws.String(key),
	})
	return err
}

// GeneratePresignedGetURL creates a presigned URL for downloading an object.
func GeneratePresignedGetURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, storageCallTimeout)
	defer cancel()

	presigner := s3.NewPresignClient(S3Client)
	req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(S3BucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// VerifyObjectExists checks if a given object key exists in the bucket.
// Returns true if the object exists, false if not, and an error if something went wrong.
func VerifyObjectExists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, storageCallTimeout)
	defer cancel()

	_, err := S3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(S3BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *s3types.NotFound
		if ok := errors.As(err, &nsk); ok {
			// Object not found
			return false, nil
		}
		// Other error (e.g. auth, network)
		return false, err
	}
	return true, nil
}
