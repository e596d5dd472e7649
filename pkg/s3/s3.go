package s3

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type ItfS3 interface {
	UploadFile(ctx context.Context, file *multipart.FileHeader, folder string, contentType string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
}

type s3Client struct {
	client     *s3.S3
	uploader   *s3manager.Uploader
	bucketName string
	publicBase string
}

func New() (ItfS3, error) {
	sess, err := newSession()
	if err != nil {
		return nil, err
	}

	bucket := os.Getenv("AWS_BUCKET_NAME")
	if bucket == "" {
		return nil, fmt.Errorf("AWS_BUCKET_NAME not set")
	}

	// AWS_PUBLIC_BASE_URL lets a CDN front the bucket
	publicBase := strings.TrimRight(os.Getenv("AWS_PUBLIC_BASE_URL"), "/")

	return &s3Client{
		client:     s3.New(sess),
		uploader:   s3manager.NewUploader(sess),
		bucketName: bucket,
		publicBase: publicBase,
	}, nil
}

// UploadFile stores the file under folder with a public-read ACL and returns
// the URL the site can embed directly.
func (s *s3Client) UploadFile(ctx context.Context, file *multipart.FileHeader, folder string, contentType string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := path.Join(folder, uniqueFileName(file.Filename))

	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:       aws.String(s.bucketName),
		Key:          aws.String(key),
		Body:         src,
		ContentType:  aws.String(contentType),
		ACL:          aws.String(s3.ObjectCannedACLPublicRead),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", err
	}

	if s.publicBase != "" {
		return s.publicBase + "/" + key, nil
	}
	return out.Location, nil
}

func (s *s3Client) DeleteFile(ctx context.Context, fileURL string) error {
	key, err := s.keyFromURL(fileURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	return err
}

func (s *s3Client) keyFromURL(fileURL string) (string, error) {
	if s.publicBase != "" && strings.HasPrefix(fileURL, s.publicBase+"/") {
		return strings.TrimPrefix(fileURL, s.publicBase+"/"), nil
	}

	u, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse file url: %w", err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	// path-style urls carry the bucket as first segment
	key = strings.TrimPrefix(key, s.bucketName+"/")
	return url.PathUnescape(key)
}

func newSession() (*session.Session, error) {
	return session.NewSession(&aws.Config{
		Region: aws.String(os.Getenv("AWS_REGION")),
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		),
	})
}

func uniqueFileName(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, base)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), base, ext)
}
