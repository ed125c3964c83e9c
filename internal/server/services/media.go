package services

import (
	"context"
	"crypto/sha256"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/inkpresscms/inkpress/internal/server/config"
	"github.com/inkpresscms/inkpress/internal/server/models"
	"github.com/inkpresscms/inkpress/internal/server/repositories/repomanager"
)

const presignValidity = 15 * time.Minute

// Seams for exercising the presign flow without AWS.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// MediaService persists media metadata and hands out presigned URLs for the
// asset bytes, which live in S3-compatible object storage and never pass
// through this process.
type MediaService struct {
	rm     repomanager.RepositoryManager
	config *sc.Config
}

// NewMediaService constructs the service.
func NewMediaService(rm repomanager.RepositoryManager, config *sc.Config) *MediaService {
	return &MediaService{rm: rm, config: config}
}

// UploadRequest describes an asset about to be uploaded. ContentHash is the
// client-computed SHA-256 of the bytes, hex-encoded; together with the
// upload timestamp it makes the storage key deterministic and unique.
type UploadRequest struct {
	OriginalName string
	MimeType     string
	Size         int64
	ContentHash  string
	AltText      string
	UploadedBy   string
}

// StorageFilename derives the storage key: first 12 hex chars of the
// content hash, the upload timestamp, and the original extension. Same
// bytes uploaded at different times get distinct keys on purpose, so a
// re-upload never clobbers history.
func StorageFilename(originalName, contentHash string, uploadedAt time.Time) string {
	hash := strings.ToLower(contentHash)
	if hash == "" {
		hash = fmt.Sprintf("%x", sha256.Sum256([]byte(originalName)))
	}
	if len(hash) > 12 {
		hash = hash[:12]
	}
	return fmt.Sprintf("%s-%d%s", hash, uploadedAt.Unix(), strings.ToLower(path.Ext(originalName)))
}

// BeginUpload records the metadata and returns the saved record plus a
// presigned PUT URL the caller uploads the bytes to.
func (s *MediaService) BeginUpload(ctx context.Context, req UploadRequest) (*models.Media, string, error) {
	m := &models.Media{
		Filename:     StorageFilename(req.OriginalName, req.ContentHash, time.Now()),
		OriginalName: req.OriginalName,
		MimeType:     req.MimeType,
		Size:         req.Size,
		AltText:      req.AltText,
		UploadedBy:   req.UploadedBy,
	}

	var saved *models.Media
	err := s.rm.Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.rm.Media().Save(ctx, m)
		return err
	})
	if err != nil {
		return nil, "", err
	}

	url, err := s.presignedPutURL(ctx, saved.Filename)
	if err != nil {
		return nil, "", err
	}
	return saved, url, nil
}

// DownloadURL returns a presigned GET URL for the stored asset.
func (s *MediaService) DownloadURL(ctx context.Context, id string) (string, error) {
	m, err := s.rm.Media().GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.presignedGetURL(ctx, m.Filename)
}

func (s *MediaService) Get(ctx context.Context, id string) (*models.Media, error) {
	return s.rm.Media().GetByID(ctx, id)
}

func (s *MediaService) List(ctx context.Context, opts models.ListOptions) ([]*models.Media, error) {
	return s.rm.Media().List(ctx, opts)
}

func (s *MediaService) Delete(ctx context.Context, id string) error {
	return s.rm.Do(ctx, func(ctx context.Context) error {
		return s.rm.Media().Delete(ctx, id)
	})
}

func (s *MediaService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

func (s *MediaService) presignedPutURL(ctx context.Context, key string) (string, error) {
	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}
	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (s *MediaService) presignedGetURL(ctx context.Context, key string) (string, error) {
	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}
	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
