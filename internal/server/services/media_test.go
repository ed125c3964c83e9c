package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/inkpresscms/inkpress/internal/common"
	sc "github.com/inkpresscms/inkpress/internal/server/config"
)

func stubPresign(t *testing.T, putURL, getURL string, presignErr error) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	origPresignClient := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
		newS3PresignClient = origPresignClient
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return nil
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return nil
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if presignErr != nil {
			return nil, presignErr
		}
		return &v4.PresignedHTTPRequest{URL: putURL + "/" + aws.ToString(in.Key)}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if presignErr != nil {
			return nil, presignErr
		}
		return &v4.PresignedHTTPRequest{URL: getURL + "/" + aws.ToString(in.Key)}, nil
	}
}

func newMediaService() *MediaService {
	cfg := &sc.Config{}
	cfg.LoadDefaults()
	return NewMediaService(newManager(), cfg)
}

func TestStorageFilename(t *testing.T) {
	at := time.Unix(1700000000, 0)

	got := StorageFilename("Photo.JPG", "ABCDEF0123456789", at)
	if got != "abcdef012345-1700000000.jpg" {
		t.Fatalf("unexpected filename: %q", got)
	}

	// No hash still yields a deterministic key.
	first := StorageFilename("photo.jpg", "", at)
	second := StorageFilename("photo.jpg", "", at)
	if first != second {
		t.Fatalf("expected deterministic fallback, got %q and %q", first, second)
	}
	if !strings.HasSuffix(first, "-1700000000.jpg") {
		t.Fatalf("unexpected fallback filename: %q", first)
	}
}

func TestBeginUpload_SavesAndPresigns(t *testing.T) {
	stubPresign(t, "https://s3.example/put", "https://s3.example/get", nil)
	svc := newMediaService()

	saved, url, err := svc.BeginUpload(context.Background(), UploadRequest{
		OriginalName: "photo.jpg",
		MimeType:     "image/jpeg",
		Size:         2048,
		ContentHash:  "abcdef0123456789",
		UploadedBy:   "alice",
	})
	if err != nil {
		t.Fatalf("BeginUpload error: %v", err)
	}
	if saved.ID == "" || saved.Filename == "" {
		t.Fatalf("unexpected media record: %+v", saved)
	}
	if !strings.HasPrefix(url, "https://s3.example/put/") || !strings.Contains(url, saved.Filename) {
		t.Fatalf("unexpected put url: %q", url)
	}

	getURL, err := svc.DownloadURL(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("DownloadURL error: %v", err)
	}
	if !strings.Contains(getURL, saved.Filename) {
		t.Fatalf("unexpected get url: %q", getURL)
	}
}

func TestBeginUpload_PresignError(t *testing.T) {
	stubPresign(t, "", "", errors.New("presign down"))
	svc := newMediaService()

	_, _, err := svc.BeginUpload(context.Background(), UploadRequest{
		OriginalName: "photo.jpg",
		MimeType:     "image/jpeg",
		Size:         2048,
	})
	if err == nil || !strings.Contains(err.Error(), "presign down") {
		t.Fatalf("expected presign error, got %v", err)
	}
}

func TestDownloadURL_NotFound(t *testing.T) {
	stubPresign(t, "https://s3.example/put", "https://s3.example/get", nil)
	svc := newMediaService()

	_, err := svc.DownloadURL(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}
