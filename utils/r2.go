package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Config holds the bucket settings of a Cloudflare R2 account.
type R2Config struct {
	Bucket          string
	AccountID       string
	PublicURL       string // e.g. https://<bucket>.<account_id>.r2.cloudflarestorage.com
	AccessKeyID     string
	SecretAccessKey string
}

func (c R2Config) Enabled() bool {
	return c.Bucket != "" && c.AccountID != "" && c.PublicURL != ""
}

// R2Store keeps generated PDFs in an R2 bucket.
type R2Store struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func NewR2Store(ctx context.Context, cfg R2Config) (*R2Store, error) {
	if !cfg.Enabled() {
		return nil, errors.New("missing required R2 settings")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"), // Important for R2
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})
	return &R2Store{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Save uploads a PDF and returns its public URL.
func (s *R2Store) Save(ctx context.Context, filename string, data []byte) (string, error) {
	key := path.Base(filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %w", err)
	}
	return s.publicBase + "/" + url.PathEscape(key), nil
}

// Remove deletes an object previously returned by Save.
func (s *R2Store) Remove(ctx context.Context, fileURL string) error {
	u, err := url.Parse(fileURL)
	if err != nil {
		return fmt.Errorf("invalid file URL: %w", err)
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path.Base(u.Path)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete R2 object: %w", err)
	}
	return nil
}

// LocalStore keeps generated PDFs in a directory.
type LocalStore struct {
	Dir string
}

func (s LocalStore) Save(_ context.Context, filename string, data []byte) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "./pdfs"
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create pdf directory: %w", err)
	}
	target := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return target, nil
}

func (s LocalStore) Remove(_ context.Context, location string) error {
	err := os.Remove(location)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
