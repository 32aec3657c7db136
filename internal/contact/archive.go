package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/evermore-weddings/evermore/internal/models"
	"github.com/evermore-weddings/evermore/internal/utils"
)

// Archive persists inquiry outcomes as JSON objects in an R2 bucket.
// Writes are best effort and never affect the contact response.
type Archive struct {
	client *s3.Client
	bucket string
}

// ArchiveConfig carries the R2 connection settings.
type ArchiveConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

func NewArchive(ctx context.Context, cfg ArchiveConfig) (*Archive, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &Archive{client: client, bucket: cfg.Bucket}, nil
}

// Store writes one outcome under a dated key.
func (a *Archive) Store(ctx context.Context, outcome models.InquiryOutcome) error {
	body, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal inquiry: %w", err)
	}

	digest := utils.Hash(outcome.Submission.Email + outcome.ReceivedAt.String())
	key := fmt.Sprintf("inquiries/%s/%s.json",
		outcome.ReceivedAt.Format("2006/01/02"), digest[:12])

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to store inquiry %s: %w", key, err)
	}
	return nil
}
