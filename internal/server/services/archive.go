package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/keykeeper/internal/common"
	"github.com/dmitrijs2005/keykeeper/internal/logging"
	sc "github.com/dmitrijs2005/keykeeper/internal/server/config"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/juju/clock"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Seams over the AWS SDK for tests.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

const opExport = "export_audit"

// AuditExport describes an uploaded audit archive.
type AuditExport struct {
	Key       string
	URL       string
	Events    int
	ExpiresAt time.Time
}

// AuditArchiveService writes an owner's audit history to S3-compatible
// storage as JSON lines and hands back a presigned download link.
type AuditArchiveService struct {
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	clock       clock.Clock
	logger      logging.Logger
}

func NewAuditArchiveService(m repomanager.RepositoryManager, cfg *sc.Config, clk clock.Clock, logger logging.Logger) *AuditArchiveService {
	if clk == nil {
		clk = clock.WallClock
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	return &AuditArchiveService{
		repomanager: m,
		config:      cfg,
		clock:       clk,
		logger:      logger.With("module", "auditarchive"),
	}
}

// ArchiveKey returns the object key for an export made at t:
// audit/<owner>/<yyyy>/<mm>/<dd>/<uuid>.jsonl.
func ArchiveKey(ownerID string, t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("audit/%s/%04d/%02d/%02d/%s.jsonl",
		url.PathEscape(ownerID), t.Year(), int(t.Month()), t.Day(), uuid.New())
}

func (s *AuditArchiveService) getClients(ctx context.Context) (*s3.Client, *s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		// MinIO and most self-hosted stores need path-style addressing.
		o.UsePathStyle = true
	})

	return client, newS3PresignClient(client), nil
}

// Export uploads every audit event of ownerID, oldest first.
func (s *AuditArchiveService) Export(ctx context.Context, ownerID string) (*AuditExport, error) {
	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}

	events, err := s.repomanager.AuditLog().ListByOwner(ctx, ownerID, 0)
	if err != nil {
		return nil, classifyError(ctx, s.logger, opExport, err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			return nil, fmt.Errorf("%s: encode event %s: %w", opExport, e.ID, common.ErrorInternal)
		}
	}

	client, presign, err := s.getClients(ctx)
	if err != nil {
		s.logger.Error(ctx, "s3 client setup failed", "error", err)
		return nil, fmt.Errorf("%s: %w", opExport, common.ErrorInternal)
	}

	now := s.clock.Now()
	bucket := s.config.S3Bucket
	key := ArchiveKey(ownerID, now)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("application/x-ndjson"),
	})
	if err != nil {
		s.logger.Warn(ctx, "audit upload failed", "owner_id", ownerID, "key", key, "error", err)
		return nil, fmt.Errorf("%s: upload: %w", opExport, common.ErrPersistenceTransient)
	}

	validity := s.config.AuditExportURLValidity
	req, err := presignGetObject(presign, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(validity))
	if err != nil {
		s.logger.Error(ctx, "presign failed", "key", key, "error", err)
		return nil, fmt.Errorf("%s: presign: %w", opExport, common.ErrorInternal)
	}

	s.logger.Info(ctx, "audit exported", "owner_id", ownerID, "key", key, "events", len(events))
	return &AuditExport{Key: key, URL: req.URL, Events: len(events), ExpiresAt: now.Add(validity).UTC()}, nil
}
