package service

import (
	"context"
	"time"

	"github.com/RigelNana/arkclinic/services/trial-service/inference"
	"github.com/RigelNana/arkclinic/services/trial-service/models"
	"github.com/RigelNana/arkclinic/services/trial-service/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type BlobStore interface {
	Put(ctx context.Context, namespace, filename, contentType string, data []byte) (string, error)
}

type EventPublisher interface {
	PublishFileProcessed(ctx context.Context, f *models.UploadedFile) error
	PublishReportGenerated(ctx context.Context, r *models.GeneratedReport) error
}

type IngestRequest struct {
	UserID      uuid.UUID
	Filename    string
	Size        int64
	ContentType string
	Data        []byte
}

type TrialService interface {
	Ingest(ctx context.Context, req IngestRequest) (*models.UploadedFile, error)
	GenerateReport(ctx context.Context, userID uuid.UUID, reportType models.ReportType) (*models.GeneratedReport, error)
	ListFiles(ctx context.Context, userID uuid.UUID, page, pageSize int32) ([]*models.UploadedFile, int64, error)
	GetFile(ctx context.Context, userID, fileID uuid.UUID) (*models.UploadedFile, error)
	ListReports(ctx context.Context, userID uuid.UUID, page, pageSize int32) ([]*models.GeneratedReport, int64, error)
	GetReport(ctx context.Context, userID, reportID uuid.UUID) (*models.GeneratedReport, error)
}

type TrialServiceImpl struct {
	files   repository.UploadedFileRepository
	reports repository.GeneratedReportRepository
	blobs   BlobStore
	llm     inference.Client
	events  EventPublisher
	logger  *logrus.Logger
	timeout time.Duration
	now     func() time.Time
}

type Option func(*TrialServiceImpl)

// WithInferenceTimeout bounds every inference call. Zero keeps the default.
func WithInferenceTimeout(d time.Duration) Option {
	return func(s *TrialServiceImpl) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *TrialServiceImpl) { s.now = now }
}

func WithEventPublisher(p EventPublisher) Option {
	return func(s *TrialServiceImpl) { s.events = p }
}

func NewTrialService(
	files repository.UploadedFileRepository,
	reports repository.GeneratedReportRepository,
	blobs BlobStore,
	llm inference.Client,
	logger *logrus.Logger,
	opts ...Option,
) *TrialServiceImpl {
	s := &TrialServiceImpl{
		files:   files,
		reports: reports,
		blobs:   blobs,
		llm:     llm,
		events:  noopEvents{},
		logger:  logger,
		timeout: 60 * time.Second,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TrialServiceImpl) infer(ctx context.Context, system, user string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.llm.Infer(ctx, system, user, maxTokens)
}

type noopEvents struct{}

func (noopEvents) PublishFileProcessed(context.Context, *models.UploadedFile) error { return nil }
func (noopEvents) PublishReportGenerated(context.Context, *models.GeneratedReport) error { return nil }
