package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RigelNana/arkclinic/pkg/metrics"
	"github.com/RigelNana/arkclinic/services/trial-service/models"
	"github.com/RigelNana/arkclinic/services/trial-service/repository"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// GenerateReport synthesises a report from every completed file the user
// owns. Each call creates a new report.
func (s *TrialServiceImpl) GenerateReport(ctx context.Context, userID uuid.UUID, reportType models.ReportType) (*models.GeneratedReport, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	if !reportType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReportType, reportType)
	}
	log := s.logger.WithFields(logrus.Fields{"user_id": userID, "report_type": reportType})

	files, err := s.files.FindCompletedByUser(ctx, userID)
	if err != nil {
		metrics.RecordReport(string(reportType), "error")
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	if len(files) == 0 {
		metrics.RecordReport(string(reportType), "no_data")
		return nil, ErrNoDataAvailable
	}

	contents := make([]string, 0, len(files))
	refs := make(pq.StringArray, 0, len(files))
	for _, f := range files {
		if f.ExtractedContent != nil {
			contents = append(contents, *f.ExtractedContent)
		}
		refs = append(refs, f.ID.String())
	}

	text, err := s.infer(ctx, reportSystemPrompt(reportType), reportUserPrompt(reportType, strings.Join(contents, "\n\n")), reportMaxTokens)
	if err != nil {
		log.WithError(err).Error("report inference failed")
		metrics.RecordReport(string(reportType), "error")
		return nil, fmt.Errorf("%w: %w: %w", ErrGenerationFailed, ErrInferenceFailed, err)
	}

	now := s.now()
	report := &models.GeneratedReport{
		UserID:         userID,
		Title:          models.ReportTitle(reportType, now),
		ReportType:     reportType,
		Content:        models.NewReportContent(text),
		FileReferences: refs,
		Status:         models.ReportStatusGenerated,
		GeneratedDate:  now,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		log.WithError(err).Error("failed to save report")
		metrics.RecordReport(string(reportType), "error")
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	log.WithFields(logrus.Fields{"report_id": report.ID, "files": len(refs)}).Info("report generated")
	metrics.RecordReport(string(reportType), models.ReportStatusGenerated)
	if err := s.events.PublishReportGenerated(ctx, report); err != nil {
		log.WithError(err).Warn("failed to publish report event")
	}
	return report, nil
}

func (s *TrialServiceImpl) ListFiles(ctx context.Context, userID uuid.UUID, page, pageSize int32) ([]*models.UploadedFile, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrAuthenticationRequired
	}
	return s.files.GetByUserIDWithPagination(ctx, userID, page, pageSize)
}

// GetFile returns one upload with its current status, including the error
// message of a failed extraction. Only the owner can see it.
func (s *TrialServiceImpl) GetFile(ctx context.Context, userID, fileID uuid.UUID) (*models.UploadedFile, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	file, err := s.files.GetByID(ctx, fileID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	if file.UserID != userID {
		return nil, ErrFileNotFound
	}
	return file, nil
}

func (s *TrialServiceImpl) ListReports(ctx context.Context, userID uuid.UUID, page, pageSize int32) ([]*models.GeneratedReport, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrAuthenticationRequired
	}
	return s.reports.GetByUserIDWithPagination(ctx, userID, page, pageSize)
}

// GetReport returns the report only to its owner. Someone else's report
// is indistinguishable from a missing one.
func (s *TrialServiceImpl) GetReport(ctx context.Context, userID, reportID uuid.UUID) (*models.GeneratedReport, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	report, err := s.reports.GetByIDAndUser(ctx, reportID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	return report, nil
}
