package service

import (
	"context"
	"fmt"

	"github.com/RigelNana/arkclinic/pkg/metrics"
	"github.com/RigelNana/arkclinic/services/trial-service/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Ingest stores the upload, records it and runs extraction on its content.
// Once a record exists the returned file is non-nil, even alongside an
// error, and reflects the last status that was persisted.
func (s *TrialServiceImpl) Ingest(ctx context.Context, req IngestRequest) (*models.UploadedFile, error) {
	if req.UserID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	if len(req.Data) == 0 {
		return nil, ErrEmptyFile
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = models.ContentTypeFor(req.Filename)
	}
	size := req.Size
	if size <= 0 {
		size = int64(len(req.Data))
	}
	log := s.logger.WithFields(logrus.Fields{"user_id": req.UserID, "filename": req.Filename})

	path, err := s.blobs.Put(ctx, req.UserID.String(), req.Filename, contentType, req.Data)
	if err != nil {
		log.WithError(err).Error("blob upload failed")
		metrics.RecordIngestion("upload_failed")
		return nil, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	file := &models.UploadedFile{
		UserID:           req.UserID,
		Filename:         req.Filename,
		FileSize:         size,
		FileType:         contentType,
		FilePath:         path,
		ProcessingStatus: models.FileStatusPending,
	}
	if err := s.files.Create(ctx, file); err != nil {
		log.WithError(err).Error("failed to save file record")
		metrics.RecordIngestion("upload_failed")
		return nil, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	log = log.WithField("file_id", file.ID)

	if err := s.moveTo(ctx, file, models.FileStatusProcessing, nil); err != nil {
		return s.failIngestion(ctx, log, file, err)
	}

	text, err := s.infer(ctx, extractionSystemPrompt, extractionUserPrompt(string(req.Data)), extractionMaxTokens)
	if err != nil {
		return s.failIngestion(ctx, log, file, fmt.Errorf("%w: %w", ErrInferenceFailed, err))
	}

	if err := s.moveTo(ctx, file, models.FileStatusCompleted, map[string]any{"extracted_content": text}); err != nil {
		return s.failIngestion(ctx, log, file, err)
	}
	file.ExtractedContent = &text

	log.Info("file processed")
	metrics.RecordIngestion(string(models.FileStatusCompleted))
	if err := s.events.PublishFileProcessed(ctx, file); err != nil {
		log.WithError(err).Warn("failed to publish file event")
	}
	return file, nil
}

func (s *TrialServiceImpl) moveTo(ctx context.Context, file *models.UploadedFile, to models.FileStatus, extra map[string]any) error {
	if err := s.files.Transition(ctx, file.ID, models.Predecessors(to), to, extra); err != nil {
		return err
	}
	file.ProcessingStatus = to
	file.UpdatedAt = s.now()
	return nil
}

// failIngestion records cause on the file and reports ErrUploadFailed. The
// status write runs even if the caller's context is already done.
func (s *TrialServiceImpl) failIngestion(ctx context.Context, log *logrus.Entry, file *models.UploadedFile, cause error) (*models.UploadedFile, error) {
	log.WithError(cause).Error("file processing failed")
	metrics.RecordIngestion(string(models.FileStatusError))

	msg := cause.Error()
	if err := s.moveTo(context.WithoutCancel(ctx), file, models.FileStatusError, map[string]any{"error_message": msg}); err != nil {
		log.WithError(err).Error("failed to mark file as error")
	} else {
		file.ErrorMessage = msg
	}
	return file, fmt.Errorf("%w: %w", ErrUploadFailed, cause)
}
