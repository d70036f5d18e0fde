package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/RigelNana/arkclinic/proto/trial"
	"github.com/RigelNana/arkclinic/services/trial-service/models"
	"github.com/RigelNana/arkclinic/services/trial-service/service"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type TrialRPCServer struct {
	trial.UnimplementedTrialServiceServer
	svc    service.TrialService
	logger *logrus.Logger
}

func NewTrialRPCServer(svc service.TrialService, logger *logrus.Logger) *TrialRPCServer {
	return &TrialRPCServer{svc: svc, logger: logger}
}

func (s *TrialRPCServer) Ingest(ctx context.Context, req *trial.IngestRequest) (*trial.IngestResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	if req.Size > 0 && req.Size != int64(len(req.Data)) {
		return nil, status.Errorf(codes.InvalidArgument, "declared size %d does not match %d bytes received", req.Size, len(req.Data))
	}
	s.logger.WithFields(logrus.Fields{"user_id": req.UserID, "filename": req.Filename, "size": len(req.Data)}).Info("Ingest called")

	file, err := s.svc.Ingest(ctx, service.IngestRequest{
		UserID:      userID,
		Filename:    req.Filename,
		Size:        req.Size,
		ContentType: req.ContentType,
		Data:        req.Data,
	})
	if err != nil {
		if file == nil {
			return nil, toStatus(err)
		}
		return &trial.IngestResponse{
			Success: false,
			Message: err.Error(),
			File:    toFileInfo(file),
		}, nil
	}
	return &trial.IngestResponse{
		Success: true,
		Message: "File processed successfully",
		File:    toFileInfo(file),
	}, nil
}

func (s *TrialRPCServer) GenerateReport(ctx context.Context, req *trial.GenerateReportRequest) (*trial.GenerateReportResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"user_id": req.UserID, "report_type": req.ReportType}).Info("GenerateReport called")

	report, err := s.svc.GenerateReport(ctx, userID, models.ReportType(req.ReportType))
	if err != nil {
		return nil, toStatus(err)
	}
	return &trial.GenerateReportResponse{
		Success: true,
		Message: "Report generated successfully",
		Report:  toReportInfo(report),
	}, nil
}

func (s *TrialRPCServer) ListFiles(ctx context.Context, req *trial.ListFilesRequest) (*trial.ListFilesResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	files, total, err := s.svc.ListFiles(ctx, userID, req.Page, req.PageSize)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &trial.ListFilesResponse{Files: make([]*trial.FileInfo, 0, len(files)), Total: total}
	for _, f := range files {
		resp.Files = append(resp.Files, toFileInfo(f))
	}
	return resp, nil
}

func (s *TrialRPCServer) GetFile(ctx context.Context, req *trial.GetFileRequest) (*trial.GetFileResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	fileID, err := uuid.Parse(req.FileID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid file_id")
	}
	file, err := s.svc.GetFile(ctx, userID, fileID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &trial.GetFileResponse{File: toFileInfo(file)}, nil
}

func (s *TrialRPCServer) ListReports(ctx context.Context, req *trial.ListReportsRequest) (*trial.ListReportsResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	reports, total, err := s.svc.ListReports(ctx, userID, req.Page, req.PageSize)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &trial.ListReportsResponse{Reports: make([]*trial.ReportInfo, 0, len(reports)), Total: total}
	for _, r := range reports {
		resp.Reports = append(resp.Reports, toReportInfo(r))
	}
	return resp, nil
}

func (s *TrialRPCServer) GetReport(ctx context.Context, req *trial.GetReportRequest) (*trial.GetReportResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	reportID, err := uuid.Parse(req.ReportID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid report_id")
	}
	report, err := s.svc.GetReport(ctx, userID, reportID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &trial.GetReportResponse{Report: toReportInfo(report)}, nil
}

// parseUserID treats an empty id as anonymous and lets the service reject it.
func parseUserID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "invalid user_id")
	}
	return id, nil
}

func toStatus(err error) error {
	code := codes.Internal
	switch {
	case errors.Is(err, service.ErrAuthenticationRequired):
		code = codes.Unauthenticated
	case errors.Is(err, service.ErrEmptyFile), errors.Is(err, service.ErrInvalidReportType):
		code = codes.InvalidArgument
	case errors.Is(err, service.ErrNoDataAvailable):
		code = codes.FailedPrecondition
	case errors.Is(err, service.ErrReportNotFound), errors.Is(err, service.ErrFileNotFound):
		code = codes.NotFound
	case errors.Is(err, service.ErrInferenceFailed):
		code = codes.Unavailable
	}
	return status.Error(code, err.Error())
}

func toFileInfo(f *models.UploadedFile) *trial.FileInfo {
	return &trial.FileInfo{
		ID:               f.ID.String(),
		UserID:           f.UserID.String(),
		Filename:         f.Filename,
		FileSize:         f.FileSize,
		FileType:         f.FileType,
		FilePath:         f.FilePath,
		ProcessingStatus: string(f.ProcessingStatus),
		ExtractedContent: f.ExtractedContent,
		ErrorMessage:     f.ErrorMessage,
		CreatedAt:        f.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        f.UpdatedAt.Format(time.RFC3339),
	}
}

func toReportInfo(r *models.GeneratedReport) *trial.ReportInfo {
	return &trial.ReportInfo{
		ID:             r.ID.String(),
		UserID:         r.UserID.String(),
		Title:          r.Title,
		ReportType:     string(r.ReportType),
		Content:        json.RawMessage(r.Content),
		FileReferences: []string(r.FileReferences),
		Status:         r.Status,
		GeneratedDate:  r.GeneratedDate.Format(time.RFC3339),
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}
