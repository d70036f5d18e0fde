package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/RigelNana/arkclinic/gateway/export"
	"github.com/RigelNana/arkclinic/proto/trial"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultReportType = "clinical_summary"

type TrialHandler struct {
	client    trial.TrialServiceClient
	logger    *logrus.Logger
	maxUpload int64
	timeout   time.Duration
}

func NewTrialHandler(client trial.TrialServiceClient, logger *logrus.Logger, maxUpload int64, timeout time.Duration) *TrialHandler {
	return &TrialHandler{client: client, logger: logger, maxUpload: maxUpload, timeout: timeout}
}

// UploadFile accepts one clinical data file and runs ingestion on it.
// POST /api/files/upload
func (h *TrialHandler) UploadFile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+1<<20)
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required", "detail": err.Error()})
		return
	}
	defer file.Close()

	if header.Size > h.maxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file", "detail": err.Error()})
		return
	}

	// a generic part type tells us nothing; let the service infer it from the extension
	contentType := header.Header.Get("Content-Type")
	if contentType == "application/octet-stream" {
		contentType = ""
	}

	log := h.logger.WithFields(logrus.Fields{"user_id": userID, "filename": header.Filename, "size": header.Size})
	log.Info("UploadFile request")

	ctx, cancel := h.callContext(c)
	defer cancel()
	resp, err := h.client.Ingest(ctx, &trial.IngestRequest{
		UserID:      userID,
		Filename:    header.Filename,
		Size:        int64(len(data)),
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		log.WithError(err).Error("UploadFile failed")
		writeError(c, err)
		return
	}
	if !resp.Success {
		log.WithField("detail", resp.Message).Warn("UploadFile processing failed")
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": resp.Message, "data": resp.File})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": resp.Message, "data": resp.File})
}

// ListFiles GET /api/files
func (h *TrialHandler) ListFiles(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	ctx, cancel := h.callContext(c)
	defer cancel()
	resp, err := h.client.ListFiles(ctx, &trial.ListFilesRequest{UserID: userID, Page: page, PageSize: pageSize})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": resp.Files, "total": resp.Total, "page": page, "page_size": pageSize})
}

// GetFile GET /api/files/:id
func (h *TrialHandler) GetFile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ctx, cancel := h.callContext(c)
	defer cancel()
	resp, err := h.client.GetFile(ctx, &trial.GetFileRequest{UserID: userID, FileID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": resp.File})
}

type createReportRequest struct {
	ReportType string `json:"report_type"`
}

// CreateReport POST /api/reports
func (h *TrialHandler) CreateReport(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "detail": err.Error()})
		return
	}
	if req.ReportType == "" {
		req.ReportType = defaultReportType
	}

	ctx, cancel := h.callContext(c)
	defer cancel()
	resp, err := h.client.GenerateReport(ctx, &trial.GenerateReportRequest{UserID: userID, ReportType: req.ReportType})
	if err != nil {
		h.logger.WithFields(logrus.Fields{"user_id": userID, "report_type": req.ReportType}).WithError(err).Warn("CreateReport failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": resp.Message, "data": resp.Report})
}

// ListReports GET /api/reports
func (h *TrialHandler) ListReports(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	ctx, cancel := h.callContext(c)
	defer cancel()
	resp, err := h.client.ListReports(ctx, &trial.ListReportsRequest{UserID: userID, Page: page, PageSize: pageSize})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": resp.Reports, "total": resp.Total, "page": page, "page_size": pageSize})
}

// GetReport GET /api/reports/:id
func (h *TrialHandler) GetReport(c *gin.Context) {
	report, ok := h.fetchReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}

// DownloadReport GET /api/reports/:id/download?format=json|pdf
func (h *TrialHandler) DownloadReport(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, ok := h.fetchReport(c)
	if !ok {
		return
	}
	body, err := export.Render(report, format)
	if err != nil {
		h.logger.WithField("report_id", report.ID).WithError(err).Error("DownloadReport render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(report.Title, format)+`"`)
	c.Data(http.StatusOK, format.ContentType(), body)
}

func (h *TrialHandler) fetchReport(c *gin.Context) (*trial.ReportInfo, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	ctx, cancel := h.callContext(c)
	defer cancel()
	resp, err := h.client.GetReport(ctx, &trial.GetReportRequest{UserID: userID, ReportID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return resp.Report, true
}

func (h *TrialHandler) callContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func currentUser(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return "", false
	}
	return userID, true
}

func pagination(c *gin.Context) (int32, int32) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return int32(page), int32(pageSize)
}

var httpStatus = map[codes.Code]int{
	codes.Unauthenticated:    http.StatusUnauthorized,
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.FailedPrecondition: http.StatusUnprocessableEntity,
	codes.NotFound:           http.StatusNotFound,
	codes.Unavailable:        http.StatusBadGateway,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
}

func writeError(c *gin.Context, err error) {
	st := status.Convert(err)
	code, ok := httpStatus[st.Code()]
	if !ok {
		code = http.StatusInternalServerError
	}
	c.JSON(code, gin.H{"success": false, "error": st.Message()})
}
