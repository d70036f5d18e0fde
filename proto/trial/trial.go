// Package trial holds the TrialService contract shared by the gateway and
// trial-service. Messages travel as JSON over gRPC (see codec.go).
package trial

import "encoding/json"

type FileInfo struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	Filename         string  `json:"filename"`
	FileSize         int64   `json:"file_size"`
	FileType         string  `json:"file_type"`
	FilePath         string  `json:"file_path"`
	ProcessingStatus string  `json:"processing_status"`
	ExtractedContent *string `json:"extracted_content,omitempty"`
	ErrorMessage     string  `json:"error_message,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type ReportInfo struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	Title          string          `json:"title"`
	ReportType     string          `json:"report_type"`
	Content        json.RawMessage `json:"content"`
	FileReferences []string        `json:"file_references"`
	Status         string          `json:"status"`
	GeneratedDate  string          `json:"generated_date"`
	CreatedAt      string          `json:"created_at"`
}

type IngestRequest struct {
	UserID      string `json:"user_id"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// IngestResponse carries the file record even when Success is false, as
// long as the record was created before the failure.
type IngestResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	File    *FileInfo `json:"file,omitempty"`
}

func (r *IngestResponse) GetSuccess() bool {
	return r != nil && r.Success
}

type GenerateReportRequest struct {
	UserID     string `json:"user_id"`
	ReportType string `json:"report_type"`
}

type GenerateReportResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Report  *ReportInfo `json:"report,omitempty"`
}

func (r *GenerateReportResponse) GetSuccess() bool {
	return r != nil && r.Success
}

type ListFilesRequest struct {
	UserID   string `json:"user_id"`
	Page     int32  `json:"page"`
	PageSize int32  `json:"page_size"`
}

type ListFilesResponse struct {
	Files []*FileInfo `json:"files"`
	Total int64       `json:"total"`
}

type GetFileRequest struct {
	UserID string `json:"user_id"`
	FileID string `json:"file_id"`
}

type GetFileResponse struct {
	File *FileInfo `json:"file"`
}

type ListReportsRequest struct {
	UserID   string `json:"user_id"`
	Page     int32  `json:"page"`
	PageSize int32  `json:"page_size"`
}

type ListReportsResponse struct {
	Reports []*ReportInfo `json:"reports"`
	Total   int64         `json:"total"`
}

type GetReportRequest struct {
	UserID   string `json:"user_id"`
	ReportID string `json:"report_id"`
}

type GetReportResponse struct {
	Report *ReportInfo `json:"report"`
}
