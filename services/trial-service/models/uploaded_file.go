package models

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type FileStatus string

const (
	FileStatusPending    FileStatus = "pending"
	FileStatusProcessing FileStatus = "processing"
	FileStatusCompleted  FileStatus = "completed"
	FileStatusError      FileStatus = "error"
)

// transitions lists the statuses reachable from each status.
var transitions = map[FileStatus][]FileStatus{
	FileStatusPending:    {FileStatusProcessing, FileStatusError},
	FileStatusProcessing: {FileStatusCompleted, FileStatusError},
}

func (s FileStatus) Valid() bool {
	switch s {
	case FileStatusPending, FileStatusProcessing, FileStatusCompleted, FileStatusError:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s FileStatus) Terminal() bool {
	return s == FileStatusCompleted || s == FileStatusError
}

func (s FileStatus) CanTransitionTo(next FileStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Predecessors returns every status that may move directly to s.
func Predecessors(s FileStatus) []FileStatus {
	var out []FileStatus
	for _, from := range []FileStatus{FileStatusPending, FileStatusProcessing} {
		if from.CanTransitionTo(s) {
			out = append(out, from)
		}
	}
	return out
}

type UploadedFile struct {
	Base
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index:idx_uploaded_files_user_status,priority:1" json:"user_id"`
	Filename         string     `gorm:"not null" json:"filename"`
	FileSize         int64      `gorm:"not null" json:"file_size"`
	FileType         string     `gorm:"type:varchar(255)" json:"file_type"`
	FilePath         string     `gorm:"not null" json:"file_path"`
	ProcessingStatus FileStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_uploaded_files_user_status,priority:2" json:"processing_status"`
	ExtractedContent *string    `gorm:"type:text" json:"extracted_content"`
	ErrorMessage     string     `gorm:"type:text" json:"error_message,omitempty"`
}

func (UploadedFile) TableName() string {
	return "uploaded_files"
}

var contentTypes = map[string]string{
	".csv":  "text/csv",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xls":  "application/vnd.ms-excel",
	".json": "application/json",
	".xml":  "application/xml",
	".txt":  "text/plain",
}

// AcceptedExtensions are the upload formats the product advertises.
func AcceptedExtensions() []string {
	return []string{".csv", ".xlsx", ".xls", ".json", ".xml", ".txt"}
}

// ContentTypeFor maps a filename to a declared content type by extension.
// Unknown extensions fall back to application/octet-stream.
func ContentTypeFor(filename string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}
