package service

import "errors"

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrEmptyFile              = errors.New("file is empty")
	ErrInvalidReportType      = errors.New("invalid report type")
	ErrUploadFailed           = errors.New("upload failed")
	ErrGenerationFailed       = errors.New("report generation failed")
	ErrNoDataAvailable        = errors.New("no processed data available")
	ErrInferenceFailed        = errors.New("inference failed")
	ErrReportNotFound         = errors.New("report not found")
	ErrFileNotFound           = errors.New("file not found")
)
