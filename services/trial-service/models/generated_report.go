package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type ReportType string

const (
	ReportTypeClinicalSummary  ReportType = "clinical_summary"
	ReportTypeComplianceReport ReportType = "compliance_report"
	ReportTypeDataValidation   ReportType = "data_validation"
	ReportTypeAuditTrail       ReportType = "audit_trail"
)

const ReportStatusGenerated = "generated"

func ReportTypes() []ReportType {
	return []ReportType{
		ReportTypeClinicalSummary,
		ReportTypeComplianceReport,
		ReportTypeDataValidation,
		ReportTypeAuditTrail,
	}
}

func (t ReportType) Valid() bool {
	for _, known := range ReportTypes() {
		if t == known {
			return true
		}
	}
	return false
}

type GeneratedReport struct {
	Base
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title          string         `gorm:"not null" json:"title"`
	ReportType     ReportType     `gorm:"type:varchar(50);not null" json:"report_type"`
	Content        datatypes.JSON `gorm:"type:jsonb" json:"content"`
	FileReferences pq.StringArray `gorm:"type:text[]" json:"file_references"`
	Status         string         `gorm:"type:varchar(20);not null;default:'generated'" json:"status"`
	GeneratedDate  time.Time      `gorm:"not null" json:"generated_date"`
}

func (GeneratedReport) TableName() string {
	return "generated_reports"
}

type reportContent struct {
	Report string `json:"report"`
}

// ReportTitle renders e.g. "CLINICAL SUMMARY Report - 3/4/2025".
// Only the first underscore becomes a space.
func ReportTitle(t ReportType, at time.Time) string {
	name := strings.ToUpper(strings.Replace(string(t), "_", " ", 1))
	return name + " Report - " + at.Format("1/2/2006")
}

// NewReportContent wraps raw inference text as {"report": text}.
func NewReportContent(text string) datatypes.JSON {
	b, _ := json.Marshal(reportContent{Report: text})
	return datatypes.JSON(b)
}

// ReportText extracts the raw report text from stored content.
func ReportText(content datatypes.JSON) string {
	var rc reportContent
	if err := json.Unmarshal(content, &rc); err != nil {
		return ""
	}
	return rc.Report
}
