package service

import (
	"fmt"

	"github.com/RigelNana/arkclinic/services/trial-service/models"
)

const (
	extractionMaxTokens = 2000
	reportMaxTokens     = 3000
)

const extractionSystemPrompt = "You are a clinical trial data validation expert. Analyze the provided eCRF data and extract key information including subject IDs, visit dates, form types, validation issues, and compliance status. Return structured JSON data."

var reportPrompts = map[models.ReportType]string{
	models.ReportTypeClinicalSummary:  "Generate a comprehensive clinical trial summary report including subject enrollment, completion rates, primary endpoints, and key findings.",
	models.ReportTypeComplianceReport: "Generate a compliance report highlighting protocol adherence, deviations, audit findings, and regulatory compliance status.",
	models.ReportTypeDataValidation:   "Generate a data validation report showing data quality metrics, missing values, outliers, and validation rule results.",
	models.ReportTypeAuditTrail:       "Generate an audit trail report documenting all data changes, user actions, timestamps, and system events.",
}

func extractionUserPrompt(content string) string {
	return "Process this clinical trial data: " + content
}

func reportSystemPrompt(t models.ReportType) string {
	return fmt.Sprintf("You are a clinical research expert. %s Format as structured JSON with sections, metrics, and actionable insights.", reportPrompts[t])
}

func reportUserPrompt(t models.ReportType, data string) string {
	return fmt.Sprintf("Generate a %s report based on this clinical trial data: %s", t, data)
}
