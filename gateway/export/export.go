// Package export renders a generated report as a downloadable file.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RigelNana/arkclinic/proto/trial"
	"github.com/jung-kurt/gofpdf"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/json"
}

// Filename is "<title>.<ext>" with path separators from the date removed.
func Filename(title string, f Format) string {
	name := strings.NewReplacer("/", "-", "\\", "-", "\"", "").Replace(title)
	return name + "." + string(f)
}

func Render(r *trial.ReportInfo, f Format) ([]byte, error) {
	if f == FormatPDF {
		return PDF(r)
	}
	return JSON(r)
}

// JSON returns the stored report content indented with two spaces.
func JSON(r *trial.ReportInfo) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.Content, "", "  "); err != nil {
		return nil, fmt.Errorf("report content is not valid JSON: %w", err)
	}
	return buf.Bytes(), nil
}

type reportContent struct {
	Report string `json:"report"`
}

// bodyText returns the report text, re-indented when the model answered
// with JSON as instructed.
func bodyText(r *trial.ReportInfo) string {
	var rc reportContent
	if err := json.Unmarshal(r.Content, &rc); err != nil {
		return string(r.Content)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(rc.Report)), "", "  "); err == nil {
		return buf.String()
	}
	return rc.Report
}

func PDF(r *trial.ReportInfo) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr(r.Title), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 9)
	meta := []string{
		"Report type: " + r.ReportType,
		"Generated: " + r.GeneratedDate,
		fmt.Sprintf("Source files: %d", len(r.FileReferences)),
		"Report ID: " + r.ID,
	}
	for _, line := range meta {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Courier", "", 8)
	pdf.MultiCell(0, 4, tr(bodyText(r)), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
