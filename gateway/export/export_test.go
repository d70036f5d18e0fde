package export

import (
	"bytes"
	"testing"

	"github.com/RigelNana/arkclinic/proto/trial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *trial.ReportInfo {
	return &trial.ReportInfo{
		ID:             "3f1c2d8e-0000-4000-8000-000000000001",
		Title:          "DATA VALIDATION Report - 3/4/2025",
		ReportType:     "data_validation",
		Content:        []byte(`{"report":"{\"sections\":[{\"name\":\"Missing values\",\"count\":0}]}"}`),
		FileReferences: []string{"a", "b"},
		GeneratedDate:  "2025-03-04T09:00:00Z",
	}
}

func TestJSON_IndentsContent(t *testing.T) {
	out, err := JSON(sampleReport())
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"report\": \"{\\\"sections\\\":[{\\\"name\\\":\\\"Missing values\\\",\\\"count\\\":0}]}\"\n}", string(out))
}

func TestJSON_InvalidContent(t *testing.T) {
	r := sampleReport()
	r.Content = []byte("{oops")
	_, err := JSON(r)
	assert.Error(t, err)
}

func TestPDF_ProducesDocument(t *testing.T) {
	out, err := PDF(sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestBodyText(t *testing.T) {
	assert.Contains(t, bodyText(sampleReport()), "\n  \"sections\": [")

	r := sampleReport()
	r.Content = []byte(`{"report":"plain prose"}`)
	assert.Equal(t, "plain prose", bodyText(r))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)
	assert.Equal(t, "application/pdf", f.ContentType())

	_, err = ParseFormat("docx")
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "DATA VALIDATION Report - 3-4-2025.json", Filename("DATA VALIDATION Report - 3/4/2025", FormatJSON))
	assert.Equal(t, "x.pdf", Filename("x", FormatPDF))
}
