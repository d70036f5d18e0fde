package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to FileStatus
		ok       bool
	}{
		{FileStatusPending, FileStatusProcessing, true},
		{FileStatusPending, FileStatusError, true},
		{FileStatusProcessing, FileStatusCompleted, true},
		{FileStatusProcessing, FileStatusError, true},
		{FileStatusPending, FileStatusCompleted, false},
		{FileStatusCompleted, FileStatusError, false},
		{FileStatusError, FileStatusProcessing, false},
		{FileStatusProcessing, FileStatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestPredecessors(t *testing.T) {
	assert.Equal(t, []FileStatus{FileStatusPending}, Predecessors(FileStatusProcessing))
	assert.Equal(t, []FileStatus{FileStatusProcessing}, Predecessors(FileStatusCompleted))
	assert.Equal(t, []FileStatus{FileStatusPending, FileStatusProcessing}, Predecessors(FileStatusError))
	assert.Empty(t, Predecessors(FileStatusPending))
}

func TestFileStatus_Terminal(t *testing.T) {
	assert.True(t, FileStatusCompleted.Terminal())
	assert.True(t, FileStatusError.Terminal())
	assert.False(t, FileStatusPending.Terminal())
	assert.False(t, FileStatus("archived").Valid())
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "text/csv", ContentTypeFor("baseline.csv"))
	assert.Equal(t, "text/csv", ContentTypeFor("BASELINE.CSV"))
	assert.Equal(t, "application/vnd.ms-excel", ContentTypeFor("legacy.xls"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("scan.pdf"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("noext"))
	for _, ext := range AcceptedExtensions() {
		assert.NotEqual(t, "application/octet-stream", ContentTypeFor("f"+ext), ext)
	}
}

func TestReportTitle(t *testing.T) {
	at := time.Date(2025, time.March, 4, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "CLINICAL SUMMARY Report - 3/4/2025", ReportTitle(ReportTypeClinicalSummary, at))
	assert.Equal(t, "AUDIT TRAIL Report - 3/4/2025", ReportTitle(ReportTypeAuditTrail, at))
}

func TestReportType_Valid(t *testing.T) {
	for _, rt := range ReportTypes() {
		assert.True(t, rt.Valid())
	}
	assert.False(t, ReportType("weekly_digest").Valid())
	assert.False(t, ReportType("").Valid())
}

func TestReportContent_RoundTrip(t *testing.T) {
	content := NewReportContent("{\"sections\": []}\nline two")
	assert.JSONEq(t, `{"report":"{\"sections\": []}\nline two"}`, string(content))
	assert.Equal(t, "{\"sections\": []}\nline two", ReportText(content))
	assert.Empty(t, ReportText([]byte("not json")))
}

func TestBase_BeforeCreateAssignsID(t *testing.T) {
	var b Base
	require.NoError(t, b.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, b.ID)

	fixed := uuid.New()
	b2 := Base{ID: fixed}
	require.NoError(t, b2.BeforeCreate(nil))
	assert.Equal(t, fixed, b2.ID)
}
