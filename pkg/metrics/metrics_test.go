package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("trial-service", "/trial.TrialService/Ingest", "success"))

	RecordRequest("trial-service", "/trial.TrialService/Ingest", "success", 20*time.Millisecond)

	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("trial-service", "/trial.TrialService/Ingest", "success"))
	require.Equal(t, before+1, after)
}

func TestPipelineCounters(t *testing.T) {
	RecordIngestion("completed")
	RecordIngestion("completed")
	RecordIngestion("error")
	require.GreaterOrEqual(t, testutil.ToFloat64(FilesIngested.WithLabelValues("completed")), 2.0)
	require.GreaterOrEqual(t, testutil.ToFloat64(FilesIngested.WithLabelValues("error")), 1.0)

	before := testutil.ToFloat64(ReportsGenerated.WithLabelValues("audit_trail", "no_data"))
	RecordReport("audit_trail", "no_data")
	require.Equal(t, before+1, testutil.ToFloat64(ReportsGenerated.WithLabelValues("audit_trail", "no_data")))
}

func TestRecordKafkaMessage(t *testing.T) {
	RecordKafkaMessage("trial-service", "trial.file.processed", "success")
	require.GreaterOrEqual(t, testutil.ToFloat64(KafkaMessagesTotal.WithLabelValues("trial-service", "trial.file.processed", "success")), 1.0)
}
