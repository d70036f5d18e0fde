package grpc

import (
	"context"
	"testing"

	"github.com/RigelNana/arkclinic/pkg/metrics"
	"github.com/RigelNana/arkclinic/proto/trial"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "success", statusLabel(&trial.IngestResponse{Success: true}, nil))
	assert.Equal(t, "failed", statusLabel(&trial.IngestResponse{Success: false}, nil))
	assert.Equal(t, "failed", statusLabel(&trial.GenerateReportResponse{}, nil))
	assert.Equal(t, "success", statusLabel(&trial.ListFilesResponse{}, nil))
	assert.Equal(t, "NotFound", statusLabel(nil, status.Error(codes.NotFound, "gone")))
}

func TestUnaryServerInterceptor_CountsSoftFailure(t *testing.T) {
	const method = "/trial.TrialService/Ingest"
	counter := metrics.RequestsTotal.WithLabelValues("interceptor-test", method, "failed")
	before := testutil.ToFloat64(counter)

	intercept := UnaryServerInterceptor("interceptor-test")
	_, err := intercept(context.Background(), &trial.IngestRequest{}, &grpc.UnaryServerInfo{FullMethod: method},
		func(context.Context, any) (any, error) {
			return &trial.IngestResponse{Success: false, Message: "inference failed"}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
