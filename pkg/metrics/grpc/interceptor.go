package grpc

import (
	"context"
	"time"

	"github.com/RigelNana/arkclinic/pkg/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// successReporter is implemented by responses that report a failed
// operation inside an OK reply.
type successReporter interface {
	GetSuccess() bool
}

func statusLabel(resp any, err error) string {
	if err != nil {
		return status.Code(err).String()
	}
	if r, ok := resp.(successReporter); ok && !r.GetSuccess() {
		return "failed"
	}
	return "success"
}

// UnaryServerInterceptor records request count and latency for every unary RPC served.
func UnaryServerInterceptor(serviceName string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		metrics.RecordRequest(serviceName, info.FullMethod, statusLabel(resp, err), time.Since(start))
		return resp, err
	}
}

// UnaryClientInterceptor records outgoing calls, labelled with the calling service.
func UnaryClientInterceptor(serviceName string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		metrics.RecordRequest(serviceName, "client "+method, statusLabel(reply, err), time.Since(start))
		return err
	}
}
