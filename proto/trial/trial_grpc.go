package trial

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	TrialService_Ingest_FullMethodName         = "/trial.TrialService/Ingest"
	TrialService_GenerateReport_FullMethodName = "/trial.TrialService/GenerateReport"
	TrialService_ListFiles_FullMethodName      = "/trial.TrialService/ListFiles"
	TrialService_GetFile_FullMethodName        = "/trial.TrialService/GetFile"
	TrialService_ListReports_FullMethodName    = "/trial.TrialService/ListReports"
	TrialService_GetReport_FullMethodName      = "/trial.TrialService/GetReport"
)

// TrialServiceClient is the client API for TrialService.
type TrialServiceClient interface {
	Ingest(ctx context.Context, in *IngestRequest, opts ...grpc.CallOption) (*IngestResponse, error)
	GenerateReport(ctx context.Context, in *GenerateReportRequest, opts ...grpc.CallOption) (*GenerateReportResponse, error)
	ListFiles(ctx context.Context, in *ListFilesRequest, opts ...grpc.CallOption) (*ListFilesResponse, error)
	GetFile(ctx context.Context, in *GetFileRequest, opts ...grpc.CallOption) (*GetFileResponse, error)
	ListReports(ctx context.Context, in *ListReportsRequest, opts ...grpc.CallOption) (*ListReportsResponse, error)
	GetReport(ctx context.Context, in *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error)
}

type trialServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTrialServiceClient(cc grpc.ClientConnInterface) TrialServiceClient {
	return &trialServiceClient{cc}
}

func (c *trialServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *trialServiceClient) Ingest(ctx context.Context, in *IngestRequest, opts ...grpc.CallOption) (*IngestResponse, error) {
	out := new(IngestResponse)
	if err := c.invoke(ctx, TrialService_Ingest_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trialServiceClient) GenerateReport(ctx context.Context, in *GenerateReportRequest, opts ...grpc.CallOption) (*GenerateReportResponse, error) {
	out := new(GenerateReportResponse)
	if err := c.invoke(ctx, TrialService_GenerateReport_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trialServiceClient) ListFiles(ctx context.Context, in *ListFilesRequest, opts ...grpc.CallOption) (*ListFilesResponse, error) {
	out := new(ListFilesResponse)
	if err := c.invoke(ctx, TrialService_ListFiles_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trialServiceClient) GetFile(ctx context.Context, in *GetFileRequest, opts ...grpc.CallOption) (*GetFileResponse, error) {
	out := new(GetFileResponse)
	if err := c.invoke(ctx, TrialService_GetFile_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trialServiceClient) ListReports(ctx context.Context, in *ListReportsRequest, opts ...grpc.CallOption) (*ListReportsResponse, error) {
	out := new(ListReportsResponse)
	if err := c.invoke(ctx, TrialService_ListReports_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trialServiceClient) GetReport(ctx context.Context, in *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error) {
	out := new(GetReportResponse)
	if err := c.invoke(ctx, TrialService_GetReport_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// TrialServiceServer is the server API for TrialService.
type TrialServiceServer interface {
	Ingest(context.Context, *IngestRequest) (*IngestResponse, error)
	GenerateReport(context.Context, *GenerateReportRequest) (*GenerateReportResponse, error)
	ListFiles(context.Context, *ListFilesRequest) (*ListFilesResponse, error)
	GetFile(context.Context, *GetFileRequest) (*GetFileResponse, error)
	ListReports(context.Context, *ListReportsRequest) (*ListReportsResponse, error)
	GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error)
}

// UnimplementedTrialServiceServer can be embedded to have forward compatible implementations.
type UnimplementedTrialServiceServer struct{}

func (UnimplementedTrialServiceServer) Ingest(context.Context, *IngestRequest) (*IngestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ingest not implemented")
}
func (UnimplementedTrialServiceServer) GenerateReport(context.Context, *GenerateReportRequest) (*GenerateReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateReport not implemented")
}
func (UnimplementedTrialServiceServer) ListFiles(context.Context, *ListFilesRequest) (*ListFilesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFiles not implemented")
}
func (UnimplementedTrialServiceServer) GetFile(context.Context, *GetFileRequest) (*GetFileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFile not implemented")
}
func (UnimplementedTrialServiceServer) ListReports(context.Context, *ListReportsRequest) (*ListReportsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListReports not implemented")
}
func (UnimplementedTrialServiceServer) GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetReport not implemented")
}

func RegisterTrialServiceServer(s grpc.ServiceRegistrar, srv TrialServiceServer) {
	s.RegisterService(&TrialService_ServiceDesc, srv)
}

func _TrialService_Ingest_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(IngestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrialServiceServer).Ingest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TrialService_Ingest_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TrialServiceServer).Ingest(ctx, req.(*IngestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrialService_GenerateReport_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GenerateReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrialServiceServer).GenerateReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TrialService_GenerateReport_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TrialServiceServer).GenerateReport(ctx, req.(*GenerateReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrialService_ListFiles_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListFilesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrialServiceServer).ListFiles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TrialService_ListFiles_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TrialServiceServer).ListFiles(ctx, req.(*ListFilesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrialService_GetFile_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrialServiceServer).GetFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TrialService_GetFile_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TrialServiceServer).GetFile(ctx, req.(*GetFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrialService_ListReports_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListReportsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrialServiceServer).ListReports(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TrialService_ListReports_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TrialServiceServer).ListReports(ctx, req.(*ListReportsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrialService_GetReport_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrialServiceServer).GetReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TrialService_GetReport_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TrialServiceServer).GetReport(ctx, req.(*GetReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TrialService_ServiceDesc is the grpc.ServiceDesc for TrialService.
var TrialService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "trial.TrialService",
	HandlerType: (*TrialServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ingest", Handler: _TrialService_Ingest_Handler},
		{MethodName: "GenerateReport", Handler: _TrialService_GenerateReport_Handler},
		{MethodName: "ListFiles", Handler: _TrialService_ListFiles_Handler},
		{MethodName: "GetFile", Handler: _TrialService_GetFile_Handler},
		{MethodName: "ListReports", Handler: _TrialService_ListReports_Handler},
		{MethodName: "GetReport", Handler: _TrialService_GetReport_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/trial/trial.go",
}
