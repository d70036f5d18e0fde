package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RigelNana/arkclinic/pkg/metrics"
	grpcMetrics "github.com/RigelNana/arkclinic/pkg/metrics/grpc"
	"github.com/RigelNana/arkclinic/proto/trial"
	"github.com/RigelNana/arkclinic/services/trial-service/config"
	"github.com/RigelNana/arkclinic/services/trial-service/database"
	"github.com/RigelNana/arkclinic/services/trial-service/events"
	rpc "github.com/RigelNana/arkclinic/services/trial-service/handler/grpc"
	"github.com/RigelNana/arkclinic/services/trial-service/inference"
	"github.com/RigelNana/arkclinic/services/trial-service/repository"
	"github.com/RigelNana/arkclinic/services/trial-service/service"
	"github.com/RigelNana/arkclinic/services/trial-service/storage"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

type publisher interface {
	service.EventPublisher
	io.Closer
}

func newPublisher(cfg config.KafkaConfig, logger *logrus.Logger) publisher {
	if len(cfg.BrokerList()) == 0 {
		logger.Warn("KAFKA_BROKERS not set, pipeline events are disabled")
		return events.NoopPublisher{}
	}
	return events.NewKafkaPublisher(cfg)
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	metricsServer := metrics.StartMetricsServer(cfg.Metrics.Port)
	logger.Infof("Prometheus metrics server started on :%s", cfg.Metrics.Port)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialise database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Info("database connected")

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	blobs, err := storage.NewMinIOStore(cfg.MinIO)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	if err := blobs.EnsureBucket(startupCtx); err != nil {
		logger.Fatalf("%v", err)
	}

	llm, err := inference.New(startupCtx, cfg.Inference)
	if err != nil {
		logger.Fatalf("failed to initialise inference client: %v", err)
	}
	defer func() {
		if err := inference.Close(llm); err != nil {
			logger.WithError(err).Warn("failed to close inference client")
		}
	}()
	logger.WithFields(logrus.Fields{"provider": cfg.Inference.Provider, "timeout": cfg.Inference.Timeout}).Info("inference client ready")

	pub := newPublisher(cfg.Kafka, logger)
	defer pub.Close()

	svc := service.NewTrialService(
		repository.NewUploadedFileRepository(db),
		repository.NewGeneratedReportRepository(db),
		blobs,
		llm,
		logger,
		service.WithInferenceTimeout(cfg.Inference.Timeout),
		service.WithEventPublisher(pub),
	)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.GRPC.Port))
	if err != nil {
		logger.Fatalf("gRPC listen failed: %v", err)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMetrics.UnaryServerInterceptor("trial-service")),
		grpc.MaxRecvMsgSize(64<<20),
	)
	trial.RegisterTrialServiceServer(grpcServer, rpc.NewTrialRPCServer(svc, logger))

	go func() {
		logger.Infof("Trial gRPC server listening on %s", cfg.GRPC.Port)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatalf("gRPC serve failed: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("trial service shutting down")
	grpcServer.GracefulStop()

	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	_ = metricsServer.Shutdown(shutdownCtx)
}
