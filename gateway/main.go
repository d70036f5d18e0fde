package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RigelNana/arkclinic/gateway/config"
	"github.com/RigelNana/arkclinic/gateway/handler"
	"github.com/RigelNana/arkclinic/gateway/middleware"
	"github.com/RigelNana/arkclinic/gateway/router"
	"github.com/RigelNana/arkclinic/pkg/metrics"
	grpcMetrics "github.com/RigelNana/arkclinic/pkg/metrics/grpc"
	"github.com/RigelNana/arkclinic/proto/trial"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	issueFor := flag.String("issue-token", "", "print a 24h bearer token for the given user uuid and exit")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if *issueFor != "" {
		userID, err := uuid.Parse(*issueFor)
		if err != nil {
			logger.Fatalf("invalid user id: %v", err)
		}
		token, err := middleware.IssueToken([]byte(cfg.JWTSecret), userID, 24*time.Hour)
		if err != nil {
			logger.Fatalf("failed to sign token: %v", err)
		}
		fmt.Println(token)
		return
	}

	metricsServer := metrics.StartMetricsServer(cfg.MetricsPort)

	conn, err := grpc.NewClient(cfg.TrialGRPCAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(grpcMetrics.UnaryClientInterceptor("gateway")),
		grpc.WithDefaultCallOptions(grpc.MaxCallSendMsgSize(64<<20)),
	)
	if err != nil {
		logger.Fatalf("failed to dial trial-service: %v", err)
	}
	defer conn.Close()

	trialHandler := handler.NewTrialHandler(trial.NewTrialServiceClient(conn), logger, cfg.MaxUploadBytes(), cfg.RequestTimeout)
	r := router.Setup(trialHandler, middleware.JWTAuth([]byte(cfg.JWTSecret)))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      cfg.RequestTimeout + 30*time.Second,
	}
	go func() {
		logger.Infof("Gateway listening on %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("gateway failed: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("gateway shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	_ = metricsServer.Shutdown(ctx)
}
