package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RigelNana/arkclinic/pkg/metrics"
	"github.com/RigelNana/arkclinic/services/trial-service/config"
	"github.com/RigelNana/arkclinic/services/trial-service/models"
	"github.com/segmentio/kafka-go"
)

const serviceName = "trial-service"

// Events are written one at a time on the request path, so a batch is
// flushed after 10ms instead of the writer's 1s default.
const batchTimeout = 10 * time.Millisecond

type FileProcessed struct {
	FileID      string    `json:"file_id"`
	UserID      string    `json:"user_id"`
	Filename    string    `json:"filename"`
	FileType    string    `json:"file_type"`
	FilePath    string    `json:"file_path"`
	Status      string    `json:"status"`
	ProcessedAt time.Time `json:"processed_at"`
}

type ReportGenerated struct {
	ReportID       string    `json:"report_id"`
	UserID         string    `json:"user_id"`
	ReportType     string    `json:"report_type"`
	Title          string    `json:"title"`
	FileReferences []string  `json:"file_references"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// FileProcessedMessage keys the message by file id so that every event for
// one file lands on the same partition.
func FileProcessedMessage(topic string, f *models.UploadedFile) (kafka.Message, error) {
	payload, err := json.Marshal(FileProcessed{
		FileID:      f.ID.String(),
		UserID:      f.UserID.String(),
		Filename:    f.Filename,
		FileType:    f.FileType,
		FilePath:    f.FilePath,
		Status:      string(f.ProcessingStatus),
		ProcessedAt: f.UpdatedAt,
	})
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{Topic: topic, Key: []byte(f.ID.String()), Value: payload}, nil
}

func ReportGeneratedMessage(topic string, r *models.GeneratedReport) (kafka.Message, error) {
	payload, err := json.Marshal(ReportGenerated{
		ReportID:       r.ID.String(),
		UserID:         r.UserID.String(),
		ReportType:     string(r.ReportType),
		Title:          r.Title,
		FileReferences: []string(r.FileReferences),
		GeneratedAt:    r.GeneratedDate,
	})
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{Topic: topic, Key: []byte(r.UserID.String()), Value: payload}, nil
}

type KafkaPublisher struct {
	writer      *kafka.Writer
	fileTopic   string
	reportTopic string
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.BrokerList()...),
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           batchTimeout,
			AllowAutoTopicCreation: true,
		},
		fileTopic:   cfg.FileProcessedTopic,
		reportTopic: cfg.ReportGeneratedTopic,
	}
}

func (p *KafkaPublisher) PublishFileProcessed(ctx context.Context, f *models.UploadedFile) error {
	msg, err := FileProcessedMessage(p.fileTopic, f)
	if err != nil {
		return fmt.Errorf("encode file event: %w", err)
	}
	return p.write(ctx, msg)
}

func (p *KafkaPublisher) PublishReportGenerated(ctx context.Context, r *models.GeneratedReport) error {
	msg, err := ReportGeneratedMessage(p.reportTopic, r)
	if err != nil {
		return fmt.Errorf("encode report event: %w", err)
	}
	return p.write(ctx, msg)
}

func (p *KafkaPublisher) write(ctx context.Context, msg kafka.Message) error {
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.RecordKafkaMessage(serviceName, msg.Topic, "error")
		return fmt.Errorf("failed to write message to %s: %w", msg.Topic, err)
	}
	metrics.RecordKafkaMessage(serviceName, msg.Topic, "success")
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishFileProcessed(context.Context, *models.UploadedFile) error { return nil }
func (NoopPublisher) PublishReportGenerated(context.Context, *models.GeneratedReport) error { return nil }
func (NoopPublisher) Close() error { return nil }
