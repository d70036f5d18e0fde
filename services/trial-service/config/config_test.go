package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("INFERENCE_PROVIDER", "")
	t.Setenv("INFERENCE_TIMEOUT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "50060", cfg.GRPC.Port)
	assert.Equal(t, "openai", cfg.Inference.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Inference.Model)
	assert.Equal(t, 60*time.Second, cfg.Inference.Timeout)
	assert.Equal(t, "clinical-files", cfg.MinIO.BucketName)
	assert.Equal(t, "trial.file.processed", cfg.Kafka.FileProcessedTopic)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "trial")
	t.Setenv("DB_NAME", "trials")
	t.Setenv("INFERENCE_PROVIDER", "gemini")
	t.Setenv("INFERENCE_TIMEOUT", "90s")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "gemini", cfg.Inference.Provider)
	assert.Equal(t, 90*time.Second, cfg.Inference.Timeout)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.BrokerList())
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
	assert.Contains(t, cfg.Database.DSN(), "dbname=trials")
}

func TestLoadConfig_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("INFERENCE_PROVIDER", "markov")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INFERENCE_PROVIDER")
}

func TestKafkaConfig_BrokerListEmpty(t *testing.T) {
	k := KafkaConfig{Brokers: " , "}
	assert.Nil(t, k.BrokerList())
}
