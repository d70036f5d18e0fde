package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Inference InferenceConfig `mapstructure:"inference"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	GRPC      GRPCConfig      `mapstructure:"grpc"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Log       LogConfig       `mapstructure:"log"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	TimeZone string `mapstructure:"timezone"`
}

type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key"`
	SecretAccessKey string `mapstructure:"secret_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	BucketName      string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
}

// InferenceConfig selects and configures the text generation provider.
// Provider is "openai" (any OpenAI-compatible endpoint) or "gemini".
type InferenceConfig struct {
	Provider    string        `mapstructure:"provider"`
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"`
	GeminiKey   string        `mapstructure:"gemini_api_key"`
	GeminiModel string        `mapstructure:"gemini_model"`
}

type KafkaConfig struct {
	Brokers              string `mapstructure:"brokers"`
	FileProcessedTopic   string `mapstructure:"file_processed_topic"`
	ReportGeneratedTopic string `mapstructure:"report_generated_topic"`
}

type GRPCConfig struct {
	Port string `mapstructure:"port"`
}

type MetricsConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments inject plain environment variables
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("grpc.port", "50060")
	v.SetDefault("metrics.port", "2113")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("minio.bucket", "clinical-files")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("inference.provider", "openai")
	v.SetDefault("inference.model", "gpt-4o-mini")
	v.SetDefault("inference.timeout", 60*time.Second)
	v.SetDefault("inference.gemini_model", "gemini-1.5-flash")
	v.SetDefault("kafka.file_processed_topic", "trial.file.processed")
	v.SetDefault("kafka.report_generated_topic", "trial.report.generated")

	bindings := map[string]string{
		"grpc.port":                    "TRIAL_GRPC_PORT",
		"metrics.port":                 "METRICS_PORT",
		"log.level":                    "LOG_LEVEL",
		"database.host":                "DB_HOST",
		"database.port":                "DB_PORT",
		"database.user":                "DB_USER",
		"database.password":            "DB_PASSWORD",
		"database.dbname":              "DB_NAME",
		"database.sslmode":             "DB_SSLMODE",
		"database.timezone":            "DB_TIMEZONE",
		"minio.endpoint":               "MINIO_ENDPOINT",
		"minio.access_key":             "MINIO_ACCESS_KEY",
		"minio.secret_key":             "MINIO_SECRET_KEY",
		"minio.use_ssl":                "MINIO_USE_SSL",
		"minio.bucket":                 "MINIO_BUCKET_NAME",
		"minio.region":                 "MINIO_REGION",
		"inference.provider":           "INFERENCE_PROVIDER",
		"inference.api_key":            "OPENAI_API_KEY",
		"inference.base_url":           "OPENAI_BASE_URL",
		"inference.model":              "OPENAI_MODEL",
		"inference.timeout":            "INFERENCE_TIMEOUT",
		"inference.gemini_api_key":     "GEMINI_API_KEY",
		"inference.gemini_model":       "GEMINI_MODEL",
		"kafka.brokers":                "KAFKA_BROKERS",
		"kafka.file_processed_topic":   "KAFKA_FILE_PROCESSED_TOPIC",
		"kafka.report_generated_topic": "KAFKA_REPORT_GENERATED_TOPIC",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Inference.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("INFERENCE_PROVIDER: unsupported provider %q (openai, gemini)", c.Inference.Provider)
	}
	if c.Inference.Timeout <= 0 {
		return fmt.Errorf("INFERENCE_TIMEOUT: must be positive, got %s", c.Inference.Timeout)
	}
	if c.MinIO.BucketName == "" {
		return fmt.Errorf("MINIO_BUCKET_NAME is required")
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode, c.TimeZone)
}

// BrokerList splits the comma separated KAFKA_BROKERS value.
func (c *KafkaConfig) BrokerList() []string {
	var out []string
	for _, p := range strings.Split(c.Brokers, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
