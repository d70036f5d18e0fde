package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string        `mapstructure:"port"`
	TrialGRPCAddr  string        `mapstructure:"trial_grpc_addr"`
	JWTSecret      string        `mapstructure:"jwt_secret"`
	MetricsPort    string        `mapstructure:"metrics_port"`
	MaxUploadMB    int64         `mapstructure:"max_upload_mb"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	LogLevel       string        `mapstructure:"log_level"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("trial_grpc_addr", "localhost:50060")
	v.SetDefault("metrics_port", "2114")
	v.SetDefault("max_upload_mb", 32)
	// report generation waits on the inference call, so this stays above its timeout
	v.SetDefault("request_timeout", 90*time.Second)
	v.SetDefault("log_level", "info")

	_ = v.BindEnv("port", "GATEWAY_PORT")
	_ = v.BindEnv("trial_grpc_addr", "TRIAL_GRPC_ADDR")
	_ = v.BindEnv("jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("metrics_port", "METRICS_PORT")
	_ = v.BindEnv("max_upload_mb", "MAX_UPLOAD_MB")
	_ = v.BindEnv("request_timeout", "REQUEST_TIMEOUT")
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	return cfg, nil
}

func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
