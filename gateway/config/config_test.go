package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TRIAL_GRPC_ADDR", "trial:50060")
	t.Setenv("MAX_UPLOAD_MB", "8")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "trial:50060", cfg.TrialGRPCAddr)
	assert.Equal(t, int64(8<<20), cfg.MaxUploadBytes())
	assert.Equal(t, 90*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "JWT_SECRET")
}
