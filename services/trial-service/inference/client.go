// Package inference wraps the external text generation providers behind
// a single call: system instruction plus user content in, text out.
package inference

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/RigelNana/arkclinic/pkg/metrics"
	"github.com/RigelNana/arkclinic/services/trial-service/config"
)

var ErrEmptyResponse = errors.New("inference returned no content")

type Client interface {
	Infer(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// New picks the provider named in cfg.Provider.
func New(ctx context.Context, cfg config.InferenceConfig) (Client, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case "gemini":
		return NewGeminiClient(ctx, cfg.GeminiKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown inference provider %q", cfg.Provider)
	}
}

// Close releases provider connections held by c, if any.
func Close(c Client) error {
	if closer, ok := c.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func observe(provider string, start time.Time, err error) {
	outcome := "success"
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		outcome = "timeout"
	case err != nil:
		outcome = "error"
	}
	metrics.RecordInference(provider, outcome, time.Since(start))
}
