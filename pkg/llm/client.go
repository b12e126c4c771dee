package llm

import (
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// NewClient builds an OpenAI-compatible client for the given endpoint.
// An empty key is replaced with a placeholder so local endpoints that
// ignore authentication still work.
func NewClient(apiKey, apiURL, timeout string) *openai.Client {
	if apiKey == "" {
		apiKey = "sk-xxx"
	}
	config := openai.DefaultConfig(apiKey)
	if apiURL != "" {
		config.BaseURL = apiURL
	}

	dur, err := time.ParseDuration(timeout)
	if err != nil {
		dur = 150 * time.Second
	}
	config.HTTPClient = &http.Client{
		Timeout: dur,
	}

	return openai.NewClientWithConfig(config)
}
