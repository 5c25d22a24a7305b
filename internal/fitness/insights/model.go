package insights

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
)

var ErrEmptyResponse = errors.New("model returned no content")

// GeminiModel runs prompts against the Gemini API, one generative model per call.
type GeminiModel struct {
	client      *genai.Client
	temperature float32
	maxTokens   int32
}

func NewGeminiModel(ctx context.Context, apiKey string, temperature float32, maxTokens int32) (*GeminiModel, error) {
	tracedHttpClient := &http.Client{
		Transport: &transport.APIKey{
			Key:       apiKey,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	client, err := genai.NewClient(ctx, option.WithHTTPClient(tracedHttpClient))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiModel{
		client:      client,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

func (m *GeminiModel) Generate(ctx context.Context, modelName, prompt string) (string, error) {
	model := m.client.GenerativeModel(modelName)
	model.SetTemperature(m.temperature)
	model.SetMaxOutputTokens(m.maxTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

func (m *GeminiModel) Close() error {
	return m.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
