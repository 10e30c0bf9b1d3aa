package llm

import (
	"context"

	"github.com/moeez1234567/Job-descriptor/internal/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
)

// Params are the tunables handed to the backend for one generation.
type Params struct {
	Temperature float64
	MaxTokens   int
}

// ParamsFor derives generation parameters from the requested output length.
// Temperature stays fixed; only the token budget scales.
func ParamsFor(pref models.LengthPreference) Params {
	p := Params{Temperature: 0.5, MaxTokens: 1024}
	switch pref {
	case models.LengthConcise:
		p.MaxTokens = 512
	case models.LengthDetailed:
		p.MaxTokens = 2048
	}
	return p
}

// Generator is the capability interface over the text-generation backend.
// Tests substitute it with deterministic stubs.
type Generator interface {
	Generate(ctx context.Context, prompt string, params Params) (string, error)
}

// langChainGenerator adapts any langchaingo model to the Generator interface.
type langChainGenerator struct {
	model llms.Model
}

// NewGemini builds a Google Gemini backed generator.
func NewGemini(ctx context.Context, apiKey, model string) (Generator, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, err
	}
	return &langChainGenerator{model: llm}, nil
}

// NewOllama builds a local Ollama backed generator.
func NewOllama(serverURL, model string) (Generator, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
	)
	if err != nil {
		return nil, err
	}
	return &langChainGenerator{model: llm}, nil
}

func (g *langChainGenerator) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.model, prompt,
		llms.WithTemperature(params.Temperature),
		llms.WithMaxTokens(params.MaxTokens),
	)
}
