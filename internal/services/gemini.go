package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Embedder turns a text into a fixed-length vector. Deterministic for
// identical input per model configuration.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// CompletionClient sends one prompt to a language model. One attempt, no
// retry, no backoff. Transport and provider failures come back inside the
// CompletionResult instead of aborting the caller.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string, modelID string) CompletionResult
}

type GeminiService interface {
	Embedder
	CompletionClient
	Model() string
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	embedModel string
}

func NewGeminiService(apiKey, model, embedModel string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:     client,
		modelName:  model,
		embedModel: embedModel,
	}, nil
}

func (g *geminiService) Model() string {
	return g.modelName
}

// Embed implements Embedder.
func (g *geminiService) Embed(ctx context.Context, text string) ([]float32, error) {
	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// Complete implements CompletionClient.
func (g *geminiService) Complete(ctx context.Context, prompt string, modelID string) CompletionResult {
	if modelID == "" {
		modelID = g.modelName
	}

	temperature := float32(0.3)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, modelID, genai.Text(prompt), config)
	if err != nil {
		return CompletionResult{Err: fmt.Errorf("completion request failed: %w", err)}
	}

	if resp == nil {
		return CompletionResult{Err: fmt.Errorf("no response generated")}
	}

	text := resp.Text()
	if text == "" {
		return CompletionResult{Err: fmt.Errorf("no text content in response")}
	}

	return CompletionResult{Text: text}
}
