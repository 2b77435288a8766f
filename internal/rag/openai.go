package rag

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Generation settings for factual answers.
const (
	DefaultTemperature = 0.1
	DefaultMaxTokens   = 800
)

// OpenAI embeds with an embedding model and generates with a chat model.
type OpenAI struct {
	client         *openai.Client
	embeddingModel openai.EmbeddingModel
	chatModel      string
}

// NewOpenAI creates a client for the given models. Empty model names select
// text-embedding-ada-002 and gpt-3.5-turbo.
func NewOpenAI(apiKey, embeddingModel, chatModel string) *OpenAI {
	return NewOpenAIWithClient(openai.NewClient(apiKey), embeddingModel, chatModel)
}

// NewOpenAIWithClient uses an already configured client, for example one
// pointed at a different base URL.
func NewOpenAIWithClient(client *openai.Client, embeddingModel, chatModel string) *OpenAI {
	o := &OpenAI{
		client:         client,
		embeddingModel: openai.AdaEmbeddingV2,
		chatModel:      openai.GPT3Dot5Turbo,
	}
	if embeddingModel != "" {
		o.embeddingModel = openai.EmbeddingModel(embeddingModel)
	}
	if chatModel != "" {
		o.chatModel = chatModel
	}
	return o
}

// Embed returns the embedding of text.
func (o *OpenAI) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := o.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: o.embeddingModel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding: %w", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, ErrNoEmbedding
	}
	return resp.Data[0].Embedding, nil
}

// Generate sends prompt as a single user message.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoice
	}
	return resp.Choices[0].Message.Content, nil
}

// Validate checks the API key by listing models.
func (o *OpenAI) Validate(ctx context.Context) error {
	if _, err := o.client.ListModels(ctx); err != nil {
		return fmt.Errorf("invalid OpenAI credentials: %w", err)
	}
	return nil
}
