package assistant

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"insiderdm/internal/config"
)

const systemPrompt = "You are a helpful assistant replying inside a direct-message conversation. " +
	"Answer the most recent user message, using the earlier messages as context. Keep replies concise."

// OpenAIProvider backs the responder with an OpenAI-compatible completion
// endpoint.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(cfg *config.Config) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(cfg.Assistant.APIKey)
	if cfg.Assistant.BaseURL != "" {
		clientConfig.BaseURL = cfg.Assistant.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Assistant.Model,
	}
}

var _ CompletionProvider = (*OpenAIProvider)(nil)

func (p *OpenAIProvider) Complete(ctx context.Context, turns []ChatTurn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, turn := range turns {
		role := openai.ChatMessageRoleUser
		if turn.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    p.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty completion response")
	}

	return resp.Choices[0].Message.Content, nil
}
