package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"planfit/pkg/config"
	"planfit/pkg/logger"
)

const (
	defaultMaxTokens   = 500
	defaultTemperature = 0.7
)

var ErrEmptyCompletion = errors.New("model returned no choices")

// Completer is the narrow surface the domain services program against.
// Complete is stateless; Chat threads the user's recent exchanges into
// the request so multi-message flows keep their context.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Chat(ctx context.Context, userID int64, system, user string) (string, error)
}

type openAIClient struct {
	client *openai.Client
	model  string
	memory *ConversationMemory
	log    *logger.Logger
}

func NewClient(cfg *config.Config) Completer {
	return &openAIClient{
		client: openai.NewClient(cfg.OpenAIAPIKey),
		model:  cfg.OpenAIModel,
		memory: NewConversationMemory(),
		log:    cfg.Log,
	}
}

func (c *openAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: user},
	}
	return c.request(ctx, messages)
}

func (c *openAIClient) Chat(ctx context.Context, userID int64, system, user string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2+2*historyLimit)
	messages = append(messages, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleSystem, Content: system,
	})
	for _, ex := range c.memory.History(userID) {
		messages = append(messages,
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: ex.Prompt},
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: ex.Reply},
		)
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: user,
	})

	reply, err := c.request(ctx, messages)
	if err != nil {
		return "", err
	}
	c.memory.Append(userID, Exchange{Prompt: user, Reply: reply})
	return reply, nil
}

func (c *openAIClient) request(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		c.log.Error("Chat completion request failed", "model", c.model, "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
