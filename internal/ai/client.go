package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

type Client struct {
	client *openai.Client
	model  string
}

func New(apiKey, baseURL, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

const suggestPrompt = `You help users of a reminder bot. The bot only understands this command:

/addReminder remind <message> every <days> <time>

Days are lowercase English weekday names (sunday..saturday, several allowed), the time looks like 8pm or 11am. Current time: %s.

Rewrite the user's message as a single /addReminder command. Reply with the command only, no explanations. If the message is not about a recurring reminder, reply with exactly: NONE`

// SuggestCommand rewrites free text into a /addReminder command the user
// can send back.
func (c *Client) SuggestCommand(ctx context.Context, text string, now time.Time) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(suggestPrompt, now.Format("Monday 15:04")),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}

	suggestion := strings.TrimSpace(resp.Choices[0].Message.Content)
	if suggestion == "" || suggestion == "NONE" || !strings.HasPrefix(suggestion, "/addReminder") {
		return "", errors.New("no usable suggestion")
	}
	return suggestion, nil
}
