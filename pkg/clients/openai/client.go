package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"github.com/openai/openai-go/v3/shared/constant"

	"obra_api/pkg/config"
	"obra_api/pkg/metrics"
	"obra_api/pkg/prompts"
)

// Client is the generation gateway: one chat-completion provider serving
// both the persona conversation and the vision match. It holds no
// per-request state; concurrent use is safe.
type Client struct {
	client      openai.Client
	chatModel   string
	visionModel string
	maxTokens   int
	reg         *metrics.Registry
}

func isModelInList(model string, models []openai.Model) bool {
	for i := range models {
		if models[i].ID == model {
			return true
		}
	}
	return false
}

// NewClient constructs a gateway for the given credentials and models.
func NewClient(key, url, chatModel, visionModel string, maxTokens int, reg *metrics.Registry) (*Client, error) {
	if key == "" {
		return nil, errors.New("empty API key")
	}
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	client := openai.NewClient(option.WithAPIKey(key), option.WithBaseURL(url))

	// Test connectivity by listing models
	modelList, err := client.Models.List(context.Background())
	if err != nil {
		return nil, fmt.Errorf("connection test failed: %w", err)
	}
	for _, m := range []string{chatModel, visionModel} {
		if !isModelInList(m, modelList.Data) {
			return nil, fmt.Errorf("such model does not exists: %s", m)
		}
	}

	return &Client{
		client:      client,
		chatModel:   chatModel,
		visionModel: visionModel,
		maxTokens:   maxTokens,
		reg:         reg,
	}, nil
}

// NewFromConfig constructs a gateway from app config.
func NewFromConfig(cfg config.Config, reg *metrics.Registry) (*Client, error) {
	return NewClient(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.BaseURL,
		cfg.OpenAI.ChatModel,
		cfg.OpenAI.VisionModel,
		cfg.OpenAI.MaxTokens,
		reg,
	)
}

func toMessageParams(messages []prompts.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case prompts.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case prompts.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

// Complete sends the ordered message list to the chat model and returns the
// generated text, whitespace-trimmed. One synchronous call, no retries.
func (c *Client) Complete(ctx context.Context, messages []prompts.Message, temperature float64) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("empty message list")
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.chatModel),
		MaxTokens:   openai.Int(int64(c.maxTokens)),
		Temperature: openai.Float(temperature),
		Messages:    toMessageParams(messages),
	}

	response, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		c.count(ctx, "chat", "error")
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(response.Choices) == 0 {
		c.count(ctx, "chat", "error")
		return "", errors.New("openai returned no choices")
	}

	c.count(ctx, "chat", "ok")
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

// CompleteVision sends the system/user prompt pair plus one inline image to
// the vision model, constrained to JSON-object output. Returns the raw reply
// with fences and surrounding whitespace stripped; parsing is the caller's
// concern.
func (c *Client) CompleteVision(ctx context.Context, system, user string, image []byte, temperature float64) (string, error) {
	if len(image) == 0 {
		return "", errors.New("empty image data")
	}

	var jsonFmt constant.JSONObject
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.visionModel),
		MaxTokens:   openai.Int(int64(c.maxTokens)),
		Temperature: openai.Float(temperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{
				Type: jsonFmt.Default(),
			},
		},
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(system),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfArrayOfContentParts: []openai.ChatCompletionContentPartUnionParam{
							{OfText: &openai.ChatCompletionContentPartTextParam{
								Text: user,
							}},
							{OfImageURL: &openai.ChatCompletionContentPartImageParam{
								ImageURL: openai.ChatCompletionContentPartImageImageURLParam{
									URL:    dataURL(image),
									Detail: "auto",
								},
							}},
						},
					},
				},
			},
		},
	}

	response, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		c.count(ctx, "match", "error")
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(response.Choices) == 0 {
		c.count(ctx, "match", "error")
		return "", errors.New("openai returned no choices")
	}

	c.count(ctx, "match", "ok")
	return strings.TrimSpace(trimFences(response.Choices[0].Message.Content)), nil
}

func (c *Client) count(ctx context.Context, op, outcome string) {
	if c.reg != nil {
		c.reg.Inc(ctx, "generation_requests_total", map[string]string{"op": op, "outcome": outcome}, 1)
	}
}

// dataURL encodes image bytes as an inline data URL, sniffing the MIME type
// from the payload itself.
func dataURL(image []byte) string {
	mime := http.DetectContentType(image)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(image)
}

// trimFences strips a markdown code fence some models wrap JSON replies in.
func trimFences(message string) string {
	message = strings.TrimSpace(message)
	message = strings.TrimPrefix(message, "```json\n")
	message = strings.TrimSuffix(message, "\n```")
	return message
}
