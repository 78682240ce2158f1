package openai

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/sashabaranov/go-openai"

	domai "github.com/bryanwahyu/authentiscan/internal/domain/ai"
	"github.com/bryanwahyu/authentiscan/internal/domain/verification"
	"github.com/bryanwahyu/authentiscan/internal/infra/ai/prompt"
)

const maxTokens = 2048

type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, domai.ErrAPIKeyInvalid
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Client{Client: openai.NewClient(apiKey), Model: model}, nil
}

// VerifyImage sends the data-URI photo as a vision content part and asks for
// a JSON object matching the verification schema.
func (c *Client) VerifyImage(ctx context.Context, image verification.DataURI) (*verification.Result, error) {
	if !image.IsImage() {
		return nil, domai.ErrInvalidImageData
	}

	req := openai.ChatCompletionRequest{
		Model: c.Model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.VerifySystemPrompt()},
			{Role: openai.ChatMessageRoleUser, MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: "Analyze this product photo and respond with the JSON per schema."},
				{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{
					URL:    string(image),
					Detail: openai.ImageURLDetailAuto,
				}},
			}},
		},
	}
	c.applyTokenLimit(&req)

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, classify(err)
	}
	if len(resp.Choices) == 0 {
		return nil, domai.ErrResponseInvalid
	}

	res, err := verification.ParseResult([]byte(resp.Choices[0].Message.Content))
	if err != nil {
		return nil, errors.Join(domai.ErrResponseInvalid, err)
	}
	return res, nil
}

// Reply answers a single assistant prompt under the fixed persona
// instruction.
func (c *Client) Reply(ctx context.Context, userPrompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.AssistantSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	}
	c.applyTokenLimit(&req)

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", domai.ErrResponseInvalid
	}
	return resp.Choices[0].Message.Content, nil
}

// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
func (c *Client) applyTokenLimit(req *openai.ChatCompletionRequest) {
	model := req.Model
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}
}

// classify maps provider failures onto the domain taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(domai.ErrServiceUnavailable, err)
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return errors.Join(domai.ErrNetwork, err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 401 || apiErr.HTTPStatusCode == 403:
			return errors.Join(domai.ErrAPIKeyInvalid, err)
		case apiErr.HTTPStatusCode == 429:
			return errors.Join(domai.ErrQuotaExceeded, err)
		case apiErr.HTTPStatusCode == 400 || apiErr.HTTPStatusCode == 415:
			return errors.Join(domai.ErrInvalidImageData, err)
		case apiErr.HTTPStatusCode >= 500:
			return errors.Join(domai.ErrServiceUnavailable, err)
		}
	}
	return err
}
