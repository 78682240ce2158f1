package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	genai "google.golang.org/genai"

	domai "github.com/bryanwahyu/authentiscan/internal/domain/ai"
	"github.com/bryanwahyu/authentiscan/internal/domain/verification"
	"github.com/bryanwahyu/authentiscan/internal/infra/ai/prompt"
)

const defaultModel = "gemini-2.5-flash"

// Client is a thin wrapper around the official genai client.
type Client struct {
	cli   *genai.Client
	model string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, domai.ErrAPIKeyInvalid
	}
	if model == "" {
		model = defaultModel
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Client{cli: cli, model: model}, nil
}

// VerifyImage sends the photo inline with the verification prompt and asks
// for application/json constrained by the result schema.
func (c *Client) VerifyImage(ctx context.Context, image verification.DataURI) (*verification.Result, error) {
	if !image.IsImage() {
		return nil, domai.ErrInvalidImageData
	}
	data, err := image.Data()
	if err != nil {
		return nil, errors.Join(domai.ErrInvalidImageData, err)
	}

	resp, err := c.cli.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: image.MIMEType(), Data: data}},
			{Text: prompt.VerifySystemPrompt()},
		}}},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   resultSchema(),
		},
	)
	if err != nil {
		return nil, classify(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, domai.ErrResponseInvalid
	}

	txt := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	res, err := verification.ParseResult([]byte(txt))
	if err != nil {
		return nil, errors.Join(domai.ErrResponseInvalid, err)
	}
	return res, nil
}

// Reply answers a single assistant prompt under the fixed persona
// instruction. No transcript is sent.
func (c *Client) Reply(ctx context.Context, userPrompt string) (string, error) {
	resp, err := c.cli.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: userPrompt}}}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: prompt.AssistantSystemPrompt()}}},
		},
	)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", domai.ErrResponseInvalid
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func resultSchema() *genai.Schema {
	detail := func() *genai.Schema {
		return &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":       {Type: genai.TypeString},
				"description": {Type: genai.TypeString},
				"isPositive":  {Type: genai.TypeBoolean},
			},
			Required: []string{"title", "description", "isPositive"},
		}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"isGenuine": {Type: genai.TypeBoolean},
			"confidenceScore": {
				Type:        genai.TypeInteger,
				Description: "A score from 0 to 100 indicating confidence in the verdict.",
			},
			"imageAnalysis":   detail(),
			"barcodeAnalysis": detail(),
			"textAnalysis":    detail(),
		},
		Required: []string{"isGenuine", "confidenceScore", "imageAnalysis", "barcodeAnalysis", "textAnalysis"},
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

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 401 || apiErr.Code == 403:
			return errors.Join(domai.ErrAPIKeyInvalid, err)
		case apiErr.Code == 429:
			return errors.Join(domai.ErrQuotaExceeded, err)
		case apiErr.Code == 400:
			return errors.Join(domai.ErrInvalidImageData, err)
		case apiErr.Code >= 500:
			return errors.Join(domai.ErrServiceUnavailable, err)
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key") || strings.Contains(msg, "API_KEY"):
		return errors.Join(domai.ErrAPIKeyInvalid, err)
	case strings.Contains(msg, "RESOURCE_EXHAUSTED") || strings.Contains(msg, "429"):
		return errors.Join(domai.ErrQuotaExceeded, err)
	case strings.Contains(msg, "INVALID_ARGUMENT") || strings.Contains(msg, "400"):
		return errors.Join(domai.ErrInvalidImageData, err)
	case strings.Contains(msg, "UNAVAILABLE") || strings.Contains(msg, "500") || strings.Contains(msg, "503") || strings.Contains(msg, "overloaded"):
		return errors.Join(domai.ErrServiceUnavailable, err)
	}
	return fmt.Errorf("gemini: request failed: %w", err)
}
