package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for theme generation.
const DefaultModel = "gemini-3-flash-preview"

// Compile-time interface verification.
var _ GenerativeClient = (*Client)(nil)

// Client is a GenerativeClient backed by the genai SDK.
type Client struct {
	client *genai.Client
}

// NewClient creates a new Client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &Client{client: client}, nil
}

// GenerateContent sends one request and returns the text of the first candidate.
func (c *Client) GenerateContent(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error) {
	in := make([]*genai.Content, len(contents))
	for i, content := range contents {
		in[i] = GenaiContent(content)
	}

	result, err := c.client.Models.GenerateContent(ctx, model, in, GenaiConfig(config))
	if err != nil {
		return nil, FromGenaiError(err)
	}

	resp := &GenerateContentResponse{Text: result.Text()}
	if len(result.Candidates) > 0 {
		resp.FinishReason = string(result.Candidates[0].FinishReason)
	}
	return resp, nil
}

// GenaiContent converts a text-only message. A nil message converts to nil.
func GenaiContent(c *Content) *genai.Content {
	if c == nil {
		return nil
	}
	parts := make([]*genai.Part, len(c.Parts))
	for i, p := range c.Parts {
		parts[i] = genai.NewPartFromText(p.Text)
	}
	return &genai.Content{Parts: parts}
}

// GenaiConfig converts request settings. A nil config converts to nil.
func GenaiConfig(cfg *GenerateContentConfig) *genai.GenerateContentConfig {
	if cfg == nil {
		return nil
	}
	return &genai.GenerateContentConfig{
		SystemInstruction: GenaiContent(cfg.SystemInstruction),
		Temperature:       cfg.Temperature,
		ResponseMIMEType:  cfg.ResponseMIMEType,
		ResponseSchema:    GenaiSchema(cfg.ResponseSchema),
	}
}

// GenaiSchema converts a response schema. genai spells types in upper case
// ("OBJECT", "STRING").
func GenaiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:             genai.Type(strings.ToUpper(s.Type)),
		Description:      s.Description,
		Format:           s.Format,
		Pattern:          s.Pattern,
		Enum:             s.Enum,
		Required:         s.Required,
		PropertyOrdering: s.PropertyOrdering,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = GenaiSchema(prop)
		}
	}
	return out
}

// FromGenaiError turns a genai API error into an *APIError so the generator
// can tell temporary failures apart. Other errors are returned unchanged.
func FromGenaiError(err error) error {
	// genai returns APIError by value.
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	return NewAPIError(apiErr.Code, fmt.Sprintf("gemini: API error (HTTP %d): %s", apiErr.Code, apiErr.Message))
}
