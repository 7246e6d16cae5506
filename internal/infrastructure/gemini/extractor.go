// Package gemini reads identity fields from document photos with Google's
// Gemini models.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
)

const defaultModel = "gemini-2.5-flash"

const prompt = `Extraia o nome completo, CPF e data de nascimento da imagem.
Responda com um objeto JSON com as chaves: "fullName", "cpf", e "dateOfBirth".
Formate o CPF como XXX.XXX.XXX-XX e a data de nascimento como AAAA-MM-DD.`

// Config captures the settings for the Gemini API.
type Config struct {
	APIKey string
	Model  string
}

// generator is the part of *genai.Models the extractor uses.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Extractor struct {
	models generator
	model  string
}

var _ ports.DocumentExtractor = (*Extractor)(nil)

// New returns an Extractor using the Gemini Developer API. A missing API key
// is an error; callers treat it as "extraction not configured".
func New(ctx context.Context, cfg Config) (*Extractor, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return newExtractor(client.Models, cfg), nil
}

func newExtractor(models generator, cfg Config) *Extractor {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Extractor{models: models, model: model}
}

// Extract sends the image and the prompt in a single request and decodes the
// JSON answer. Fields the model could not read come back empty. No timeout
// is added; the call lives as long as ctx.
func (x *Extractor) Extract(ctx context.Context, image []byte, mimeType string) (*domain.DocumentFields, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	result, err := x.models.GenerateContent(ctx, x.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return nil, errors.New("gemini: empty response")
	}

	var fields domain.DocumentFields
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	return &fields, nil
}

var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"fullName":    {Type: genai.TypeString},
		"cpf":         {Type: genai.TypeString, Description: "XXX.XXX.XXX-XX"},
		"dateOfBirth": {Type: genai.TypeString, Description: "AAAA-MM-DD"},
	},
}
