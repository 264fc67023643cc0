package llm

import (
	"context"
	"errors"
	"strings"

	"vaif_quotes/internal/usecase/interfaces"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var (
	ErrMissingAPIKey = errors.New("missing GEMINI_API_KEY")
	ErrEmptyResponse = errors.New("empty model response")
)

// GeminiClient implements ILanguageModel over the Gemini API.
type GeminiClient struct {
	cli   *genai.Client
	model string
	log   *zap.Logger
}

var _ interfaces.ILanguageModel = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, apiKey, model string, log *zap.Logger) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	log.Info("[llm][gemini] client initialized", zap.String("model", model))
	return &GeminiClient{cli: cli, model: model, log: log}, nil
}

func (g *GeminiClient) Complete(ctx context.Context, req interfaces.CompletionRequest) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(req.UserPrompt, genai.RoleUser)},
		generateConfig(req),
	)
	if err != nil {
		g.log.Warn("[llm][gemini] generate failed", zap.String("model", g.model), zap.Error(err))
		return "", err
	}
	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	if resp.UsageMetadata != nil {
		g.log.Debug("[llm][gemini] generate done",
			zap.String("model", g.model),
			zap.Int32("prompt_tokens", resp.UsageMetadata.PromptTokenCount),
			zap.Int32("output_tokens", resp.UsageMetadata.CandidatesTokenCount))
	}
	return text, nil
}

func generateConfig(req interfaces.CompletionRequest) *genai.GenerateContentConfig {
	temperature := req.Temperature
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: req.MaxTokens,
	}
	if req.SystemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}
	if req.JSONMode {
		cfg.ResponseMIMEType = "application/json"
	}
	return cfg
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil && !p.Thought {
			b.WriteString(p.Text)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}
