package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/SuyashJain1994/Contract-Analyzer/config"
	"github.com/SuyashJain1994/Contract-Analyzer/model"
	"github.com/SuyashJain1994/Contract-Analyzer/pkg/apperrors"
)

const (
	analysisSystemPrompt = "You are an expert legal contract analyzer. Always respond with valid JSON."
	analysisTimeout      = 60 * time.Second
	analysisMaxTokens    = 4000
	analysisTemperature  = 0.1
)

// Analyzer sends contract text to the OpenAI API and returns structured
// analysis results
type Analyzer struct {
	client openai.Client
	model  string
	apiKey string
}

func NewAnalyzer(cfg *config.OpenAIConfig) *Analyzer {
	if cfg.APIKey == "" {
		slog.Warn("OpenAI API key not configured, AI analysis will not work")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(analysisTimeout),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Analyzer{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		apiKey: cfg.APIKey,
	}
}

// AnalyzeContract analyzes contract text with a single model call. Remote
// failures of any kind surface uniformly as RemoteUnavailable; a malformed
// model reply is absorbed by the normalizer's fallback and never fails.
func (a *Analyzer) AnalyzeContract(ctx context.Context, text string, contractType model.ContractType, depth model.AnalysisDepth, filename string) (*model.AnalysisResult, error) {
	if a.apiKey == "" {
		return nil, apperrors.RemoteUnavailable(nil, "AI analysis not available: OpenAI API key not configured")
	}

	prompt, truncated := BuildAnalysisPrompt(text, contractType, depth)
	if truncated {
		slog.Info("contract text truncated for analysis",
			"filename", filename,
			"limit", promptTextLimit,
		)
	}

	raw, err := a.complete(ctx, prompt)
	if err != nil {
		slog.Error("OpenAI API error", "filename", filename, "error", err)
		return nil, apperrors.RemoteUnavailable(err, fmt.Sprintf("AI service unavailable: %v", err))
	}

	fields := parseAnalysisResponse(raw)

	return &model.AnalysisResult{
		ID:                uuid.New().String(),
		Filename:          filename,
		ContractType:      contractType,
		AnalysisDepth:     depth,
		CreatedAt:         time.Now(),
		Summary:           fields.Summary,
		KeyTerms:          fields.KeyTerms,
		Risks:             fields.Risks,
		Insights:          fields.Insights,
		ComplianceScore:   fields.ComplianceScore,
		OverallRiskScore:  fields.OverallRiskScore,
		NegotiationPoints: fields.NegotiationPoints,
		MissingClauses:    fields.MissingClauses,
		Improvements:      fields.Improvements,
	}, nil
}

func (a *Analyzer) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(analysisSystemPrompt),
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(analysisMaxTokens),
		Temperature: openai.Float(analysisTemperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
