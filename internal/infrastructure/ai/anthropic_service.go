package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/ports"
)

var _ ports.InsightService = (*AnthropicService)(nil)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1"
	anthropicVersion = "2023-06-01"
)

// AnthropicService implementa InsightService con la API Messages de Anthropic.
type AnthropicService struct {
	apiKey string
	model  string
	opts   httpOptions
}

// NewAnthropicService construye el adaptador.
func NewAnthropicService(apiKey, model string, opts ...Option) *AnthropicService {
	return &AnthropicService{apiKey: apiKey, model: model, opts: buildOptions(anthropicBaseURL, opts)}
}

// ── Protocolo Messages API ───────────────────────────────────────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// FinancialInsight envía el estado de resultados a Claude.
func (s *AnthropicService) FinancialInsight(ctx context.Context, report dto.PnLReportDTO) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    systemPrompt,
		Messages:  []anthropicMessage{{Role: "user", Content: financialPrompt(report)}},
	}
	headers := map[string]string{
		"x-api-key":         s.apiKey,
		"anthropic-version": anthropicVersion,
	}
	raw, status, err := postJSON(ctx, s.opts.client, s.opts.endpoint+"/messages", headers, payload)
	if err != nil {
		return "", err
	}

	var resp anthropicResponse
	jsonErr := json.Unmarshal(raw, &resp)
	if status != http.StatusOK {
		if jsonErr == nil && resp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", resp.Error.Type, resp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d", status)
	}
	if jsonErr != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", jsonErr)
	}

	var b strings.Builder
	for _, c := range resp.Content {
		if c.Type == "text" {
			b.WriteString(c.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", errors.New("AI: Claude devolvió respuesta vacía")
	}
	return text, nil
}
