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

var _ ports.InsightService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiService implementa InsightService con la API REST de Google Gemini.
type GeminiService struct {
	apiKey string
	model  string
	opts   httpOptions
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.0-flash".
// Sin apiKey las llamadas devuelven error en lugar de fallar en el arranque.
func NewGeminiService(apiKey, model string, opts ...Option) *GeminiService {
	return &GeminiService{apiKey: apiKey, model: model, opts: buildOptions(geminiBaseURL, opts)}
}

// ── Estructuras de la API de Gemini ──────────────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// FinancialInsight pide a Gemini tres observaciones y una recomendación.
func (s *GeminiService) FinancialInsight(ctx context.Context, report dto.PnLReportDTO) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: financialPrompt(report)}}},
		},
		GenerationConfig: genConfig{Temperature: 0.4, MaxOutputTokens: 700},
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.opts.endpoint, s.model)
	raw, status, err := postJSON(ctx, s.opts.client, url, map[string]string{"x-goog-api-key": s.apiKey}, payload)
	if err != nil {
		return "", err
	}

	var resp geminiResponse
	jsonErr := json.Unmarshal(raw, &resp)
	if status != http.StatusOK {
		if jsonErr == nil && resp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", resp.Error.Code, resp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", status)
	}
	if jsonErr != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", jsonErr)
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("AI: Gemini devolvió respuesta vacía")
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", errors.New("AI: Gemini devolvió respuesta vacía")
	}
	return text, nil
}
