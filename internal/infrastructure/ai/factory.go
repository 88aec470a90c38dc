package ai

import (
	"fmt"

	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/pkg/config"
)

// Proveedores soportados en AI_PROVIDER.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// NewInsightService elige el adaptador según la configuración.
func NewInsightService(cfg config.AIConfig) (ports.InsightService, error) {
	switch cfg.Provider {
	case ProviderGemini, "":
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	case ProviderAnthropic:
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	default:
		return nil, fmt.Errorf("AI_PROVIDER desconocido: %q (gemini|anthropic)", cfg.Provider)
	}
}
