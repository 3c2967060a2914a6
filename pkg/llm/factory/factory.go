package factory

import (
	"fmt"

	"legal-assistant-be/pkg/llm"
	"legal-assistant-be/pkg/llm/gemini"
	"legal-assistant-be/pkg/llm/ollama"
)

func NewProvider(providerType, modelName, geminiAPIKey, ollamaBaseURL string) (llm.Provider, error) {
	switch providerType {
	case "gemini":
		if geminiAPIKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewGeminiProvider(geminiAPIKey, modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
