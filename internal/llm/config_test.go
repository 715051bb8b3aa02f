package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.NotEmpty(t, cfg.GetModel(TierLite))
	assert.NotEmpty(t, cfg.GetModel(TierStandard))
}

func TestGetModelFallback(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierStandard: "gemini-2.5-flash"},
	}
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierLite))

	empty := &Config{Provider: ProviderGemini}
	assert.Empty(t, empty.GetModel(TierStandard))
}

func TestWithModelDoesNotMutate(t *testing.T) {
	cfg := DefaultConfig()
	original := cfg.GetModel(TierLite)

	modified := cfg.WithModel(TierLite, "gemini-experimental")
	assert.Equal(t, "gemini-experimental", modified.GetModel(TierLite))
	assert.Equal(t, original, cfg.GetModel(TierLite))
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONBlock(`{"a":1}`))
}
