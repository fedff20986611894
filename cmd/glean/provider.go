package main

import (
	"context"

	"github.com/akashbommisetty/glean/internal/config"
	"github.com/akashbommisetty/glean/internal/embedding"
)

// newEmbeddingProvider builds the Ollama provider, applying global config
// overrides for URL, model, and dimensions.
func newEmbeddingProvider() *embedding.OllamaProvider {
	cfg, _ := config.LoadGlobalConfig()

	var opts []embedding.OllamaOption
	if cfg.OllamaURL != "" {
		opts = append(opts, embedding.WithBaseURL(cfg.OllamaURL))
	}
	if cfg.EmbedModel != "" {
		opts = append(opts, embedding.WithModel(cfg.EmbedModel))
	}
	if cfg.EmbedDimensions > 0 {
		opts = append(opts, embedding.WithDimensions(cfg.EmbedDimensions))
	}

	return embedding.NewOllamaProvider(opts...)
}

// mustProvider builds the provider and exits if the backend or model
// is unavailable.
func mustProvider(ctx context.Context) *embedding.OllamaProvider {
	provider := newEmbeddingProvider()

	if err := provider.IsAvailable(ctx); err != nil {
		exitWithError(ExitModelError,
			"Ollama is not running\n\nStart Ollama with 'ollama serve' or install from https://ollama.ai")
	}

	ok, err := provider.HasModel(ctx)
	if err != nil {
		exitWithError(ExitModelError, "checking model availability: %v", err)
	}
	if !ok {
		exitWithError(ExitModelError,
			"embedding model %q not found\n\nPull it with 'ollama pull %s'",
			provider.ModelName(), provider.ModelName())
	}

	return provider
}
