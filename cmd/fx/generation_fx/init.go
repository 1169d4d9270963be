package generation_fx

import (
	"log"

	"go.uber.org/fx"
	"wingman/internal/api/controllers"
	"wingman/internal/infra"
	"wingman/internal/services"
	"wingman/pkg/memcache"
	"wingman/pkg/utils"
)

var Module = fx.Provide(
	provideGenerationClient, provideGenerationCache, provideGenerationService, provideGenerationController)

// provideGenerationClient returns nil when no provider credentials are
// configured; the service then serves deterministic fallbacks.
func provideGenerationClient(cfg *infra.Config) utils.GenerationClientInterface {
	apiKey := cfg.GeminiAPIKey
	model := cfg.GeminiModel
	if cfg.AIProvider == utils.ProviderOpenAI {
		apiKey = cfg.OpenAIAPIKey
		model = cfg.OpenAIModel
	}
	if apiKey == "" {
		log.Printf("No API key for provider %q, generation will use fallbacks", cfg.AIProvider)
		return nil
	}

	client, err := utils.NewGenerationClient(cfg.AIProvider, apiKey, model)
	if err != nil {
		log.Printf("Generation client init failed: %v", err)
		return nil
	}
	return client
}

func provideGenerationCache() memcache.GenerationCache {
	return memcache.NewTTLCache()
}

func provideGenerationService(client utils.GenerationClientInterface, cache memcache.GenerationCache) services.GenerationServiceInterface {
	return services.NewGenerationService(client, cache)
}

func provideGenerationController(generationService services.GenerationServiceInterface) *controllers.GenerationController {
	return controllers.NewGenerationController(generationService)
}
