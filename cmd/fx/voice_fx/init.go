package voice_fx

import (
	"go.uber.org/fx"
	"wingman/internal/api/controllers"
	"wingman/internal/infra"
	"wingman/internal/services"
)

var Module = fx.Provide(
	provideVoiceTokenService, provideVoiceController)

func provideVoiceTokenService(cfg *infra.Config) services.VoiceTokenServiceInterface {
	return services.NewVoiceTokenService(cfg)
}

func provideVoiceController(voiceTokenService services.VoiceTokenServiceInterface) *controllers.VoiceController {
	return controllers.NewVoiceController(voiceTokenService)
}
