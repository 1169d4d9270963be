package conversations_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wingman/internal/api/controllers"
	"wingman/internal/repositories"
	"wingman/internal/services"
)

var Module = fx.Provide(
	provideConversationRepo, provideConversationService, provideConversationController)

func provideConversationRepo(db *gorm.DB) repositories.ConversationRepository {
	return repositories.NewConversationRepository(db)
}

func provideConversationService(conversationRepo repositories.ConversationRepository) services.ConversationServiceInterface {
	return services.NewConversationService(conversationRepo)
}

func provideConversationController(conversationService services.ConversationServiceInterface) *controllers.ConversationController {
	return controllers.NewConversationController(conversationService)
}
