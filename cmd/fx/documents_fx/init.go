package documents_fx

import (
	"go.uber.org/fx"
	"wingman/internal/api/controllers"
	"wingman/internal/services"
)

var Module = fx.Provide(
	provideDocumentService, provideDocumentController)

func provideDocumentService() services.DocumentServiceInterface {
	return services.NewDocumentService()
}

func provideDocumentController(documentService services.DocumentServiceInterface) *controllers.DocumentController {
	return controllers.NewDocumentController(documentService)
}
