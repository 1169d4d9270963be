package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wingman/internal/api/controllers"
	"wingman/internal/repositories"
	"wingman/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo, provideCatalogService, provideCatalogController)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func provideCatalogService(catalogRepo repositories.CatalogRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(catalogRepo)
}

func provideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}
