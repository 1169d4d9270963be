package users_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wingman/internal/api/controllers"
	"wingman/internal/repositories"
	"wingman/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideUserService, provideUserController)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepository) services.UserServiceInterface {
	return services.NewUserService(userRepo)
}

func provideUserController(userService services.UserServiceInterface) *controllers.UserController {
	return controllers.NewUserController(userService)
}
