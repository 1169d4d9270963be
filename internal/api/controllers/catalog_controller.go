package controllers

import (
	"github.com/gin-gonic/gin"
	"wingman/internal/services"
	"wingman/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

func (ct *CatalogController) ListScenariosHandler(c *gin.Context) {
	if difficulty := c.Query("difficulty"); difficulty != "" {
		scenarios, err := ct.catalogService.ListScenariosByDifficulty(c.Request.Context(), difficulty)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, scenarios, "OK")
		return
	}

	if c.Query("free") == "true" {
		scenarios, err := ct.catalogService.ListFreeScenarios(c.Request.Context())
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, scenarios, "OK")
		return
	}

	scenarios, err := ct.catalogService.ListScenarios(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, scenarios, "OK")
}

func (ct *CatalogController) GetScenarioHandler(c *gin.Context) {
	scenario, err := ct.catalogService.GetScenario(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, scenario, "OK")
}

func (ct *CatalogController) ListPersonasHandler(c *gin.Context) {
	personas, err := ct.catalogService.ListPersonas(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, personas, "OK")
}

func (ct *CatalogController) GetPersonaHandler(c *gin.Context) {
	persona, err := ct.catalogService.GetPersona(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, persona, "OK")
}
