package services

import (
	"context"
	"errors"
	"log"

	"wingman/internal/models/db_models"
	"wingman/internal/repositories"
	"wingman/pkg/utils"
)

type CatalogServiceInterface interface {
	ListScenarios(ctx context.Context) ([]db_models.Scenario, error)
	GetScenario(ctx context.Context, id string) (*db_models.Scenario, error)
	ListScenariosByDifficulty(ctx context.Context, difficulty string) ([]db_models.Scenario, error)
	ListFreeScenarios(ctx context.Context) ([]db_models.Scenario, error)
	ListPersonas(ctx context.Context) ([]db_models.Persona, error)
	GetPersona(ctx context.Context, id string) (*db_models.Persona, error)
	Seed(ctx context.Context) error
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogServiceInterface {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) Seed(ctx context.Context) error {
	err := s.catalogRepo.SeedIfEmpty(ctx, DefaultScenarios(), DefaultPersonas())
	if err != nil {
		if errors.Is(err, utils.ErrStoreUnavailable) {
			log.Println("Catalog seed skipped: store unavailable, serving built-in catalog")
			return nil
		}
		return err
	}
	return nil
}

func (s *CatalogService) ListScenarios(ctx context.Context) ([]db_models.Scenario, error) {
	scenarios, err := s.catalogRepo.ListScenarios(ctx)
	if err != nil {
		log.Printf("Listing scenarios from store failed, using built-ins: %v", err)
		return DefaultScenarios(), nil
	}
	return scenarios, nil
}

func (s *CatalogService) GetScenario(ctx context.Context, id string) (*db_models.Scenario, error) {
	scenario, err := s.catalogRepo.FindScenarioByID(ctx, id)
	if err != nil {
		for _, sc := range DefaultScenarios() {
			if sc.ID == id {
				return &sc, nil
			}
		}
		return nil, utils.ErrScenarioNotFound
	}
	if scenario == nil {
		return nil, utils.ErrScenarioNotFound
	}
	return scenario, nil
}

func (s *CatalogService) ListScenariosByDifficulty(ctx context.Context, difficulty string) ([]db_models.Scenario, error) {
	scenarios, err := s.ListScenarios(ctx)
	if err != nil {
		return nil, err
	}
	var filtered []db_models.Scenario
	for _, sc := range scenarios {
		if sc.Difficulty == difficulty {
			filtered = append(filtered, sc)
		}
	}
	return filtered, nil
}

func (s *CatalogService) ListFreeScenarios(ctx context.Context) ([]db_models.Scenario, error) {
	scenarios, err := s.ListScenarios(ctx)
	if err != nil {
		return nil, err
	}
	var free []db_models.Scenario
	for _, sc := range scenarios {
		if !sc.IsPremium {
			free = append(free, sc)
		}
	}
	return free, nil
}

func (s *CatalogService) ListPersonas(ctx context.Context) ([]db_models.Persona, error) {
	personas, err := s.catalogRepo.ListPersonas(ctx)
	if err != nil {
		log.Printf("Listing personas from store failed, using built-ins: %v", err)
		return DefaultPersonas(), nil
	}
	return personas, nil
}

func (s *CatalogService) GetPersona(ctx context.Context, id string) (*db_models.Persona, error) {
	persona, err := s.catalogRepo.FindPersonaByID(ctx, id)
	if err != nil {
		for _, p := range DefaultPersonas() {
			if p.ID == id {
				return &p, nil
			}
		}
		return nil, utils.ErrPersonaNotFound
	}
	if persona == nil {
		return nil, utils.ErrPersonaNotFound
	}
	return persona, nil
}
