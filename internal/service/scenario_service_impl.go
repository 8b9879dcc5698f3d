package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/reflow/internal/repository"
	"github.com/alexanderramin/reflow/internal/scenario"
)

type scenarioService struct {
	scenarios repository.ScenarioRepo
	runs      repository.RunRepo
	observer  UseCaseObserver
}

// NewScenarioService creates the scenario management service.
func NewScenarioService(scenarios repository.ScenarioRepo, runs repository.RunRepo, observer UseCaseObserver) ScenarioService {
	return &scenarioService{scenarios: scenarios, runs: runs, observer: observer}
}

func (s *scenarioService) Generate(ctx context.Context, opts scenario.GenerateOptions, save bool) (schema *scenario.Schema, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "scenario.generate", started, err, map[string]any{"seed": opts.Seed, "save": save})
	}()

	schema = scenario.Generate(opts)
	if save {
		if err = s.Import(ctx, schema); err != nil {
			return nil, err
		}
	}
	return schema, nil
}

func (s *scenarioService) Import(ctx context.Context, schema *scenario.Schema) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "scenario.import", started, err, map[string]any{"name": schema.Name})
	}()

	if s.scenarios == nil {
		return fmt.Errorf("scenario store not configured")
	}
	if _, err := schema.ToInput(); err != nil {
		return fmt.Errorf("invalid scenario %q: %w", schema.Name, err)
	}
	payload, err := schema.Marshal()
	if err != nil {
		return err
	}
	return s.scenarios.Save(ctx, &repository.StoredScenario{
		ID:        uuid.NewString(),
		Name:      schema.Name,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *scenarioService) List(ctx context.Context) ([]*repository.StoredScenario, error) {
	if s.scenarios == nil {
		return nil, fmt.Errorf("scenario store not configured")
	}
	return s.scenarios.List(ctx)
}

func (s *scenarioService) Runs(ctx context.Context, scenarioName string) ([]*repository.ReflowRun, error) {
	if s.scenarios == nil || s.runs == nil {
		return nil, fmt.Errorf("scenario store not configured")
	}
	stored, err := s.scenarios.GetByName(ctx, scenarioName)
	if err != nil {
		return nil, fmt.Errorf("loading scenario %q: %w", scenarioName, err)
	}
	return s.runs.ListByScenario(ctx, stored.ID)
}
