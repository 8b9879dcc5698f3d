package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/reflow/internal/app"
	"github.com/alexanderramin/reflow/internal/audit"
	"github.com/alexanderramin/reflow/internal/repository"
	"github.com/alexanderramin/reflow/internal/scenario"
	"github.com/alexanderramin/reflow/internal/scheduler"
)

type reflowService struct {
	scenarios repository.ScenarioRepo
	runs      repository.RunRepo
	observer  UseCaseObserver
}

// NewReflowService wires the engine to the scenario store. Both repos
// may be nil when running purely from files.
func NewReflowService(scenarios repository.ScenarioRepo, runs repository.RunRepo, observer UseCaseObserver) ReflowService {
	return &reflowService{scenarios: scenarios, runs: runs, observer: observer}
}

func (s *reflowService) Run(ctx context.Context, req RunRequest) (resp *RunResponse, err error) {
	started := time.Now()
	defer func() {
		fields := map[string]any{"scenario": req.ScenarioName}
		if resp != nil {
			fields["rescheduled"] = resp.Result.Metrics.WorkOrdersRescheduled
			fields["audit_valid"] = resp.Audit.Valid
		}
		observe(ctx, s.observer, "reflow.run", started, err, fields)
	}()

	schema, stored, err := s.resolveSchema(ctx, req)
	if err != nil {
		return nil, err
	}
	input, err := schema.ToInput()
	if err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", schema.Name, err)
	}

	result := scheduler.Reflow(input)
	report := audit.Validate(app.ReflowInput{
		WorkOrders:          result.UpdatedWorkOrders,
		WorkCenters:         input.WorkCenters,
		ManufacturingOrders: input.ManufacturingOrders,
	})

	if req.RecordRun && stored != nil && s.runs != nil {
		run := &repository.ReflowRun{
			ID:            uuid.NewString(),
			ScenarioID:    stored.ID,
			RanAt:         time.Now().UTC(),
			Rescheduled:   result.Metrics.WorkOrdersRescheduled,
			Unchanged:     result.Metrics.WorkOrdersUnchanged,
			TotalDelayMin: result.Metrics.TotalDelayMin,
			MaxDelayMin:   result.Metrics.MaxDelayMin,
			AuditValid:    report.Valid,
			Explanation:   result.Explanation,
		}
		if err := s.runs.Record(ctx, run); err != nil {
			return nil, fmt.Errorf("recording run: %w", err)
		}
	}

	return &RunResponse{Input: input, Result: result, Audit: report}, nil
}

func (s *reflowService) Audit(ctx context.Context, req RunRequest) (report *app.AuditReport, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "reflow.audit", started, err, map[string]any{"scenario": req.ScenarioName})
	}()

	schema, _, err := s.resolveSchema(ctx, req)
	if err != nil {
		return nil, err
	}
	input, err := schema.ToInput()
	if err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", schema.Name, err)
	}
	r := audit.Validate(input)
	return &r, nil
}

func (s *reflowService) resolveSchema(ctx context.Context, req RunRequest) (*scenario.Schema, *repository.StoredScenario, error) {
	if req.Schema != nil {
		return req.Schema, nil, nil
	}
	if req.ScenarioName == "" {
		return nil, nil, fmt.Errorf("no scenario given")
	}
	if s.scenarios == nil {
		return nil, nil, fmt.Errorf("scenario store not configured")
	}
	stored, err := s.scenarios.GetByName(ctx, req.ScenarioName)
	if err != nil {
		return nil, nil, fmt.Errorf("loading scenario %q: %w", req.ScenarioName, err)
	}
	schema, err := scenario.Parse(stored.Payload)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding stored scenario %q: %w", req.ScenarioName, err)
	}
	return schema, stored, nil
}
