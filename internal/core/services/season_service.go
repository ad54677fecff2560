package services

import (
	"context"
	"fmt"
	"net/http"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
)

// SeasonService manages yearly training plans, their macrocycles and the
// seasons they belong to.
type SeasonService struct {
	gw ports.Gateway
}

func NewSeasonService(gw ports.Gateway) *SeasonService {
	return &SeasonService{gw: gw}
}

// ListYearlyPlans returns the yearly plans of a skater, team or synchro team.
func (s *SeasonService) ListYearlyPlans(ctx context.Context, token string, kind domain.EntityKind, id int64) ([]domain.YearlyPlan, error) {
	path, err := entityPath(kind, id, "ytps/")
	if err != nil {
		return nil, err
	}
	return call[[]domain.YearlyPlan](ctx, s.gw, path, http.MethodGet, nil, token)
}

// CreateYearlyPlan starts a plan for one discipline of the entity. The
// backend creates the season record when none exists yet.
func (s *SeasonService) CreateYearlyPlan(ctx context.Context, token string, kind domain.EntityKind, id int64, req domain.CreateYearlyPlanRequest) (*domain.YearlyPlan, error) {
	path, err := entityPath(kind, id, "ytps/")
	if err != nil {
		return nil, err
	}
	if req.PeakType == "" {
		req.PeakType = domain.PeakSingle
	}
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	return call[*domain.YearlyPlan](ctx, s.gw, path, http.MethodPost, body, token)
}

func (s *SeasonService) GetYearlyPlan(ctx context.Context, token string, planID int64) (*domain.YearlyPlan, error) {
	path, err := idPath("ytps", planID, "")
	if err != nil {
		return nil, err
	}
	return call[*domain.YearlyPlan](ctx, s.gw, path, http.MethodGet, nil, token)
}

func (s *SeasonService) UpdateYearlyPlan(ctx context.Context, token string, planID int64, update domain.YearlyPlanUpdate) (*domain.YearlyPlan, error) {
	path, err := idPath("ytps", planID, "")
	if err != nil {
		return nil, err
	}
	body, err := jsonBody(update)
	if err != nil {
		return nil, err
	}
	return call[*domain.YearlyPlan](ctx, s.gw, path, http.MethodPatch, body, token)
}

func (s *SeasonService) DeleteYearlyPlan(ctx context.Context, token string, planID int64) error {
	path, err := idPath("ytps", planID, "")
	if err != nil {
		return err
	}
	return send(ctx, s.gw, path, http.MethodDelete, nil, token)
}

// CreateMacrocycle adds a phase to a plan. The phase must not end before
// it starts.
func (s *SeasonService) CreateMacrocycle(ctx context.Context, token string, planID int64, m domain.Macrocycle) (*domain.Macrocycle, error) {
	path, err := idPath("ytps", planID, "macrocycles/")
	if err != nil {
		return nil, err
	}
	if err := checkPhase(m); err != nil {
		return nil, err
	}
	body, err := jsonBody(m)
	if err != nil {
		return nil, err
	}
	return call[*domain.Macrocycle](ctx, s.gw, path, http.MethodPost, body, token)
}

func (s *SeasonService) UpdateMacrocycle(ctx context.Context, token string, macrocycleID int64, m domain.Macrocycle) (*domain.Macrocycle, error) {
	path, err := idPath("macrocycles", macrocycleID, "")
	if err != nil {
		return nil, err
	}
	if err := checkPhase(m); err != nil {
		return nil, err
	}
	body, err := jsonBody(m)
	if err != nil {
		return nil, err
	}
	return call[*domain.Macrocycle](ctx, s.gw, path, http.MethodPatch, body, token)
}

func (s *SeasonService) DeleteMacrocycle(ctx context.Context, token string, macrocycleID int64) error {
	path, err := idPath("macrocycles", macrocycleID, "")
	if err != nil {
		return err
	}
	return send(ctx, s.gw, path, http.MethodDelete, nil, token)
}

// CreatePlanGoal attaches a goal to a yearly plan.
func (s *SeasonService) CreatePlanGoal(ctx context.Context, token string, planID int64, goal domain.Goal) (*domain.Goal, error) {
	path, err := idPath("ytps", planID, "goals/")
	if err != nil {
		return nil, err
	}
	if goal.CurrentStatus == "" {
		goal.CurrentStatus = domain.GoalDraft
	}
	body, err := jsonBody(goal)
	if err != nil {
		return nil, err
	}
	return call[*domain.Goal](ctx, s.gw, path, http.MethodPost, body, token)
}

// UpdateSeason renames a season or moves its dates.
func (s *SeasonService) UpdateSeason(ctx context.Context, token string, seasonID int64, season domain.AthleteSeason) (*domain.AthleteSeason, error) {
	path, err := idPath("seasons", seasonID, "")
	if err != nil {
		return nil, err
	}
	if season.StartDate != "" && season.EndDate != "" && season.EndDate < season.StartDate {
		return nil, fmt.Errorf("%w: season ends before it starts", domain.ErrInvalidDates)
	}
	body, err := jsonBody(season)
	if err != nil {
		return nil, err
	}
	return call[*domain.AthleteSeason](ctx, s.gw, path, http.MethodPatch, body, token)
}

func checkPhase(m domain.Macrocycle) error {
	if m.PhaseStart != "" && m.PhaseEnd != "" && m.PhaseEnd < m.PhaseStart {
		return fmt.Errorf("%w: phase %q ends before it starts", domain.ErrInvalidDates, m.PhaseTitle)
	}
	return nil
}
