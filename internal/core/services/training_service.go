package services

import (
	"context"
	"net/http"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
)

// TrainingService manages session logs, goals and injuries.
type TrainingService struct {
	gw ports.Gateway
}

func NewTrainingService(gw ports.Gateway) *TrainingService {
	return &TrainingService{gw: gw}
}

// CreateLog records a session for a skater, team or synchro team.
func (s *TrainingService) CreateLog(ctx context.Context, token string, kind domain.EntityKind, id int64, log domain.SessionLog) (*domain.SessionLog, error) {
	path, err := entityPath(kind, id, "logs/")
	if err != nil {
		return nil, err
	}
	body, err := jsonBody(log)
	if err != nil {
		return nil, err
	}
	return call[*domain.SessionLog](ctx, s.gw, path, http.MethodPost, body, token)
}

func (s *TrainingService) UpdateLog(ctx context.Context, token string, logID int64, log domain.SessionLog) (*domain.SessionLog, error) {
	path, err := idPath("logs", logID, "")
	if err != nil {
		return nil, err
	}
	body, err := jsonBody(log)
	if err != nil {
		return nil, err
	}
	return call[*domain.SessionLog](ctx, s.gw, path, http.MethodPatch, body, token)
}

func (s *TrainingService) DeleteLog(ctx context.Context, token string, logID int64) error {
	path, err := idPath("logs", logID, "")
	if err != nil {
		return err
	}
	return send(ctx, s.gw, path, http.MethodDelete, nil, token)
}

func (s *TrainingService) ListGoals(ctx context.Context, token string, skaterID int64) ([]domain.Goal, error) {
	path, err := entityPath(domain.KindSkater, skaterID, "goals/")
	if err != nil {
		return nil, err
	}
	return call[[]domain.Goal](ctx, s.gw, path, http.MethodGet, nil, token)
}

func (s *TrainingService) CreateGoal(ctx context.Context, token string, kind domain.EntityKind, id int64, goal domain.Goal) (*domain.Goal, error) {
	path, err := entityPath(kind, id, "goals/")
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

func (s *TrainingService) UpdateGoal(ctx context.Context, token string, goalID int64, goal domain.Goal) (*domain.Goal, error) {
	path, err := idPath("goals", goalID, "")
	if err != nil {
		return nil, err
	}
	body, err := jsonBody(goal)
	if err != nil {
		return nil, err
	}
	return call[*domain.Goal](ctx, s.gw, path, http.MethodPatch, body, token)
}

func (s *TrainingService) DeleteGoal(ctx context.Context, token string, goalID int64) error {
	path, err := idPath("goals", goalID, "")
	if err != nil {
		return err
	}
	return send(ctx, s.gw, path, http.MethodDelete, nil, token)
}

func (s *TrainingService) CreateInjury(ctx context.Context, token string, skaterID int64, injury domain.Injury) (*domain.Injury, error) {
	path, err := entityPath(domain.KindSkater, skaterID, "injuries/")
	if err != nil {
		return nil, err
	}
	if injury.BodyArea == nil {
		injury.BodyArea = []string{}
	}
	body, err := jsonBody(injury)
	if err != nil {
		return nil, err
	}
	return call[*domain.Injury](ctx, s.gw, path, http.MethodPost, body, token)
}

func (s *TrainingService) UpdateInjury(ctx context.Context, token string, injuryID int64, injury domain.Injury) (*domain.Injury, error) {
	path, err := idPath("injuries", injuryID, "")
	if err != nil {
		return nil, err
	}
	if injury.BodyArea == nil {
		injury.BodyArea = []string{}
	}
	body, err := jsonBody(injury)
	if err != nil {
		return nil, err
	}
	return call[*domain.Injury](ctx, s.gw, path, http.MethodPatch, body, token)
}
