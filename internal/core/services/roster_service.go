package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
	apperrors "skateplan/pkg/errors"
)

// RosterService reads and edits skaters, teams and synchro teams.
type RosterService struct {
	gw ports.Gateway
}

var _ ports.EntityFetcher = (*RosterService)(nil)

func NewRosterService(gw ports.Gateway) *RosterService {
	return &RosterService{gw: gw}
}

// ListRoster returns every skater the token's user can see.
func (s *RosterService) ListRoster(ctx context.Context, token string) ([]domain.Skater, error) {
	return call[[]domain.Skater](ctx, s.gw, "/roster/", http.MethodGet, nil, token)
}

func (s *RosterService) ListFederations(ctx context.Context, token string) ([]domain.Federation, error) {
	return call[[]domain.Federation](ctx, s.gw, "/federations/", http.MethodGet, nil, token)
}

// CreateSkater creates a skater. A duplicate name and birthday is reported
// as a conflict AppError carrying the existing skater_id.
func (s *RosterService) CreateSkater(ctx context.Context, token string, req domain.CreateSkaterRequest) (*domain.Skater, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	skater, err := call[*domain.Skater](ctx, s.gw, "/skaters/create/", http.MethodPost, body, token)
	if err != nil {
		var re ports.ResponseError
		if errors.As(err, &re) && re.Status() == http.StatusConflict {
			var dup domain.DuplicateSkater
			if json.Unmarshal(re.ResponseBody(), &dup) == nil && dup.SkaterID != 0 {
				return nil, apperrors.NewConflictError(re.Error()).
					WithCause(err).
					WithContext("skater_id", dup.SkaterID).
					WithContext("action", dup.Action)
			}
		}
		return nil, err
	}
	return skater, nil
}

func (s *RosterService) GetSkater(ctx context.Context, token string, id int64) (*domain.Skater, error) {
	path, err := idPath("skaters", id, "")
	if err != nil {
		return nil, err
	}
	return call[*domain.Skater](ctx, s.gw, path, http.MethodGet, nil, token)
}

func (s *RosterService) UpdateSkater(ctx context.Context, token string, id int64, patch domain.SkaterUpdate) (*domain.Skater, error) {
	path, err := idPath("skaters", id, "")
	if err != nil {
		return nil, err
	}
	body, err := jsonBody(patch)
	if err != nil {
		return nil, err
	}
	return call[*domain.Skater](ctx, s.gw, path, http.MethodPatch, body, token)
}

func (s *RosterService) DeleteSkater(ctx context.Context, token string, id int64) error {
	path, err := idPath("skaters", id, "")
	if err != nil {
		return err
	}
	return send(ctx, s.gw, path, http.MethodDelete, nil, token)
}

// UnlinkSkaterUser detaches the login account from a skater record.
func (s *RosterService) UnlinkSkaterUser(ctx context.Context, token string, id int64) error {
	path, err := idPath("skaters", id, "unlink-user/")
	if err != nil {
		return err
	}
	return send(ctx, s.gw, path, http.MethodPost, nil, token)
}

func (s *RosterService) CreateTeam(ctx context.Context, token string, req domain.CreateTeamRequest) (*domain.Team, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	return call[*domain.Team](ctx, s.gw, "/teams/create/", http.MethodPost, body, token)
}

func (s *RosterService) GetTeam(ctx context.Context, token string, id int64) (*domain.Team, error) {
	path, err := idPath("teams", id, "")
	if err != nil {
		return nil, err
	}
	return call[*domain.Team](ctx, s.gw, path, http.MethodGet, nil, token)
}

func (s *RosterService) CreateSynchroTeam(ctx context.Context, token string, req domain.SynchroTeamRequest) (*domain.SynchroTeam, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	return call[*domain.SynchroTeam](ctx, s.gw, "/synchro/create/", http.MethodPost, body, token)
}

func (s *RosterService) GetSynchroTeam(ctx context.Context, token string, id int64) (*domain.SynchroTeam, error) {
	path, err := idPath("synchro", id, "")
	if err != nil {
		return nil, err
	}
	return call[*domain.SynchroTeam](ctx, s.gw, path, http.MethodGet, nil, token)
}

func (s *RosterService) UpdateSynchroTeam(ctx context.Context, token string, id int64, req domain.SynchroTeamRequest) (*domain.SynchroTeam, error) {
	path, err := idPath("synchro", id, "")
	if err != nil {
		return nil, err
	}
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	return call[*domain.SynchroTeam](ctx, s.gw, path, http.MethodPatch, body, token)
}

func (s *RosterService) DeleteSynchroTeam(ctx context.Context, token string, id int64) error {
	path, err := idPath("synchro", id, "")
	if err != nil {
		return err
	}
	return send(ctx, s.gw, path, http.MethodDelete, nil, token)
}

// FetchEntity loads the skater, team or synchro team behind (kind, id).
func (s *RosterService) FetchEntity(ctx context.Context, token string, kind domain.EntityKind, id int64) (domain.Entitled, error) {
	var (
		record domain.Entitled
		err    error
	)
	switch kind {
	case domain.KindSkater:
		var sk *domain.Skater
		sk, err = s.GetSkater(ctx, token, id)
		record = sk
	case domain.KindTeam:
		var t *domain.Team
		t, err = s.GetTeam(ctx, token, id)
		record = t
	case domain.KindSynchro:
		var st *domain.SynchroTeam
		st, err = s.GetSynchroTeam(ctx, token, id)
		record = st
	default:
		return nil, apperrors.WrapError(domain.ErrInvalidEntity, apperrors.ErrCodeInvalidInput,
			"entity kind must be skaters, teams or synchro", http.StatusBadRequest)
	}
	if err != nil {
		return nil, err
	}
	if isNilEntity(record) {
		return nil, errors.New("backend returned an empty entity")
	}
	return record, nil
}

func isNilEntity(e domain.Entitled) bool {
	switch v := e.(type) {
	case *domain.Skater:
		return v == nil
	case *domain.Team:
		return v == nil
	case *domain.SynchroTeam:
		return v == nil
	}
	return e == nil
}
