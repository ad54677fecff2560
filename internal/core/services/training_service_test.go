package services

import (
	"context"
	"net/http"
	"testing"

	"skateplan/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTrainingService_LogsPerEntityKind(t *testing.T) {
	tests := []struct {
		kind domain.EntityKind
		path string
	}{
		{domain.KindSkater, "/skaters/4/logs/"},
		{domain.KindTeam, "/teams/4/logs/"},
		{domain.KindSynchro, "/synchro/4/logs/"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			gw := new(MockGateway)
			gw.On("Request", mock.Anything, tt.path, http.MethodPost, mock.Anything, "tok").
				Return(raw(`{"id":90,"session_date":"2024-03-11","session_rating":4}`), nil)

			log, err := NewTrainingService(gw).CreateLog(context.Background(), "tok", tt.kind, 4,
				domain.SessionLog{SessionDate: "2024-03-11", SessionRating: 4})
			require.NoError(t, err)
			assert.Equal(t, int64(90), log.ID)
			gw.AssertExpectations(t)
		})
	}
}

func TestTrainingService_CreateLogRejectsBadInput(t *testing.T) {
	gw := new(MockGateway)
	svc := NewTrainingService(gw)

	_, err := svc.CreateLog(context.Background(), "tok", domain.EntityKind("clubs"), 4, domain.SessionLog{SessionDate: "2024-03-11"})
	assert.ErrorIs(t, err, domain.ErrInvalidEntity)

	_, err = svc.CreateLog(context.Background(), "tok", domain.KindSkater, 4, domain.SessionLog{SessionDate: "2024-03-11", EnergyStamina: 9})
	assert.Error(t, err)

	gw.AssertNotCalled(t, "Request", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTrainingService_LogUpdateDelete(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Request", mock.Anything, "/logs/90/", http.MethodPatch, mock.Anything, "tok").
		Return(raw(`{"id":90,"session_date":"2024-03-12"}`), nil)
	gw.On("Request", mock.Anything, "/logs/90/", http.MethodDelete, nil, "tok").Return(nil, nil)

	svc := NewTrainingService(gw)
	log, err := svc.UpdateLog(context.Background(), "tok", 90, domain.SessionLog{SessionDate: "2024-03-12"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-12", log.SessionDate)
	require.NoError(t, svc.DeleteLog(context.Background(), "tok", 90))
	gw.AssertExpectations(t)
}

func TestTrainingService_Goals(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Request", mock.Anything, "/skaters/4/goals/", http.MethodGet, nil, "tok").
		Return(raw(`[{"id":1,"title":"Land 2A","current_status":"IN_PROGRESS"}]`), nil)
	gw.On("Request", mock.Anything, "/teams/6/goals/", http.MethodPost, mock.Anything, "tok").
		Return(raw(`{"id":2,"title":"Clean lift","current_status":"DRAFT"}`), nil)
	gw.On("Request", mock.Anything, "/goals/2/", http.MethodPatch, mock.Anything, "tok").
		Return(raw(`{"id":2,"title":"Clean lift","current_status":"APPROVED"}`), nil)
	gw.On("Request", mock.Anything, "/goals/2/", http.MethodDelete, nil, "tok").Return(nil, nil)

	svc := NewTrainingService(gw)
	ctx := context.Background()

	goals, err := svc.ListGoals(ctx, "tok", 4)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, domain.GoalInProgress, goals[0].CurrentStatus)

	created, err := svc.CreateGoal(ctx, "tok", domain.KindTeam, 6, domain.Goal{Title: "Clean lift", TargetDate: "2024-06-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
	assert.JSONEq(t, `{"title":"Clean lift","target_date":"2024-06-01","current_status":"DRAFT"}`,
		jsonOf(gw.Calls[1].Arguments.Get(3)))

	updated, err := svc.UpdateGoal(ctx, "tok", 2, domain.Goal{Title: "Clean lift", CurrentStatus: domain.GoalApproved})
	require.NoError(t, err)
	assert.Equal(t, domain.GoalApproved, updated.CurrentStatus)

	_, err = svc.UpdateGoal(ctx, "tok", 2, domain.Goal{Title: "Clean lift", CurrentStatus: "DONE"})
	assert.Error(t, err)

	require.NoError(t, svc.DeleteGoal(ctx, "tok", 2))
	gw.AssertExpectations(t)
}

func TestTrainingService_Injuries(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Request", mock.Anything, "/skaters/4/injuries/", http.MethodPost, mock.Anything, "tok").
		Return(raw(`{"id":11,"injury_type":"Sprain","body_area":[],"date_of_onset":"2024-02-01","return_to_sport_date":null}`), nil)
	gw.On("Request", mock.Anything, "/injuries/11/", http.MethodPatch, mock.Anything, "tok").
		Return(raw(`{"id":11,"injury_type":"Sprain","body_area":["Ankle"],"date_of_onset":"2024-02-01","return_to_sport_date":"2024-03-01"}`), nil)

	svc := NewTrainingService(gw)
	ctx := context.Background()

	inj, err := svc.CreateInjury(ctx, "tok", 4, domain.Injury{InjuryType: "Sprain", DateOfOnset: "2024-02-01"})
	require.NoError(t, err)
	assert.Nil(t, inj.ReturnToSportDate)
	assert.JSONEq(t, `{"injury_type":"Sprain","body_area":[],"date_of_onset":"2024-02-01","return_to_sport_date":null}`,
		jsonOf(gw.Calls[0].Arguments.Get(3)))

	back := "2024-03-01"
	inj, err = svc.UpdateInjury(ctx, "tok", 11, domain.Injury{InjuryType: "Sprain", BodyArea: []string{"Ankle"}, DateOfOnset: "2024-02-01", ReturnToSportDate: &back})
	require.NoError(t, err)
	require.NotNil(t, inj.ReturnToSportDate)
	assert.Equal(t, "2024-03-01", *inj.ReturnToSportDate)
}
