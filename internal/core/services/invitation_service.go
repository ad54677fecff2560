package services

import (
	"context"
	"net/http"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
)

// InvitationService grants and revokes access to planning entities.
type InvitationService struct {
	gw ports.Gateway
}

func NewInvitationService(gw ports.Gateway) *InvitationService {
	return &InvitationService{gw: gw}
}

func (s *InvitationService) SendInvitation(ctx context.Context, token string, inv domain.Invitation) error {
	body, err := jsonBody(inv)
	if err != nil {
		return err
	}
	return send(ctx, s.gw, "/invitations/send/", http.MethodPost, body, token)
}

// RevokeAccess removes an access grant by its id.
func (s *InvitationService) RevokeAccess(ctx context.Context, token string, accessID int64) error {
	path, err := idPath("access", accessID, "revoke/")
	if err != nil {
		return err
	}
	return send(ctx, s.gw, path, http.MethodDelete, nil, token)
}
