package ports

import (
	"context"

	"skateplan/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.Session, error)
	Restore(ctx context.Context) (*domain.Session, error)
	Profile(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, token string, patch domain.ProfileUpdate) (*domain.User, error)
	DeleteAccount(ctx context.Context, token string) error
	AcceptInvite(ctx context.Context, inviteToken string, req domain.AcceptInviteRequest) (*domain.Session, error)
	Logout(ctx context.Context) error
}

// EntityFetcher loads a planning entity so its access can be evaluated.
type EntityFetcher interface {
	FetchEntity(ctx context.Context, token string, kind domain.EntityKind, id int64) (domain.Entitled, error)
}

// AccessService answers "what may this user do with that entity".
type AccessService interface {
	Derive(user *domain.User, entity *domain.Entity) domain.PermissionSet
	Lookup(ctx context.Context, token string, user *domain.User, kind domain.EntityKind, id int64) (*domain.EntityAccess, error)
}
