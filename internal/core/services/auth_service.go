package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
	apperrors "skateplan/pkg/errors"
	"skateplan/pkg/utils"
	"skateplan/pkg/validation"

	"go.uber.org/zap"
)

type authService struct {
	gw     ports.Gateway
	tokens ports.TokenStore
	logger *zap.Logger
}

func NewAuthService(gw ports.Gateway, tokens ports.TokenStore, logger *zap.Logger) ports.AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &authService{
		gw:     gw,
		tokens: tokens,
		logger: logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token and stores it.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = utils.NormalizeEmail(email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, apperrors.NewInvalidInputError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, apperrors.NewInvalidInputError(err.Error())
	}

	sess, err := call[*domain.Session](ctx, s.gw, "/auth/login/", http.MethodPost,
		ports.JSONBody{Value: loginRequest{Email: email, Password: password}}, "")
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, sess)
}

func (s *authService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.Session, error) {
	req.Email = utils.NormalizeEmail(req.Email)
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	sess, err := call[*domain.Session](ctx, s.gw, "/auth/register/", http.MethodPost, body, "")
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, sess)
}

// Restore rebuilds the session from the stored token. A token the backend
// no longer accepts is cleared.
func (s *authService) Restore(ctx context.Context) (*domain.Session, error) {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.Profile(ctx, token)
	if err != nil {
		if clearErr := s.tokens.Clear(ctx); clearErr != nil {
			s.logger.Warn("failed to clear rejected token", zap.Error(clearErr))
		}
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return &domain.Session{Token: token, User: user}, nil
}

func (s *authService) Profile(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	user, err := call[*domain.User](ctx, s.gw, "/auth/profile/", http.MethodGet, nil, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("profile response was empty")
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, token string, patch domain.ProfileUpdate) (*domain.User, error) {
	body, err := jsonBody(patch)
	if err != nil {
		return nil, err
	}
	return call[*domain.User](ctx, s.gw, "/auth/profile/", http.MethodPatch, body, token)
}

// DeleteAccount removes the account and forgets the stored token.
func (s *authService) DeleteAccount(ctx context.Context, token string) error {
	if err := send(ctx, s.gw, "/auth/profile/", http.MethodDelete, nil, token); err != nil {
		return err
	}
	return s.tokens.Clear(ctx)
}

// AcceptInvite completes an invitation; the backend answers with a ready
// session for the invited account.
func (s *authService) AcceptInvite(ctx context.Context, inviteToken string, req domain.AcceptInviteRequest) (*domain.Session, error) {
	if err := validation.ValidateToken(inviteToken); err != nil {
		return nil, apperrors.NewInvalidInputError(err.Error())
	}
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	sess, err := call[*domain.Session](ctx, s.gw, "/invitations/accept/"+inviteToken+"/", http.MethodPost, body, "")
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, sess)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.tokens.Clear(ctx)
}

func (s *authService) establish(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
	if sess == nil || sess.Token == "" {
		return nil, errors.New("backend did not return a token")
	}
	if err := s.tokens.Save(ctx, sess.Token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	email := ""
	if sess.User != nil {
		email = sess.User.Email
	}
	s.logger.Debug("session established",
		zap.String("user", email),
		zap.String("token", utils.MaskToken(sess.Token)),
	)
	return sess, nil
}
