package commands

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"cospace-api/internal/domain/user"
	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/pkg/jwt"
	"cospace-api/internal/pkg/password"
	"cospace-api/internal/usecase/queries"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*TokenPair, *queries.AuthorizedUserView, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, *queries.AuthorizedUserView, error)
}

type authCommandsImpl struct {
	db    Pool
	users queries.UserReadStore
	repo  UserRepository
	jwt   *jwt.Service
}

func NewAuthCommands(db Pool, users queries.UserReadStore, repo UserRepository, jwtSvc *jwt.Service) AuthCommands {
	return &authCommandsImpl{db: db, users: users, repo: repo, jwt: jwtSvc}
}

func (c *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*TokenPair, *queries.AuthorizedUserView, error) {
	view, hash, err := c.users.FindByEmailWithHash(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.NotFound) {
			return nil, nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, nil, ErrAccountDisabled
	}
	if err := password.Verify(hash, plainPassword); err != nil {
		return nil, nil, errs.Mark(err, ErrInvalidCredentials)
	}

	pair, err := c.issueTokens(view)
	if err != nil {
		return nil, nil, err
	}

	// Login bookkeeping must not fail the login itself.
	if err := c.repo.UpdateLastLogin(ctx, c.db, view.ID); err != nil {
		slog.WarnContext(ctx, "failed to update last login", "user_id", view.ID, "error", err)
	}

	return pair, view, nil
}

func (c *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, *queries.AuthorizedUserView, error) {
	claims, err := c.jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrInvalidRefresh)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, nil, ErrInvalidRefresh
	}

	// Re-read the user so a deactivated account cannot keep rotating tokens.
	view, err := c.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.NotFound) {
			return nil, nil, errs.Mark(err, ErrInvalidRefresh)
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, nil, ErrAccountDisabled
	}

	pair, err := c.issueTokens(view)
	if err != nil {
		return nil, nil, err
	}
	return pair, view, nil
}

func (c *authCommandsImpl) issueTokens(view *queries.AuthorizedUserView) (*TokenPair, error) {
	role, err := userRole(view.Role)
	if err != nil {
		return nil, err
	}
	access, err := c.jwt.GenerateAccessToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}
	refresh, err := c.jwt.GenerateRefreshToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate refresh token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func userRole(s string) (user.Role, error) {
	role, err := user.NewRole(s)
	if err != nil {
		return "", errs.Wrap(err, "stored role is invalid")
	}
	return role, nil
}
