//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cospace-api/internal/infra"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/pkg/jwt"
	"cospace-api/internal/pkg/password"
	"cospace-api/internal/usecase/commands"
	"cospace-api/internal/usecase/queries"
	"cospace-api/tests/common/builder"
)

type stubUserReads struct {
	view *queries.AuthorizedUserView
	hash string
	err  error
}

func (s *stubUserReads) FindByEmailWithHash(context.Context, string) (*queries.AuthorizedUserView, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.view, s.hash, nil
}

func (s *stubUserReads) FindByID(context.Context, uuid.UUID) (*queries.AuthorizedUserView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

type stubUserRepo struct {
	lastLoginFor *uuid.UUID
	err          error
}

func (s *stubUserRepo) UpdateLastLogin(_ context.Context, _ infra.DBTX, userID uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.lastLoginFor = &userID
	return nil
}

func newAuthCommands(reads *stubUserReads, repo *stubUserRepo) (commands.AuthCommands, *jwt.Service) {
	svc := jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
	return commands.NewAuthCommands(&stubPool{tx: &stubTx{}}, reads, repo, svc), svc
}

func TestAuthCommandsLogin(t *testing.T) {
	ctx := context.Background()

	mustHash := func(plain string) string {
		h, err := password.Hash(plain)
		require.NoError(t, err)
		return h
	}

	t.Run("valid credentials issue a token pair and bump last login", func(t *testing.T) {
		view := builder.NewUserBuilder().WithEmail("member@example.com").BuildAuthorizedView()
		reads := &stubUserReads{view: view, hash: mustHash("correct-horse")}
		repo := &stubUserRepo{}
		auth, svc := newAuthCommands(reads, repo)

		pair, gotView, err := auth.Login(ctx, "member@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, view.ID, gotView.ID)

		claims, err := svc.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)

		require.NotNil(t, repo.lastLoginFor)
		assert.Equal(t, view.ID, *repo.lastLoginFor)
	})

	t.Run("last login failure does not fail the login", func(t *testing.T) {
		view := builder.NewUserBuilder().BuildAuthorizedView()
		reads := &stubUserReads{view: view, hash: mustHash("correct-horse")}
		auth, _ := newAuthCommands(reads, &stubUserRepo{err: errs.New("write timeout")})

		_, _, err := auth.Login(ctx, view.Email, "correct-horse")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		view := builder.NewUserBuilder().BuildAuthorizedView()
		reads := &stubUserReads{view: view, hash: mustHash("correct-horse")}
		auth, _ := newAuthCommands(reads, &stubUserRepo{})

		_, _, err := auth.Login(ctx, view.Email, "wrong")
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email looks like wrong credentials", func(t *testing.T) {
		reads := &stubUserReads{err: &infra.RepositoryError{Kind: infra.NotFound, Err: errs.New("no rows")}}
		auth, _ := newAuthCommands(reads, &stubUserRepo{})

		_, _, err := auth.Login(ctx, "ghost@example.com", "whatever")
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		view := builder.NewUserBuilder().BuildAuthorizedView()
		view.IsActive = false
		reads := &stubUserReads{view: view, hash: mustHash("correct-horse")}
		auth, _ := newAuthCommands(reads, &stubUserRepo{})

		_, _, err := auth.Login(ctx, view.Email, "correct-horse")
		require.ErrorIs(t, err, commands.ErrAccountDisabled)
	})
}

func TestAuthCommandsRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		view := builder.NewUserBuilder().WithRole("cashier").BuildAuthorizedView()
		reads := &stubUserReads{view: view}
		auth, svc := newAuthCommands(reads, &stubUserRepo{})

		refresh, err := svc.GenerateRefreshToken(view.ID, "cashier")
		require.NoError(t, err)

		pair, gotView, err := auth.Refresh(ctx, refresh)
		require.NoError(t, err)
		assert.Equal(t, view.ID, gotView.ID)

		claims, err := svc.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
		assert.Equal(t, "cashier", claims.Role)
	})

	t.Run("access token cannot be used as refresh", func(t *testing.T) {
		view := builder.NewUserBuilder().BuildAuthorizedView()
		auth, svc := newAuthCommands(&stubUserReads{view: view}, &stubUserRepo{})

		access, err := svc.GenerateAccessToken(view.ID, "member")
		require.NoError(t, err)

		_, _, err = auth.Refresh(ctx, access)
		require.ErrorIs(t, err, commands.ErrInvalidRefresh)
	})

	t.Run("deactivated account cannot rotate", func(t *testing.T) {
		view := builder.NewUserBuilder().BuildAuthorizedView()
		view.IsActive = false
		auth, svc := newAuthCommands(&stubUserReads{view: view}, &stubUserRepo{})

		refresh, err := svc.GenerateRefreshToken(view.ID, "member")
		require.NoError(t, err)

		_, _, err = auth.Refresh(ctx, refresh)
		require.ErrorIs(t, err, commands.ErrAccountDisabled)
	})

	t.Run("garbage token", func(t *testing.T) {
		auth, _ := newAuthCommands(&stubUserReads{}, &stubUserRepo{})

		_, _, err := auth.Refresh(ctx, "not-a-jwt")
		require.ErrorIs(t, err, commands.ErrInvalidRefresh)
	})
}
