package usecase

import (
	"github.com/google/uuid"

	"cospace-api/internal/domain/user"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/pkg/jwt"
)

// AuthenticatedUser is what the middleware attaches to the request
// context after a token passes validation.
type AuthenticatedUser struct {
	UserID uuid.UUID
	Role   user.Role
}

type TokenValidator interface {
	ValidateAccessToken(token string) (*AuthenticatedUser, error)
}

type tokenValidatorImpl struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtSvc *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwt: jwtSvc}
}

func (v *tokenValidatorImpl) ValidateAccessToken(token string) (*AuthenticatedUser, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return nil, jwt.ErrInvalidToken
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, jwt.ErrInvalidToken)
	}
	return &AuthenticatedUser{UserID: claims.UserID, Role: role}, nil
}
