package commands

import (
	"context"

	"surplusfood-api/internal/domain/user"
	"surplusfood-api/internal/pkg/errs"
	"surplusfood-api/internal/pkg/jwt"
	"surplusfood-api/internal/pkg/password"
	"surplusfood-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	userQueries queries.UserQueries
	jwtService  *jwt.Service
}

func NewAuthCommands(userQueries queries.UserQueries, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userQueries: userQueries,
		jwtService:  jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	view, err := a.userQueries.GetByEmail(ctx, email)
	if err != nil {
		// Same reason as a password mismatch to prevent user enumeration.
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(view.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{UserID: view.ID, AccessToken: token}, nil
}
