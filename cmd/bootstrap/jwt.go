package bootstrap

import (
	"time"

	"slotify/internal/domain/user"
	"slotify/internal/handler/middleware"
	"slotify/internal/pkg/config"
	"slotify/internal/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		fx.Annotate(
			NewTokenValidator,
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, tokenDuration)
}

type tokenValidator struct {
	svc *jwt.Service
}

func NewTokenValidator(svc *jwt.Service) *tokenValidator {
	return &tokenValidator{svc: svc}
}

func (v *tokenValidator) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.svc.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}

	role := user.Role(claims.Role)
	if !role.IsValid() {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	return claims.UserID, role, nil
}
