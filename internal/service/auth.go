package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
)

const tokenTTL = 24 * time.Hour

type AuthService interface {
	GenerateToken(user entity.User) (string, error)
	Resolve(token string) (*entity.User, error)
}

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type authServiceImpl struct {
	secretKey []byte
	now       func() time.Time
}

func NewAuthService(secretKey string) AuthService {
	return &authServiceImpl{
		secretKey: []byte(secretKey),
		now:       time.Now,
	}
}

func (that *authServiceImpl) GenerateToken(user entity.User) (string, error) {
	now := that.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})

	tokenString, err := token.SignedString(that.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Resolve - verifies the token and returns the user it was issued to.
func (that *authServiceImpl) Resolve(token string) (*entity.User, error) {
	if token == "" {
		return nil, apperror.ErrUnauthorized
	}

	var parsed claims

	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return that.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(that.now),
	)
	if err != nil {
		return nil, errors.Join(apperror.ErrUnauthorized, err)
	}

	if parsed.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", apperror.ErrUnauthorized)
	}

	return &entity.User{ID: parsed.Subject, Username: parsed.Username}, nil
}
