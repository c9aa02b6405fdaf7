package rest

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
)

const userContextKey = "user"

type identityResolver interface {
	Resolve(token string) (*entity.User, error)
}

// bearerAuth - resolves "Authorization: Bearer <token>" and stores the user in the context.
func bearerAuth(auth identityResolver) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(token string, ctx echo.Context) (bool, error) {
			user, err := auth.Resolve(token)
			if err != nil {
				return false, nil
			}

			ctx.Set(userContextKey, user)

			return true, nil
		},
	})
}

func currentUser(ctx echo.Context) (*entity.User, bool) {
	user, ok := ctx.Get(userContextKey).(*entity.User)
	return user, ok
}
