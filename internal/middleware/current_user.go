package middleware

import (
	"github.com/google/uuid"
	"github.com/grachmannico95/verbs-service/internal/domain"
	"github.com/grachmannico95/verbs-service/pkg/logger"
	"github.com/labstack/echo/v4"
)

const (
	UserIDHeader   = "X-User-ID"
	currentUserKey = "current_user"
)

// CurrentUser resolves the acting user from the X-User-ID header. A missing
// or malformed header leaves the request anonymous.
func CurrentUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := domain.User{}
			if id, err := uuid.Parse(c.Request().Header.Get(UserIDHeader)); err == nil {
				user.ID = id
				ctx := logger.WithUserID(c.Request().Context(), id.String())
				c.SetRequest(c.Request().WithContext(ctx))
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

func UserFrom(c echo.Context) domain.User {
	user, _ := c.Get(currentUserKey).(domain.User)
	return user
}
