package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"senso-backend/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextUserID is the echo context key the authenticated user id is stored
// under.
const ContextUserID = "userID"

// Claims are the bearer-token claims issued by the auth service.
type Claims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Authorization bearer token and stores the user id
// on the request context. Tokens are issued elsewhere; this service only
// verifies them.
func JWTAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Authorization token missing or malformed"))
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid token"))
			}

			c.Set(ContextUserID, claims.UserID)
			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id set by JWTAuth.
func UserIDFromContext(c echo.Context) (uint, bool) {
	userID, ok := c.Get(ContextUserID).(uint)
	return userID, ok
}
