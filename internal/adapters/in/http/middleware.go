package http

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const claimsContextKey = "authClaims"

const (
	roleAdministrator = "administrator"
	roleWaiter        = "waiter"
	roleCook          = "cook"
	roleCashier       = "cashier"
)

// Authenticate verifies the bearer token and stores the claims on the echo
// context for downstream handlers.
func (s *Server) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "missing bearer token"})
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return s.jwtSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "invalid token"})
		}

		ctx.Set(claimsContextKey, claims)
		return next(ctx)
	}
}

// RequireRole builds a middleware that lets through only the given roles.
// Must run after Authenticate.
func (s *Server) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims := requestClaims(ctx)
			if claims == nil {
				return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "missing bearer token"})
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(ctx)
				}
			}
			return ctx.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: "insufficient role"})
		}
	}
}

// requestClaims returns the claims stored by Authenticate, or nil.
func requestClaims(ctx echo.Context) *Claims {
	claims, _ := ctx.Get(claimsContextKey).(*Claims)
	return claims
}
