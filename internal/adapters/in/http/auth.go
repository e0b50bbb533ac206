package http

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"comanda/internal/core/domain/model/staff"
)

// tokenTTL bounds how long an issued dashboard session stays valid.
const tokenTTL = 12 * time.Hour

// Claims is the JWT payload carried by every authenticated request. The role
// travels in the token so route guards need no user lookup.
type Claims struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Signup handles POST /api/v1/auth/signup.
func (s *Server) Signup(ctx echo.Context) error {
	var req SignupRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return s.writeError(ctx, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return s.writeError(ctx, err)
	}

	user, err := s.userRepo.Add(ctx.Request().Context(), req.Name, req.Username, string(hash), staff.Role(req.Role))
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return s.writeError(ctx, err)
	}

	user, err := s.userRepo.GetByUsername(ctx.Request().Context(), req.Username)
	if err != nil {
		// do not reveal whether the username exists
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "invalid credentials"})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "invalid credentials"})
	}

	token, err := s.issueToken(user)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: toUserResponse(user)})
}

// ListUsers handles GET /api/v1/users. Password hashes never leave the
// service.
func (s *Server) ListUsers(ctx echo.Context) error {
	users, err := s.userRepo.GetAll(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	return ctx.JSON(http.StatusOK, response)
}

// DeleteUser handles DELETE /api/v1/users/:id.
func (s *Server) DeleteUser(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.userRepo.Delete(ctx.Request().Context(), id); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) issueToken(user staff.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func toUserResponse(user staff.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Role:     string(user.Role),
	}
}
