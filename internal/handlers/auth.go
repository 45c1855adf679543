package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/morisawa/ideapool/internal/dto"
	apierrors "github.com/morisawa/ideapool/internal/errors"
	"github.com/morisawa/ideapool/internal/middleware"
	"github.com/morisawa/ideapool/internal/services"
	"github.com/morisawa/ideapool/internal/validation"
)

// AuthHandler coordinates signup, login, logout, token refresh, and the
// current-user endpoint.
type AuthHandler struct {
	authService  *services.AuthService
	tokenService *services.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, tokenService *services.TokenService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
	}
}

// Signup registers a new user and returns a token pair.
// POST /users
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Signup(services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	pair, err := h.issueTokenPair(user.Email)
	if err != nil {
		apierrors.InternalError(c, "Failed to create token")
		return
	}

	c.JSON(http.StatusCreated, pair)
}

// Login authenticates credentials and returns a token pair.
// POST /access-tokens
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	pair, err := h.issueTokenPair(user.Email)
	if err != nil {
		apierrors.InternalError(c, "Failed to create token")
		return
	}

	c.JSON(http.StatusCreated, pair)
}

// Logout revokes the presented refresh token.
// DELETE /access-tokens
func (h *AuthHandler) Logout(c *gin.Context) {
	req, ok := bindRefreshToken(c)
	if !ok {
		return
	}

	if err := h.tokenService.Revoke(req); err != nil {
		apierrors.BadRequest(c, "Invalid refresh token")
		return
	}

	c.Status(http.StatusNoContent)
}

// Refresh exchanges a refresh token for a new access token.
// POST /access-tokens/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	req, ok := bindRefreshToken(c)
	if !ok {
		return
	}

	accessToken, err := h.tokenService.Refresh(req)
	if err != nil {
		apierrors.BadRequest(c, "Invalid refresh token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"jwt": accessToken})
}

// Me returns the authenticated user's profile with their avatar URL.
// GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	user, err := h.authService.GetUser(email)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func (h *AuthHandler) issueTokenPair(email string) (dto.TokenPairDTO, error) {
	accessToken, err := h.tokenService.IssueAccessToken(email)
	if err != nil {
		return dto.TokenPairDTO{}, err
	}
	refreshToken, err := h.tokenService.IssueRefreshToken(email)
	if err != nil {
		return dto.TokenPairDTO{}, err
	}
	return dto.TokenPairDTO{JWT: accessToken, RefreshToken: refreshToken}, nil
}

func bindRefreshToken(c *gin.Context) (string, bool) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		apierrors.BadRequest(c, "Missing refresh token")
		return "", false
	}
	return req.RefreshToken, true
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, validation.ErrInvalidInput):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.BadRequest(c, "Email already exist")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Invalid username or password")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User does not exist")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
