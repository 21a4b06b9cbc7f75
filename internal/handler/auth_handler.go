package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blacklane/ai-content-generator-for-contentful/internal/service"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	User    *service.User `json:"user"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Success bool          `json:"success"`
	User    *service.User `json:"user"`
}

// RegisterRoutes registers the public auth routes.
func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/auth/login", h.Login)
	g.POST("/auth/verify", h.Verify)
}

// Login authenticates a user.
// @Summary Login
// @Description Authenticate with username/password and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "Login credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	resp, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired), errors.Is(err, service.ErrPasswordRequired):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "username and password are required"})
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		default:
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "authentication failed"})
		}
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Token:   resp.Token,
		User:    resp.User,
	})
}

// Verify validates a previously issued token.
// @Summary Verify token
// @Description Validate a bearer token and return its identity
// @Tags auth
// @Accept json
// @Produce json
// @Param request body verifyRequest true "Token to verify"
// @Success 200 {object} verifyResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if req.Token == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "token is required"})
	}

	user, err := h.service.VerifyToken(req.Token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid or expired token"})
	}

	return c.JSON(http.StatusOK, verifyResponse{Success: true, User: user})
}
