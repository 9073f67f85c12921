// Package handlers contains the gin HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coachdesk/internal/application/auth/usecases"
	"coachdesk/internal/shared/config"
	"coachdesk/internal/shared/logger"
	"coachdesk/internal/shared/utils"
)

type AuthHandler struct {
	signupUseCase *usecases.SignupUseCase
	loginUseCase  *usecases.LoginUseCase
	logger        logger.Interface
	cookieConfig  config.CookieConfig
	jwtConfig     config.JWTConfig
}

func NewAuthHandler(
	signupUC *usecases.SignupUseCase,
	loginUC *usecases.LoginUseCase,
	logger logger.Interface,
	cookieConfig config.CookieConfig,
	jwtConfig config.JWTConfig,
) *AuthHandler {
	return &AuthHandler{
		signupUseCase: signupUC,
		loginUseCase:  loginUC,
		logger:        logger,
		cookieConfig:  cookieConfig,
		jwtConfig:     jwtConfig,
	}
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	TrainerID   uint   `json:"trainer_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Plan        string `json:"plan"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.signupUseCase.Execute(c.Request.Context(), usecases.SignupCommand{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSessionCookies(c, result)
	utils.CreatedResponse(c, h.toAuthResponse(result), "Account created successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSessionCookies(c, result)
	utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", h.toAuthResponse(result))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) setSessionCookies(c *gin.Context, result *usecases.AuthResult) {
	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	refreshMaxAge := h.jwtConfig.RefreshExpDays * 24 * 3600
	utils.SetAuthCookies(c, h.cookieConfig,
		result.Tokens.AccessToken, result.Tokens.RefreshToken,
		accessMaxAge, refreshMaxAge)
}

func (h *AuthHandler) toAuthResponse(result *usecases.AuthResult) authResponse {
	return authResponse{
		TrainerID:   result.TrainerID,
		Email:       result.Email,
		Name:        result.Name,
		Plan:        result.Plan,
		AccessToken: result.Tokens.AccessToken,
		ExpiresIn:   result.Tokens.ExpiresIn,
	}
}
