package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zldymlg/soccom-lineup/internal/models/request_models"
	"github.com/zldymlg/soccom-lineup/internal/services"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
)

type AuthController struct {
	authService services.IAuthService
}

func NewAuthController(authService services.IAuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login godoc
// @Summary Sign in
// @Description Authenticate a choir member and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Login successful")
}

// Logout godoc
// @Summary Sign out
// @Description Drop the cached session for the signed-in member
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	a.authService.Logout(c.GetString("user_email"))
	utils.RespondSuccess(c, nil, "Logged out")
}

// Me godoc
// @Summary Current session
// @Description Return the signed-in member's session fields
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /auth/me [get]
func (a *AuthController) Me(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"email": c.GetString("user_email"),
		"name":  c.GetString("user_name"),
		"role":  c.GetString("Role"),
	}, "Session active")
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Mail a one-time reset code to the account's address
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RequestForgotPassword true "Email payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /auth/forgot-password [post]
func (a *AuthController) ForgotPassword(c *gin.Context) {
	var req request_models.RequestForgotPassword
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Reset code sent")
}

// VerifyResetCode godoc
// @Summary Verify a reset code
// @Description Check a reset code before showing the new-password form
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RequestVerifyResetCode true "Code payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/verify-reset-code [post]
func (a *AuthController) VerifyResetCode(c *gin.Context) {
	var req request_models.RequestVerifyResetCode
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.authService.VerifyResetCode(req.Token); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Code valid")
}

// ResetPassword godoc
// @Summary Reset password
// @Description Set a new password using a previously mailed reset code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.ResetPasswordRequest true "Reset payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/reset-password [post]
func (a *AuthController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := a.authService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password updated")
}
