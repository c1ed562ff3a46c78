package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zldymlg/soccom-lineup/internal/models/request_models"
	"github.com/zldymlg/soccom-lineup/internal/services"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
)

type AccountController struct {
	accountService services.IAccountService
}

func NewAccountController(accountService services.IAccountService) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// List godoc
// @Summary List member accounts
// @Description List every account on the roster
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /accounts [get]
func (a *AccountController) List(c *gin.Context) {
	accounts, err := a.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, accounts, "Accounts retrieved")
}

// Create godoc
// @Summary Create a member account
// @Description Provision a member row, credentials and profile picture in one call
// @Tags Accounts
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Display name"
// @Param email formData string true "Email"
// @Param position formData string true "Role / position"
// @Param password formData string true "Initial password"
// @Param profile formData file true "Profile picture"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts [post]
func (a *AccountController) Create(c *gin.Context) {
	var req request_models.CreateAccountRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	header, err := c.FormFile("profile")
	if err != nil {
		utils.HandleServiceError(c, utils.ErrProfileRequired)
		return
	}
	picture, err := openFormFile(header)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unreadable profile picture")
		return
	}
	defer picture.Close()

	account, err := a.accountService.CreateAccount(c.Request.Context(), req, picture.profileUpload())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account created")
}

// Update godoc
// @Summary Update a member account
// @Description Update roster fields; a new profile picture is optional
// @Tags Accounts
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Account id"
// @Param email query string true "Current email of the account"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /accounts/{id} [put]
func (a *AccountController) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid account id")
		return
	}

	var req request_models.UpdateAccountRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	// the lookup email may differ from the new one while renaming
	email := c.Query("email")
	if email == "" {
		email = req.Email
	}

	var picture *services.ProfileUpload
	if header, ferr := c.FormFile("profile"); ferr == nil {
		opened, oerr := openFormFile(header)
		if oerr != nil {
			utils.RespondError(c, http.StatusBadRequest, "Unreadable profile picture")
			return
		}
		defer opened.Close()
		picture = opened.profileUpload()
	}

	account, err := a.accountService.UpdateAccount(c.Request.Context(), id, email, req, picture)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account updated")
}

// Delete godoc
// @Summary Delete a member account
// @Tags Accounts
// @Produce json
// @Param id path int true "Account id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /accounts/{id} [delete]
func (a *AccountController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid account id")
		return
	}

	if err := a.accountService.DeleteAccount(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account deleted")
}
