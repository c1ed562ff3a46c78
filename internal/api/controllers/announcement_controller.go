package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zldymlg/soccom-lineup/internal/models/request_models"
	"github.com/zldymlg/soccom-lineup/internal/services"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
)

type AnnouncementController struct {
	announcementService services.IAnnouncementService
}

func NewAnnouncementController(announcementService services.IAnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// List godoc
// @Summary List announcements
// @Description Active announcements, newest first; never fails the page
// @Tags Announcements
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /announcements [get]
func (a *AnnouncementController) List(c *gin.Context) {
	announcements := a.announcementService.ListAnnouncements(c.Request.Context())
	utils.RespondSuccess(c, announcements, "Announcements retrieved")
}

// Create godoc
// @Summary Post an announcement
// @Description Create a bulletin entry with optional media attachments
// @Tags Announcements
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param content formData string true "Body text"
// @Param media formData file false "Attachments"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /announcements [post]
func (a *AnnouncementController) Create(c *gin.Context) {
	var req request_models.CreateAnnouncementRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	var media []services.MediaUpload
	if form, err := c.MultipartForm(); err == nil {
		for _, header := range form.File["media"] {
			opened, oerr := openFormFile(header)
			if oerr != nil {
				utils.RespondError(c, http.StatusBadRequest, "Unreadable attachment: "+header.Filename)
				return
			}
			defer opened.Close()
			media = append(media, opened.mediaUpload())
		}
	}

	announcement, err := a.announcementService.CreateAnnouncement(
		c.Request.Context(), c.GetString("user_email"), req, media)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, announcement, "Announcement posted")
}

// Delete godoc
// @Summary Delete an announcement
// @Tags Announcements
// @Produce json
// @Param id path int true "Announcement id"
// @Success 200 {object} utils.APIResponse
// @Router /announcements/{id} [delete]
func (a *AnnouncementController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid announcement id")
		return
	}

	if err := a.announcementService.DeleteAnnouncement(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Announcement deleted")
}
