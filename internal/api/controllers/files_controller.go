package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/zldymlg/soccom-lineup/internal/services"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
)

type FilesController struct {
	filesService services.IFilesService
}

func NewFilesController(filesService services.IFilesService) *FilesController {
	return &FilesController{
		filesService: filesService,
	}
}

// Browse godoc
// @Summary Browse uploaded files
// @Description Flatten the upload bucket into one newest-first list with
// uploader, Mass date and part mined from each key
// @Tags Files
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /files [get]
func (f *FilesController) Browse(c *gin.Context) {
	entries, err := f.filesService.BrowseFiles(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entries, "Files retrieved")
}
