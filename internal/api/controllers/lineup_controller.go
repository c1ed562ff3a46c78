package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	dbm "github.com/zldymlg/soccom-lineup/internal/models/db_models"
	"github.com/zldymlg/soccom-lineup/internal/models/request_models"
	"github.com/zldymlg/soccom-lineup/internal/services"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
)

type LineupController struct {
	lineupService services.ILineupService
}

func NewLineupController(lineupService services.ILineupService) *LineupController {
	return &LineupController{
		lineupService: lineupService,
	}
}

// Board godoc
// @Summary Lineup dashboard
// @Description Upcoming scheduled lineups alongside recent submissions
// @Tags Lineups
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /lineups/board [get]
func (l *LineupController) Board(c *gin.Context) {
	board, err := l.lineupService.Board(c.Request.Context(), c.GetString("Role"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, board, "Board retrieved")
}

// View godoc
// @Summary View one lineup
// @Description The schedule record and/or song submission behind one id
// @Tags Lineups
// @Produce json
// @Param id path int true "Lineup id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /lineups/{id} [get]
func (l *LineupController) View(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid lineup id")
		return
	}

	view, err := l.lineupService.View(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Lineup retrieved")
}

// Submit godoc
// @Summary Submit a song lineup
// @Description Store a member's song plan for one Mass; per-part fields arrive
// as <part>_song, <part>_lyrics and <part>_files multipart entries
// @Tags Lineups
// @Accept multipart/form-data
// @Produce json
// @Param mass_date formData string true "Mass date (YYYY-MM-DD)"
// @Param mass_time formData string true "Mass time"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /lineups [post]
func (l *LineupController) Submit(c *gin.Context) {
	var req request_models.SubmitLineupRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	var slots []request_models.SlotInput
	var files []services.SlotFile
	var opened []*openedFile
	defer func() {
		for _, o := range opened {
			o.Close()
		}
	}()

	for _, part := range dbm.MassParts {
		song := c.PostForm(part.Key + "_song")
		lyrics := c.PostForm(part.Key + "_lyrics")
		if song != "" || lyrics != "" {
			slots = append(slots, request_models.SlotInput{
				PartKey:   part.Key,
				SongTitle: song,
				Lyrics:    lyrics,
			})
		}

		for _, header := range form.File[part.Key+"_files"] {
			o, oerr := openFormFile(header)
			if oerr != nil {
				utils.RespondError(c, http.StatusBadRequest, "Unreadable attachment: "+header.Filename)
				return
			}
			opened = append(opened, o)
			files = append(files, o.slotFile(part.Key))
		}
	}

	resp, err := l.lineupService.Submit(c.Request.Context(),
		c.GetString("user_email"), c.GetString("user_name"), c.GetString("Role"),
		req, slots, files)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Lineup submitted"
	if len(resp.FailedUploads) > 0 {
		message = "Lineup submitted with failed uploads"
	}
	utils.RespondSuccess(c, resp, message)
}

// EditSubmission godoc
// @Summary Edit a submission
// @Description Change songs and lyrics on a stored submission; members may
// only edit their own and are locked out within 24 hours of the Mass
// @Tags Lineups
// @Accept json
// @Produce json
// @Param id path int true "Submission id"
// @Param request body request_models.EditLineupRequest true "Edit payload"
// @Success 200 {object} utils.APIResponse
// @Failure 423 {object} utils.APIResponse
// @Router /lineups/{id} [put]
func (l *LineupController) EditSubmission(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid lineup id")
		return
	}

	var req request_models.EditLineupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	submission, err := l.lineupService.EditSubmission(c.Request.Context(), id,
		c.GetString("user_name"), c.GetString("Role"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, submission, "Submission updated")
}

// EditApproval godoc
// @Summary Edit a scheduled lineup
// @Description Update the schedule record's display fields and status
// @Tags Lineups
// @Accept json
// @Produce json
// @Param id path int true "Lineup id"
// @Param request body request_models.EditApprovalRequest true "Edit payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /lineups/{id}/approval [put]
func (l *LineupController) EditApproval(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid lineup id")
		return
	}

	var req request_models.EditApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := l.lineupService.EditApproval(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Schedule updated")
}

// ApproveNext godoc
// @Summary Approve the next pending lineup
// @Description Mark the earliest still-pending future lineup approved
// @Tags Lineups
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /lineups/approve-next [post]
func (l *LineupController) ApproveNext(c *gin.Context) {
	approved, err := l.lineupService.ApproveNext(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if approved == nil {
		utils.RespondSuccess(c, nil, "No pending lineup to approve")
		return
	}
	utils.RespondSuccess(c, approved, "Lineup approved")
}
