package response_models

import (
	dbm "github.com/zldymlg/soccom-lineup/internal/models/db_models"
)

// LineupBoardResponse is the presenter dashboard: scheduled lineups
// alongside recent raw submissions, fetched independently.
type LineupBoardResponse struct {
	Upcoming    []dbm.LineupApproval   `json:"upcoming"`
	Submissions []dbm.LineupSubmission `json:"submissions"`
}

// SubmitLineupResponse reports the persisted submission plus any
// attachments that failed to upload; the row is written with the
// successful subset only.
type SubmitLineupResponse struct {
	Lineup        *dbm.LineupSubmission `json:"lineup"`
	FailedUploads []FailedUpload        `json:"failed_uploads,omitempty"`
}

type FailedUpload struct {
	PartKey  string `json:"part_key"`
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

// LineupViewResponse is the detail view of one lineup id. The schedule
// record and the song submission live in different tables under the
// same id space, so either side may be absent.
type LineupViewResponse struct {
	Approval   *dbm.LineupApproval   `json:"approval,omitempty"`
	Submission *dbm.LineupSubmission `json:"submission,omitempty"`
}
