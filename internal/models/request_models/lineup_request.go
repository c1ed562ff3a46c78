package request_models

// SubmitLineupRequest carries the scalar fields of a submission form.
// Per-part song titles, lyrics and file attachments are read from the
// multipart form by the controller (<part>_song, <part>_lyrics,
// <part>_files) since the part set is fixed but each slot is optional.
type SubmitLineupRequest struct {
	MassDate string `form:"mass_date" binding:"required,massdate"`
	MassTime string `form:"mass_time" binding:"required,masstime"`
}

// SlotInput is one assembled mass-part slot of a submission form.
type SlotInput struct {
	PartKey   string
	SongTitle string
	Lyrics    string
}

// EditLineupRequest is the admin-side edit of a submission: scalar
// fields plus per-part song/lyrics, no file changes.
type EditLineupRequest struct {
	Name     string            `json:"name" binding:"required"`
	Position string            `json:"position"`
	MassDate string            `json:"mass_date"`
	MassTime string            `json:"mass_time"`
	Songs    map[string]string `json:"songs"`
	Lyrics   map[string]string `json:"lyrics"`
}

// EditApprovalRequest updates a scheduled lineup's display fields and
// approval status.
type EditApprovalRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position"`
	Status   string `json:"status" binding:"required,oneof=pending approved rejected completed Pending Approved Rejected Completed"`
}
