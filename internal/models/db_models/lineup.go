package db_models

import "time"

// Approval statuses on scheduled lineups. Stored values vary in casing
// ("Pending", "Approved", ...) and are lowercased on read.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// MassPart is one named segment of a Mass that can carry a song, lyric
// notes, and attached files. Key doubles as the column-name stem of the
// submission table: <key>, <key>lyrics, <key>storage.
type MassPart struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// MassParts is the fixed order of segments in a lineup. The column
// stems come from the historical submission table and are not
// spell-corrected for compatibility.
var MassParts = []MassPart{
	{Key: "procesional", Label: "Processional"},
	{Key: "kyrie", Label: "Kyrie"},
	{Key: "gloria", Label: "Gloria"},
	{Key: "psalm", Label: "Responsorial Psalm"},
	{Key: "alleluia", Label: "Alleluia"},
	{Key: "offertorium", Label: "Offertory"},
	{Key: "mysteriumfidei", Label: "Sanctus"},
	{Key: "amen", Label: "Amen"},
	{Key: "agnusdei", Label: "Agnus Dei"},
	{Key: "communion", Label: "Communion"},
	{Key: "recession", Label: "Recessional"},
}

// MassPartSlot is the filled-in state of one MassPart on a submission.
type MassPartSlot struct {
	Part      MassPart `json:"part"`
	SongTitle string   `json:"song_title"`
	Lyrics    string   `json:"lyrics"`
	FileURLs  []string `json:"file_urls"`
}

// LineupApproval is the administrator-facing record of a scheduled
// lineup, keyed by scheduled timestamp. It is reconciled with
// submissions only by matching submitter names.
type LineupApproval struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Position    string     `json:"position"`
	ProfileURL  string     `json:"profile_url,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Status      string     `json:"status"`
}

// LineupSubmission is one choir member's song plan for one Mass
// occurrence, with one slot per MassPart.
type LineupSubmission struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Position   string         `json:"position"`
	MassDate   string         `json:"mass_date"`
	MassTime   string         `json:"mass_time"`
	ProfileURL string         `json:"profile_url,omitempty"`
	CreatedAt  *time.Time     `json:"created_at,omitempty"`
	Slots      []MassPartSlot `json:"slots"`
}

// Slot returns the slot for the given part key, or nil.
func (s *LineupSubmission) Slot(partKey string) *MassPartSlot {
	for i := range s.Slots {
		if s.Slots[i].Part.Key == partKey {
			return &s.Slots[i]
		}
	}
	return nil
}
