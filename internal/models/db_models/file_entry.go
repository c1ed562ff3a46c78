package db_models

import "time"

// FileEntry is one row of the storage browser, mined from a blob key:
// the uploader email and Mass date come from the folder segments, the
// part from the file-name prefix.
type FileEntry struct {
	URL           string     `json:"url"`
	FileName      string     `json:"file_name"`
	Part          string     `json:"part"`
	UploaderEmail string     `json:"uploader_email,omitempty"`
	Date          string     `json:"date,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}
