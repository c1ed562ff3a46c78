package db_models

import "time"

type Announcement struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedBy string     `json:"created_by"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	IsActive  bool       `json:"is_active"`
	MediaURLs []string   `json:"media_urls"`
}
