package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	dbm "github.com/zldymlg/soccom-lineup/internal/models/db_models"
)

type AnnouncementRepository interface {
	List(ctx context.Context) ([]dbm.Announcement, error)
	Insert(ctx context.Context, a *dbm.Announcement) error
	Delete(ctx context.Context, id int64) error
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func announcementFromRow(row map[string]interface{}) dbm.Announcement {
	return dbm.Announcement{
		ID:        int64Field(row, "id"),
		Title:     stringField(row, "title"),
		Content:   stringField(row, "content"),
		CreatedBy: stringField(row, "created_by"),
		CreatedAt: timeField(row, "created_at"),
		IsActive:  boolField(row, "is_active"),
		MediaURLs: NormalizeFileList(ResolveField(row, "media_urls")),
	}
}

func (r *announcementRepository) List(ctx context.Context) ([]dbm.Announcement, error) {
	var rows []map[string]interface{}
	err := r.db.WithContext(ctx).
		Table(announcementSchema.Table).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	announcements := make([]dbm.Announcement, 0, len(rows))
	for _, row := range rows {
		announcements = append(announcements, announcementFromRow(row))
	}
	return announcements, nil
}

func (r *announcementRepository) Insert(ctx context.Context, a *dbm.Announcement) error {
	return r.db.WithContext(ctx).
		Table(announcementSchema.Table).
		Create(map[string]interface{}{
			"title":      a.Title,
			"content":    a.Content,
			"created_by": a.CreatedBy,
			"media_urls": storageValue(a.MediaURLs),
			"is_active":  a.IsActive,
		}).Error
}

func (r *announcementRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", quoteIdent(announcementSchema.Table)), id).Error
}
