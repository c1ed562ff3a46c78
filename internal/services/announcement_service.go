package services

import (
	"context"
	"io"
	"time"

	"github.com/zldymlg/soccom-lineup/internal/infra"
	dbm "github.com/zldymlg/soccom-lineup/internal/models/db_models"
	"github.com/zldymlg/soccom-lineup/internal/models/request_models"
	"github.com/zldymlg/soccom-lineup/internal/repositories"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
	"go.uber.org/zap"
)

// MediaUpload is one attachment on an announcement form.
type MediaUpload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

type IAnnouncementService interface {
	ListAnnouncements(ctx context.Context) []dbm.Announcement
	CreateAnnouncement(ctx context.Context, createdBy string, request request_models.CreateAnnouncementRequest, media []MediaUpload) (*dbm.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int64) error
}

type announcementService struct {
	announcementRepo repositories.AnnouncementRepository
	blobs            infra.BlobStore
	buckets          infra.Buckets
	logger           *zap.Logger
}

func NewAnnouncementService(
	announcementRepo repositories.AnnouncementRepository,
	blobs infra.BlobStore,
	buckets infra.Buckets,
	logger *zap.Logger,
) IAnnouncementService {
	return &announcementService{
		announcementRepo: announcementRepo,
		blobs:            blobs,
		buckets:          buckets,
		logger:           logger,
	}
}

// ListAnnouncements never fails the page: the bulletin board is
// decoration around the lineup flows, so a read error degrades to an
// empty list.
func (s *announcementService) ListAnnouncements(ctx context.Context) []dbm.Announcement {
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		s.logger.Warn("list announcements", zap.Error(err))
		return []dbm.Announcement{}
	}
	return announcements
}

// CreateAnnouncement posts a bulletin entry. Media uploads are best
// effort: a failed attachment is skipped with a warning and the
// announcement is created with whatever uploaded.
func (s *announcementService) CreateAnnouncement(ctx context.Context, createdBy string, request request_models.CreateAnnouncementRequest, media []MediaUpload) (*dbm.Announcement, error) {
	var mediaURLs []string
	for _, m := range media {
		key, err := utils.AnnouncementMediaKey(m.FileName, time.Now())
		if err != nil {
			s.logger.Warn("derive announcement media key", zap.String("file", m.FileName), zap.Error(err))
			continue
		}
		if err := s.blobs.Upload(ctx, s.buckets.Files, key, m.Content, m.ContentType); err != nil {
			s.logger.Warn("upload announcement media", zap.String("key", key), zap.Error(err))
			continue
		}
		mediaURLs = append(mediaURLs, s.blobs.PublicURL(s.buckets.Files, key))
	}

	announcement := &dbm.Announcement{
		Title:     request.Title,
		Content:   request.Content,
		CreatedBy: createdBy,
		IsActive:  true,
		MediaURLs: mediaURLs,
	}
	if err := s.announcementRepo.Insert(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *announcementService) DeleteAnnouncement(ctx context.Context, id int64) error {
	return s.announcementRepo.Delete(ctx, id)
}
