package announcement_fx

import (
	"github.com/zldymlg/soccom-lineup/internal/infra"
	"github.com/zldymlg/soccom-lineup/internal/repositories"
	"github.com/zldymlg/soccom-lineup/internal/services"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideAnnouncementRepo, provideAnnouncementService)

func provideAnnouncementRepo(db *gorm.DB) repositories.AnnouncementRepository {
	return repositories.NewAnnouncementRepository(db)
}

func provideAnnouncementService(
	announcementRepo repositories.AnnouncementRepository,
	blobs infra.BlobStore,
	buckets infra.Buckets,
	logger *zap.Logger,
) services.IAnnouncementService {
	return services.NewAnnouncementService(announcementRepo, blobs, buckets, logger)
}
