package lineup_fx

import (
	"github.com/zldymlg/soccom-lineup/internal/infra"
	"github.com/zldymlg/soccom-lineup/internal/repositories"
	"github.com/zldymlg/soccom-lineup/internal/services"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideLineupRepo, provideSubmissionRepo, provideLineupService)

func provideLineupRepo(db *gorm.DB) repositories.LineupRepository {
	return repositories.NewLineupRepository(db)
}

func provideSubmissionRepo(db *gorm.DB) repositories.SubmissionRepository {
	return repositories.NewSubmissionRepository(db)
}

func provideLineupService(
	lineupRepo repositories.LineupRepository,
	submissionRepo repositories.SubmissionRepository,
	blobs infra.BlobStore,
	buckets infra.Buckets,
	logger *zap.Logger,
) services.ILineupService {
	return services.NewLineupService(lineupRepo, submissionRepo, blobs, buckets, logger)
}
