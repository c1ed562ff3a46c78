package files_fx

import (
	"github.com/zldymlg/soccom-lineup/internal/infra"
	"github.com/zldymlg/soccom-lineup/internal/services"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(provideFilesService)

func provideFilesService(blobs infra.BlobStore, buckets infra.Buckets, logger *zap.Logger) services.IFilesService {
	return services.NewFilesService(blobs, buckets, logger)
}
