package account_fx

import (
	"github.com/zldymlg/soccom-lineup/internal/infra"
	"github.com/zldymlg/soccom-lineup/internal/repositories"
	"github.com/zldymlg/soccom-lineup/internal/services"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	credentialRepo repositories.CredentialRepository,
	blobs infra.BlobStore,
	buckets infra.Buckets,
	logger *zap.Logger,
) services.IAccountService {
	return services.NewAccountService(accountRepo, credentialRepo, blobs, buckets, logger)
}
