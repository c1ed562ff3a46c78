package auth_fx

import (
	"github.com/zldymlg/soccom-lineup/internal/repositories"
	"github.com/zldymlg/soccom-lineup/internal/services"
	mem "github.com/zldymlg/soccom-lineup/pkg/memcache"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideCredentialRepo, provideAuthService)

func provideCredentialRepo(db *gorm.DB) repositories.CredentialRepository {
	return repositories.NewCredentialRepository(db)
}

func provideAuthService(
	accountRepo repositories.AccountRepository,
	credentialRepo repositories.CredentialRepository,
	sessions mem.SessionStore,
	resetTokens mem.ResetTokenStore,
	mailService services.IMailService,
	logger *zap.Logger,
) services.IAuthService {
	return services.NewAuthService(accountRepo, credentialRepo, sessions, resetTokens, mailService, logger)
}
