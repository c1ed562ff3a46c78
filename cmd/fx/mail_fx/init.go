package mail_fx

import (
	"github.com/zldymlg/soccom-lineup/internal/services"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	return services.NewSMTPMailService(services.LoadSMTPConfigFromEnv())
}
