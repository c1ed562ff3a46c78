package controllers_fx

import (
	"github.com/zldymlg/soccom-lineup/internal/api/controllers"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewLineupController),
	fx.Provide(controllers.NewAnnouncementController),
	fx.Provide(controllers.NewFilesController))
