package memcache_fx

import (
	mem "github.com/zldymlg/soccom-lineup/pkg/memcache"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideResetTokens, provideSessions)

func provideResetTokens() mem.ResetTokenStore {
	return mem.NewResetTokens()
}

func provideSessions() mem.SessionStore {
	return mem.NewSessions()
}
