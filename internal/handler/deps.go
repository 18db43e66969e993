package handler

import (
	"carai/internal/app/auth"
	"carai/internal/app/session"
	"carai/internal/configs"
)

type AppDeps struct {
	Auth     *auth.Manager
	Sessions *session.Manager
	Config   *configs.AppConfig
}
