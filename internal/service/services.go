package service

import (
	"github.com/jvreeken/boodschapp/internal/config"
	"github.com/jvreeken/boodschapp/internal/logger"
	"github.com/jvreeken/boodschapp/internal/store"
)

type Services struct {
	AuthService AuthService
	ListService ListService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		ListService: NewListService(storages.ListRepository, logger),
	}
}
