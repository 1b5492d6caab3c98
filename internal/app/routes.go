package app

import (
	"github.com/gin-gonic/gin"

	"github.com/notedesk/core/internal/middleware"
	"github.com/notedesk/core/internal/modules/backup"
	"github.com/notedesk/core/internal/modules/chat"
	"github.com/notedesk/core/internal/modules/health"
	"github.com/notedesk/core/internal/modules/note"
	"github.com/notedesk/core/internal/modules/render"
	"github.com/notedesk/core/internal/modules/settings"
	"github.com/notedesk/core/internal/modules/validate"
	"github.com/notedesk/core/internal/pkg/response"
)

func (a *App) registerRoutes() error {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api")
	if a.rdb != nil {
		api.Use(middleware.Idempotence(a.rdb.Raw()))
	}

	settingsSvc := settings.NewService(a.db)
	noteSvc := note.NewService(a.db, note.NewCodec(a.logger))

	backupSvc, err := backup.NewService(noteSvc, a.cfg, a.logger)
	if err != nil {
		return err
	}

	chatSvc := chat.NewService(a.cfg, chat.NewHistory(a.rdb), settingsSvc, a.logger)

	loc, err := parseTimezoneLocation(a.cfg.Timezone)
	if err != nil {
		return err
	}
	validateSvc := validate.NewService(a.db, loc)

	note.NewHandler(noteSvc).RegisterRoutes(api)
	render.NewHandler(noteSvc).RegisterRoutes(api)
	chat.NewHandler(chatSvc).RegisterRoutes(api)
	backup.NewHandler(backupSvc).RegisterRoutes(api)
	settings.NewHandler(settingsSvc).RegisterRoutes(api)
	validate.NewHandler(validateSvc).RegisterRoutes(api)
	health.RegisterRoutes(api, a.db, a.rdb)

	return nil
}
