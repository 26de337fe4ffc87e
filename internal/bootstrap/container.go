package bootstrap

import (
	"tg-notegraph-be/internal/config"
	"tg-notegraph-be/internal/controller"
	"tg-notegraph-be/internal/pkg/logger"
	"tg-notegraph-be/internal/repository/unitofwork"
	"tg-notegraph-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	UserController  controller.IUserController
	NoteController  controller.INoteController
	TagController   controller.ITagController
	GraphController controller.IGraphController
	TaskController  controller.ITaskController

	// Exposed for graceful shutdown
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Services
	userService := service.NewUserService(uowFactory, sysLogger)
	noteService := service.NewNoteService(uowFactory, sysLogger)
	tagService := service.NewTagService(uowFactory, sysLogger)
	graphService := service.NewGraphService(uowFactory, sysLogger)
	taskService := service.NewTaskService(uowFactory, sysLogger)

	// 3. Controllers
	return &Container{
		UserController:  controller.NewUserController(userService),
		NoteController:  controller.NewNoteController(noteService),
		TagController:   controller.NewTagController(tagService),
		GraphController: controller.NewGraphController(graphService),
		TaskController:  controller.NewTaskController(taskService),
		Logger:          sysLogger,
	}
}
