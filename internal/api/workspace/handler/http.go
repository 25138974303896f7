package workspaceHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	workspaceService "github.com/ranjini26/lifeos/internal/api/workspace/service"
	"github.com/ranjini26/lifeos/internal/middleware"
)

type WorkspaceHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	workspaceService workspaceService.IWorkspaceService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	workspaceService workspaceService.IWorkspaceService,
) *WorkspaceHandler {
	return &WorkspaceHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		workspaceService: workspaceService,
	}
}

func (h *WorkspaceHandler) Start(srv fiber.Router) {
	workspace := srv.Group("/workspace")

	workspace.Post("/tasks", h.middleware.NewTokenMiddleware, h.CreateTask)
	workspace.Get("/tasks", h.middleware.NewTokenMiddleware, h.GetTasks)
	workspace.Get("/tasks/:id", h.middleware.NewTokenMiddleware, h.GetTaskByID)
	workspace.Put("/tasks", h.middleware.NewTokenMiddleware, h.UpdateTask)
	workspace.Delete("/tasks/:id", h.middleware.NewTokenMiddleware, h.DeleteTask)

	workspace.Post("/notes", h.middleware.NewTokenMiddleware, h.CreateNote)
	workspace.Get("/notes", h.middleware.NewTokenMiddleware, h.GetNotes)
	workspace.Get("/notes/:id", h.middleware.NewTokenMiddleware, h.GetNoteByID)
	workspace.Put("/notes", h.middleware.NewTokenMiddleware, h.UpdateNote)
	workspace.Delete("/notes/:id", h.middleware.NewTokenMiddleware, h.DeleteNote)

	workspace.Post("/habits", h.middleware.NewTokenMiddleware, h.CreateHabit)
	workspace.Get("/habits", h.middleware.NewTokenMiddleware, h.GetHabits)
	workspace.Put("/habits", h.middleware.NewTokenMiddleware, h.UpdateHabit)
	workspace.Delete("/habits/:id", h.middleware.NewTokenMiddleware, h.DeleteHabit)
	workspace.Post("/habits/entries", h.middleware.NewTokenMiddleware, h.ToggleHabitEntry)
	workspace.Get("/habits/:id/entries", h.middleware.NewTokenMiddleware, h.GetHabitEntries)

	workspace.Post("/reflections", h.middleware.NewTokenMiddleware, h.CreateReflection)
	workspace.Get("/reflections", h.middleware.NewTokenMiddleware, h.GetReflections)
	workspace.Put("/reflections", h.middleware.NewTokenMiddleware, h.UpdateReflection)
	workspace.Delete("/reflections/:id", h.middleware.NewTokenMiddleware, h.DeleteReflection)

	workspace.Post("/events", h.middleware.NewTokenMiddleware, h.CreateEvent)
	workspace.Get("/events", h.middleware.NewTokenMiddleware, h.GetEvents)
	workspace.Put("/events", h.middleware.NewTokenMiddleware, h.UpdateEvent)
	workspace.Delete("/events/:id", h.middleware.NewTokenMiddleware, h.DeleteEvent)
}
