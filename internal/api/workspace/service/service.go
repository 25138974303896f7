package workspaceService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/workspace"
	workspaceRepository "github.com/ranjini26/lifeos/internal/api/workspace/repository"
	"github.com/ranjini26/lifeos/internal/entity"
	"github.com/ranjini26/lifeos/pkg/utils"
)

type IWorkspaceService interface {
	CreateTask(ctx context.Context, req workspace.CreateTaskRequest) (entity.Task, error)
	GetTaskByID(ctx context.Context, id string, userID string) (entity.Task, error)
	GetTasksByUserID(ctx context.Context, userID string) ([]entity.Task, error)
	UpdateTask(ctx context.Context, req workspace.UpdateTaskRequest) error
	DeleteTask(ctx context.Context, id string, userID string) error

	CreateNote(ctx context.Context, req workspace.CreateNoteRequest) (entity.Note, error)
	GetNoteByID(ctx context.Context, id string, userID string) (entity.Note, error)
	GetNotesByUserID(ctx context.Context, userID string) ([]entity.Note, error)
	UpdateNote(ctx context.Context, req workspace.UpdateNoteRequest) error
	DeleteNote(ctx context.Context, id string, userID string) error

	CreateHabit(ctx context.Context, req workspace.CreateHabitRequest) (entity.Habit, error)
	GetHabitsByUserID(ctx context.Context, userID string) ([]entity.Habit, error)
	UpdateHabit(ctx context.Context, req workspace.UpdateHabitRequest) error
	DeleteHabit(ctx context.Context, id string, userID string) error
	ToggleHabitEntry(ctx context.Context, req workspace.ToggleHabitEntryRequest) error
	GetHabitEntries(ctx context.Context, habitID string, userID string) ([]entity.HabitEntry, error)

	CreateReflection(ctx context.Context, req workspace.CreateReflectionRequest) (entity.Reflection, error)
	GetReflectionsByUserID(ctx context.Context, userID string) ([]entity.Reflection, error)
	UpdateReflection(ctx context.Context, req workspace.UpdateReflectionRequest) error
	DeleteReflection(ctx context.Context, id string, userID string) error

	CreateEvent(ctx context.Context, req workspace.CreateEventRequest) (entity.CalendarEvent, error)
	GetEventsByUserID(ctx context.Context, userID string) ([]entity.CalendarEvent, error)
	UpdateEvent(ctx context.Context, req workspace.UpdateEventRequest) error
	DeleteEvent(ctx context.Context, id string, userID string) error
}

type workspaceService struct {
	log                 *logrus.Logger
	workspaceRepository workspaceRepository.Repository
	utils               utils.IUtils
}

func NewWorkspaceService(log *logrus.Logger, wr workspaceRepository.Repository, utils utils.IUtils) IWorkspaceService {
	return &workspaceService{
		log:                 log,
		workspaceRepository: wr,
		utils:               utils,
	}
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
