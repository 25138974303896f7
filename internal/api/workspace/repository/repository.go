package workspaceRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Task:       &taskRepository{q: sqlExecutor, log: r.log},
		Note:       &noteRepository{q: sqlExecutor, log: r.log},
		Habit:      &habitRepository{q: sqlExecutor, log: r.log},
		Reflection: &reflectionRepository{q: sqlExecutor, log: r.log},
		Calendar:   &calendarRepository{q: sqlExecutor, log: r.log},
		Commit:     commitFunc,
		Rollback:   rollbackFunc,
	}, nil
}

type Client struct {
	Task interface {
		CreateTask(c context.Context, task entity.Task) error
		GetTaskByID(c context.Context, id string) (entity.Task, error)
		GetTasksByUserID(c context.Context, userID string) ([]entity.Task, error)
		UpdateTask(c context.Context, task entity.Task) error
		DeleteTask(c context.Context, id string) error
	}

	Note interface {
		CreateNote(c context.Context, note entity.Note) error
		GetNoteByID(c context.Context, id string) (entity.Note, error)
		GetNotesByUserID(c context.Context, userID string) ([]entity.Note, error)
		UpdateNote(c context.Context, note entity.Note) error
		DeleteNote(c context.Context, id string) error
	}

	Habit interface {
		CreateHabit(c context.Context, habit entity.Habit) error
		GetHabitByID(c context.Context, id string) (entity.Habit, error)
		GetHabitsByUserID(c context.Context, userID string) ([]entity.Habit, error)
		UpdateHabit(c context.Context, habit entity.Habit) error
		DeleteHabit(c context.Context, id string) error
		UpsertEntry(c context.Context, entry entity.HabitEntry) error
		GetEntriesByHabitID(c context.Context, habitID string) ([]entity.HabitEntry, error)
	}

	Reflection interface {
		CreateReflection(c context.Context, reflection entity.Reflection) error
		GetReflectionByID(c context.Context, id string) (entity.Reflection, error)
		GetReflectionsByUserID(c context.Context, userID string) ([]entity.Reflection, error)
		UpdateReflection(c context.Context, reflection entity.Reflection) error
		DeleteReflection(c context.Context, id string) error
	}

	Calendar interface {
		CreateEvent(c context.Context, event entity.CalendarEvent) error
		GetEventByID(c context.Context, id string) (entity.CalendarEvent, error)
		GetEventsByUserID(c context.Context, userID string) ([]entity.CalendarEvent, error)
		UpdateEvent(c context.Context, event entity.CalendarEvent) error
		DeleteEvent(c context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type taskRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type noteRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type habitRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type reflectionRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type calendarRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
