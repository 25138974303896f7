package workspaceService

import (
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/workspace"
	workspaceRepository "github.com/ranjini26/lifeos/internal/api/workspace/repository"
	"github.com/ranjini26/lifeos/internal/entity"
)

type fakeTaskStore struct {
	tasks map[string]entity.Task
}

func (f *fakeTaskStore) CreateTask(ctx context.Context, task entity.Task) error {
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskStore) GetTaskByID(ctx context.Context, id string) (entity.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return entity.Task{}, workspace.ErrTaskNotFound
	}
	return task, nil
}

func (f *fakeTaskStore) GetTasksByUserID(ctx context.Context, userID string) ([]entity.Task, error) {
	var tasks []entity.Task
	for _, task := range f.tasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (f *fakeTaskStore) UpdateTask(ctx context.Context, task entity.Task) error {
	if _, ok := f.tasks[task.ID]; !ok {
		return workspace.ErrTaskNotFound
	}
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskStore) DeleteTask(ctx context.Context, id string) error {
	if _, ok := f.tasks[id]; !ok {
		return workspace.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

type fakeHabitStore struct {
	habits  map[string]entity.Habit
	entries map[string]entity.HabitEntry
}

func (f *fakeHabitStore) CreateHabit(ctx context.Context, habit entity.Habit) error {
	f.habits[habit.ID] = habit
	return nil
}

func (f *fakeHabitStore) GetHabitByID(ctx context.Context, id string) (entity.Habit, error) {
	habit, ok := f.habits[id]
	if !ok {
		return entity.Habit{}, workspace.ErrHabitNotFound
	}
	return habit, nil
}

func (f *fakeHabitStore) GetHabitsByUserID(ctx context.Context, userID string) ([]entity.Habit, error) {
	var habits []entity.Habit
	for _, habit := range f.habits {
		if habit.UserID == userID {
			habits = append(habits, habit)
		}
	}
	return habits, nil
}

func (f *fakeHabitStore) UpdateHabit(ctx context.Context, habit entity.Habit) error {
	if _, ok := f.habits[habit.ID]; !ok {
		return workspace.ErrHabitNotFound
	}
	f.habits[habit.ID] = habit
	return nil
}

func (f *fakeHabitStore) DeleteHabit(ctx context.Context, id string) error {
	if _, ok := f.habits[id]; !ok {
		return workspace.ErrHabitNotFound
	}
	delete(f.habits, id)
	return nil
}

func (f *fakeHabitStore) UpsertEntry(ctx context.Context, entry entity.HabitEntry) error {
	key := entry.HabitID + "|" + entry.Date.Format("2006-01-02")
	f.entries[key] = entry
	return nil
}

func (f *fakeHabitStore) GetEntriesByHabitID(ctx context.Context, habitID string) ([]entity.HabitEntry, error) {
	var entries []entity.HabitEntry
	for _, entry := range f.entries {
		if entry.HabitID == habitID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

type fakeCalendarStore struct {
	events map[string]entity.CalendarEvent
}

func (f *fakeCalendarStore) CreateEvent(ctx context.Context, event entity.CalendarEvent) error {
	f.events[event.ID] = event
	return nil
}

func (f *fakeCalendarStore) GetEventByID(ctx context.Context, id string) (entity.CalendarEvent, error) {
	event, ok := f.events[id]
	if !ok {
		return entity.CalendarEvent{}, workspace.ErrEventNotFound
	}
	return event, nil
}

func (f *fakeCalendarStore) GetEventsByUserID(ctx context.Context, userID string) ([]entity.CalendarEvent, error) {
	var events []entity.CalendarEvent
	for _, event := range f.events {
		if event.UserID == userID {
			events = append(events, event)
		}
	}
	return events, nil
}

func (f *fakeCalendarStore) UpdateEvent(ctx context.Context, event entity.CalendarEvent) error {
	if _, ok := f.events[event.ID]; !ok {
		return workspace.ErrEventNotFound
	}
	f.events[event.ID] = event
	return nil
}

func (f *fakeCalendarStore) DeleteEvent(ctx context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return workspace.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

type fakeWorkspaceRepository struct {
	tasks    *fakeTaskStore
	habits   *fakeHabitStore
	calendar *fakeCalendarStore
}

func (f *fakeWorkspaceRepository) NewClient(tx bool) (workspaceRepository.Client, error) {
	return workspaceRepository.Client{
		Task:     f.tasks,
		Habit:    f.habits,
		Calendar: f.calendar,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeUtils struct {
	counter int
}

func (f *fakeUtils) NewULIDFromTimestamp(t time.Time) (string, error) {
	f.counter++
	return fmt.Sprintf("ulid-%03d", f.counter), nil
}

func (f *fakeUtils) ValidateAudioFile(file *multipart.FileHeader) error {
	return nil
}

func newTestWorkspace() (IWorkspaceService, *fakeWorkspaceRepository) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	repo := &fakeWorkspaceRepository{
		tasks:    &fakeTaskStore{tasks: map[string]entity.Task{}},
		habits:   &fakeHabitStore{habits: map[string]entity.Habit{}, entries: map[string]entity.HabitEntry{}},
		calendar: &fakeCalendarStore{events: map[string]entity.CalendarEvent{}},
	}

	return NewWorkspaceService(logger, repo, &fakeUtils{}), repo
}

func TestCreateTaskDefaults(t *testing.T) {
	service, repo := newTestWorkspace()

	task, err := service.CreateTask(context.Background(), workspace.CreateTaskRequest{
		UserID: "user-1",
		Title:  "Write report",
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.TaskPriorityMedium), task.Priority)
	assert.Equal(t, string(entity.TaskStatusTodo), task.Status)
	assert.Len(t, repo.tasks.tasks, 1)
}

func TestCreateTaskRejectsInvalidPriority(t *testing.T) {
	service, _ := newTestWorkspace()

	_, err := service.CreateTask(context.Background(), workspace.CreateTaskRequest{
		UserID:   "user-1",
		Title:    "Write report",
		Priority: "urgent",
	})
	assert.ErrorIs(t, err, workspace.ErrInvalidPriority)
}

func TestUpdateTaskRejectsOtherUsers(t *testing.T) {
	service, _ := newTestWorkspace()

	task, err := service.CreateTask(context.Background(), workspace.CreateTaskRequest{
		UserID: "user-1",
		Title:  "Write report",
	})
	require.NoError(t, err)

	err = service.UpdateTask(context.Background(), workspace.UpdateTaskRequest{
		ID:       task.ID,
		UserID:   "user-2",
		Title:    "Hijacked",
		Priority: "high",
		Status:   "done",
	})
	assert.ErrorIs(t, err, workspace.ErrRecordNotOwned)
}

func TestDeleteTaskRemovesRecord(t *testing.T) {
	service, repo := newTestWorkspace()

	task, err := service.CreateTask(context.Background(), workspace.CreateTaskRequest{
		UserID: "user-1",
		Title:  "Write report",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTask(context.Background(), task.ID, "user-1"))
	assert.Empty(t, repo.tasks.tasks)
}

func TestCreateHabitDefaultsTarget(t *testing.T) {
	service, _ := newTestWorkspace()

	habit, err := service.CreateHabit(context.Background(), workspace.CreateHabitRequest{
		UserID: "user-1",
		Name:   "Morning run",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, habit.TargetDaysPerWeek)
}

func TestToggleHabitEntryFlipsCompletion(t *testing.T) {
	service, repo := newTestWorkspace()

	habit, err := service.CreateHabit(context.Background(), workspace.CreateHabitRequest{
		UserID: "user-1",
		Name:   "Morning run",
	})
	require.NoError(t, err)

	req := workspace.ToggleHabitEntryRequest{
		HabitID: habit.ID,
		UserID:  "user-1",
		Date:    "2026-03-01",
	}

	require.NoError(t, service.ToggleHabitEntry(context.Background(), req))
	entries, err := service.GetHabitEntries(context.Background(), habit.ID, "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Completed)

	require.NoError(t, service.ToggleHabitEntry(context.Background(), req))
	entries, err = service.GetHabitEntries(context.Background(), habit.ID, "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Completed)

	assert.Len(t, repo.habits.entries, 1)
}

func TestToggleHabitEntryRejectsBadDate(t *testing.T) {
	service, _ := newTestWorkspace()

	habit, err := service.CreateHabit(context.Background(), workspace.CreateHabitRequest{
		UserID: "user-1",
		Name:   "Morning run",
	})
	require.NoError(t, err)

	err = service.ToggleHabitEntry(context.Background(), workspace.ToggleHabitEntryRequest{
		HabitID: habit.ID,
		UserID:  "user-1",
		Date:    "yesterday",
	})
	assert.ErrorIs(t, err, workspace.ErrInvalidTimeRange)
}

func TestCreateEventRejectsInvertedRange(t *testing.T) {
	service, _ := newTestWorkspace()

	_, err := service.CreateEvent(context.Background(), workspace.CreateEventRequest{
		UserID:    "user-1",
		Title:     "Standup",
		StartTime: "2026-03-01T10:00:00Z",
		EndTime:   "2026-03-01T09:00:00Z",
	})
	assert.ErrorIs(t, err, workspace.ErrInvalidTimeRange)
}

func TestCreateEventStoresParsedTimes(t *testing.T) {
	service, repo := newTestWorkspace()

	event, err := service.CreateEvent(context.Background(), workspace.CreateEventRequest{
		UserID:    "user-1",
		Title:     "Standup",
		StartTime: "2026-03-01T10:00:00Z",
		EndTime:   "2026-03-01T10:30:00Z",
	})
	require.NoError(t, err)

	assert.True(t, event.EndTime.After(event.StartTime))
	assert.Len(t, repo.calendar.events, 1)
}
