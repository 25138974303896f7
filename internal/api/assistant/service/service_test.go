package assistantService

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	assistantRepository "github.com/ranjini26/lifeos/internal/api/assistant/repository"
	"github.com/ranjini26/lifeos/internal/api/workspace"
	"github.com/ranjini26/lifeos/internal/entity"
	"github.com/ranjini26/lifeos/pkg/nlp"
)

type fakeWorkspace struct {
	tasks       []entity.Task
	notes       []entity.Note
	habits      []entity.Habit
	reflections []entity.Reflection
	events      []entity.CalendarEvent

	tasksErr       error
	notesErr       error
	habitsErr      error
	reflectionsErr error
	eventsErr      error

	createdTasks []workspace.CreateTaskRequest
	createdNotes []workspace.CreateNoteRequest
}

func (f *fakeWorkspace) CreateTask(ctx context.Context, req workspace.CreateTaskRequest) (entity.Task, error) {
	f.createdTasks = append(f.createdTasks, req)
	return entity.Task{ID: "task-1", Title: req.Title, Priority: req.Priority}, nil
}

func (f *fakeWorkspace) GetTaskByID(ctx context.Context, id string, userID string) (entity.Task, error) {
	return entity.Task{}, nil
}

func (f *fakeWorkspace) GetTasksByUserID(ctx context.Context, userID string) ([]entity.Task, error) {
	return f.tasks, f.tasksErr
}

func (f *fakeWorkspace) UpdateTask(ctx context.Context, req workspace.UpdateTaskRequest) error {
	return nil
}

func (f *fakeWorkspace) DeleteTask(ctx context.Context, id string, userID string) error { return nil }

func (f *fakeWorkspace) CreateNote(ctx context.Context, req workspace.CreateNoteRequest) (entity.Note, error) {
	f.createdNotes = append(f.createdNotes, req)
	return entity.Note{ID: "note-1", Title: req.Title, Content: req.Content}, nil
}

func (f *fakeWorkspace) GetNoteByID(ctx context.Context, id string, userID string) (entity.Note, error) {
	return entity.Note{}, nil
}

func (f *fakeWorkspace) GetNotesByUserID(ctx context.Context, userID string) ([]entity.Note, error) {
	return f.notes, f.notesErr
}

func (f *fakeWorkspace) UpdateNote(ctx context.Context, req workspace.UpdateNoteRequest) error {
	return nil
}

func (f *fakeWorkspace) DeleteNote(ctx context.Context, id string, userID string) error { return nil }

func (f *fakeWorkspace) CreateHabit(ctx context.Context, req workspace.CreateHabitRequest) (entity.Habit, error) {
	return entity.Habit{}, nil
}

func (f *fakeWorkspace) GetHabitsByUserID(ctx context.Context, userID string) ([]entity.Habit, error) {
	return f.habits, f.habitsErr
}

func (f *fakeWorkspace) UpdateHabit(ctx context.Context, req workspace.UpdateHabitRequest) error {
	return nil
}

func (f *fakeWorkspace) DeleteHabit(ctx context.Context, id string, userID string) error { return nil }

func (f *fakeWorkspace) ToggleHabitEntry(ctx context.Context, req workspace.ToggleHabitEntryRequest) error {
	return nil
}

func (f *fakeWorkspace) GetHabitEntries(ctx context.Context, habitID string, userID string) ([]entity.HabitEntry, error) {
	return nil, nil
}

func (f *fakeWorkspace) CreateReflection(ctx context.Context, req workspace.CreateReflectionRequest) (entity.Reflection, error) {
	return entity.Reflection{}, nil
}

func (f *fakeWorkspace) GetReflectionsByUserID(ctx context.Context, userID string) ([]entity.Reflection, error) {
	return f.reflections, f.reflectionsErr
}

func (f *fakeWorkspace) UpdateReflection(ctx context.Context, req workspace.UpdateReflectionRequest) error {
	return nil
}

func (f *fakeWorkspace) DeleteReflection(ctx context.Context, id string, userID string) error {
	return nil
}

func (f *fakeWorkspace) CreateEvent(ctx context.Context, req workspace.CreateEventRequest) (entity.CalendarEvent, error) {
	return entity.CalendarEvent{}, nil
}

func (f *fakeWorkspace) GetEventsByUserID(ctx context.Context, userID string) ([]entity.CalendarEvent, error) {
	return f.events, f.eventsErr
}

func (f *fakeWorkspace) UpdateEvent(ctx context.Context, req workspace.UpdateEventRequest) error {
	return nil
}

func (f *fakeWorkspace) DeleteEvent(ctx context.Context, id string, userID string) error { return nil }

type recordedAction struct {
	kind     string
	userID   string
	content  string
	priority nlp.Priority
}

type fakeSink struct {
	actions []recordedAction
	err     error
}

func (f *fakeSink) CreateTask(ctx context.Context, userID string, title string, priority nlp.Priority) error {
	if f.err != nil {
		return f.err
	}
	f.actions = append(f.actions, recordedAction{kind: "task", userID: userID, content: title, priority: priority})
	return nil
}

func (f *fakeSink) CreateNote(ctx context.Context, userID string, content string) error {
	if f.err != nil {
		return f.err
	}
	f.actions = append(f.actions, recordedAction{kind: "note", userID: userID, content: content})
	return nil
}

type fakeTurnStore struct {
	turns []entity.AssistantTurn
}

func (f *fakeTurnStore) CreateTurn(c context.Context, turn entity.AssistantTurn) error {
	f.turns = append(f.turns, turn)
	return nil
}

func (f *fakeTurnStore) GetTurnsByUserID(c context.Context, userID string, limit int) ([]entity.AssistantTurn, error) {
	return f.turns, nil
}

func (f *fakeTurnStore) GetTurnsBySessionID(c context.Context, sessionID string) ([]entity.AssistantTurn, error) {
	return f.turns, nil
}

type fakeTurnRepository struct {
	store *fakeTurnStore
}

func (f *fakeTurnRepository) NewClient(tx bool) (assistantRepository.Client, error) {
	return assistantRepository.Client{
		Turn:     f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeTranscriber struct {
	transcript string
	err        error
}

func (f *fakeTranscriber) TranscribeAudio(ctx context.Context, fileName string, reader io.Reader) (string, error) {
	return f.transcript, f.err
}

type fakeTTS struct {
	audio []byte
	err   error
	calls int
}

func (f *fakeTTS) GenerateAudio(ctx context.Context, text string) ([]byte, error) {
	f.calls++
	return f.audio, f.err
}

type fakeAudioCache struct {
	store map[string][]byte
}

func (f *fakeAudioCache) SetAudioCache(ctx context.Context, key string, audio []byte, expiration time.Duration) error {
	if f.store == nil {
		f.store = map[string][]byte{}
	}
	f.store[key] = audio
	return nil
}

func (f *fakeAudioCache) GetAudioCache(ctx context.Context, key string) ([]byte, error) {
	if audio, ok := f.store[key]; ok {
		return audio, nil
	}
	return nil, errors.New("cache miss")
}

func (f *fakeAudioCache) Publish(ctx context.Context, channel string, payload []byte) error {
	return nil
}

func (f *fakeAudioCache) Subscribe(ctx context.Context, channel string) <-chan []byte {
	ch := make(chan []byte)
	close(ch)
	return ch
}

type fakeUtils struct{ counter int }

func (f *fakeUtils) NewULIDFromTimestamp(t time.Time) (string, error) {
	f.counter++
	return fmt.Sprintf("ulid-%03d", f.counter), nil
}

func (f *fakeUtils) ValidateAudioFile(file *multipart.FileHeader) error { return nil }

type testService struct {
	service   *assistantService
	workspace *fakeWorkspace
	sink      *fakeSink
	turns     *fakeTurnStore
}

func newTestService() *testService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	ws := &fakeWorkspace{}
	sink := &fakeSink{}
	turns := &fakeTurnStore{}

	svc := &assistantService{
		log:                 log,
		classifier:          nlp.NewClassifier(),
		assistantRepository: &fakeTurnRepository{store: turns},
		workspaceService:    ws,
		sink:                sink,
		redis:               &fakeAudioCache{},
		utils:               &fakeUtils{},
	}

	return &testService{service: svc, workspace: ws, sink: sink, turns: turns}
}
