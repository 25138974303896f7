package assistantService

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/workspace"
	workspaceService "github.com/ranjini26/lifeos/internal/api/workspace/service"
	"github.com/ranjini26/lifeos/pkg/nlp"
	redisPkg "github.com/ranjini26/lifeos/pkg/redis"
)

const actionChannel = "assistant:actions"

// ActionSink receives the side effects a voice command produces. The
// command pipeline only talks to this interface, so tests can swap in
// a recorder and deployments can fan actions out to other consumers.
type ActionSink interface {
	CreateTask(ctx context.Context, userID string, title string, priority nlp.Priority) error
	CreateNote(ctx context.Context, userID string, content string) error
}

type workspaceSink struct {
	workspaceService workspaceService.IWorkspaceService
}

// NewWorkspaceSink writes voice-created tasks and notes straight into
// the workspace stores.
func NewWorkspaceSink(ws workspaceService.IWorkspaceService) ActionSink {
	return &workspaceSink{workspaceService: ws}
}

func (s *workspaceSink) CreateTask(ctx context.Context, userID string, title string, priority nlp.Priority) error {
	_, err := s.workspaceService.CreateTask(ctx, workspace.CreateTaskRequest{
		UserID:   userID,
		Title:    title,
		Priority: string(priority),
	})
	return err
}

func (s *workspaceSink) CreateNote(ctx context.Context, userID string, content string) error {
	_, err := s.workspaceService.CreateNote(ctx, workspace.CreateNoteRequest{
		UserID:  userID,
		Title:   "Voice Note " + time.Now().Format("1/2/2006"),
		Content: content,
	})
	return err
}

type actionEvent struct {
	Kind     string `json:"kind"`
	UserID   string `json:"user_id"`
	Content  string `json:"content"`
	Priority string `json:"priority,omitempty"`
	At       int64  `json:"at"`
}

type broadcastSink struct {
	log   *logrus.Logger
	redis redisPkg.IRedis
	next  ActionSink
}

// NewBroadcastSink wraps another sink with a Redis channel. Every
// accepted action is announced so connected clients can refresh their
// boards without polling, and when the direct sink fails the event is
// published as a fallback so a queue consumer can apply it. The action
// only fails when both paths do.
func NewBroadcastSink(log *logrus.Logger, redis redisPkg.IRedis, next ActionSink) ActionSink {
	return &broadcastSink{log: log, redis: redis, next: next}
}

func (s *broadcastSink) CreateTask(ctx context.Context, userID string, title string, priority nlp.Priority) error {
	event := actionEvent{
		Kind:     "task_created",
		UserID:   userID,
		Content:  title,
		Priority: string(priority),
		At:       time.Now().Unix(),
	}
	return s.deliver(ctx, s.next.CreateTask(ctx, userID, title, priority), event)
}

func (s *broadcastSink) CreateNote(ctx context.Context, userID string, content string) error {
	event := actionEvent{
		Kind:    "note_created",
		UserID:  userID,
		Content: content,
		At:      time.Now().Unix(),
	}
	return s.deliver(ctx, s.next.CreateNote(ctx, userID, content), event)
}

func (s *broadcastSink) deliver(ctx context.Context, directErr error, event actionEvent) error {
	if directErr == nil {
		if err := s.publish(ctx, event); err != nil {
			s.log.WithFields(logrus.Fields{
				"kind":  event.Kind,
				"error": err.Error(),
			}).Warn("Failed to broadcast action event")
		}
		return nil
	}

	s.log.WithFields(logrus.Fields{
		"kind":  event.Kind,
		"error": directErr.Error(),
	}).Warn("Direct action sink failed, falling back to broadcast")

	if err := s.publish(ctx, event); err != nil {
		s.log.WithFields(logrus.Fields{
			"kind":  event.Kind,
			"error": err.Error(),
		}).Error("Broadcast fallback failed after direct sink failure")
		return directErr
	}
	return nil
}

func (s *broadcastSink) publish(ctx context.Context, event actionEvent) error {
	payload, err := jsoniter.Marshal(event)
	if err != nil {
		return err
	}
	return s.redis.Publish(ctx, actionChannel, payload)
}
