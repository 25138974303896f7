package workspaceService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/workspace"
	"github.com/ranjini26/lifeos/internal/entity"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
)

func (s *workspaceService) CreateTask(ctx context.Context, req workspace.CreateTaskRequest) (entity.Task, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Task{}, err
	}

	priority := req.Priority
	if priority == "" {
		priority = string(entity.TaskPriorityMedium)
	}
	if !entity.IsValidTaskPriority(priority) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"priority":   priority,
		}).Warn("Invalid task priority")
		return entity.Task{}, workspace.ErrInvalidPriority
	}

	status := req.Status
	if status == "" {
		status = string(entity.TaskStatusTodo)
	}
	if !entity.IsValidTaskStatus(status) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"status":     status,
		}).Warn("Invalid task status")
		return entity.Task{}, workspace.ErrInvalidStatus
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Task{}, err
	}

	dueDate, _ := parseDate(req.DueDate)

	task := entity.Task{
		ID:          ULID,
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      status,
		DueDate:     dueDate,
		Assignee:    req.Assignee,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := repo.Task.CreateTask(ctx, task); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create task")
		return entity.Task{}, workspace.ErrCreateRecord
	}

	return task, nil
}

func (s *workspaceService) GetTaskByID(ctx context.Context, id string, userID string) (entity.Task, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Task{}, err
	}

	task, err := repo.Task.GetTaskByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get task by ID")
		return entity.Task{}, err
	}

	if task.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Task does not belong to user")
		return entity.Task{}, workspace.ErrRecordNotOwned
	}

	return task, nil
}

func (s *workspaceService) GetTasksByUserID(ctx context.Context, userID string) ([]entity.Task, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	tasks, err := repo.Task.GetTasksByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get tasks by user ID")
		return nil, err
	}

	return tasks, nil
}

func (s *workspaceService) UpdateTask(ctx context.Context, req workspace.UpdateTaskRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Task.GetTaskByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to get task for update")
		return err
	}

	if existing.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
		}).Warn("Task does not belong to user")
		return workspace.ErrRecordNotOwned
	}

	if !entity.IsValidTaskPriority(req.Priority) {
		return workspace.ErrInvalidPriority
	}
	if !entity.IsValidTaskStatus(req.Status) {
		return workspace.ErrInvalidStatus
	}

	dueDate, _ := parseDate(req.DueDate)

	task := entity.Task{
		ID:          req.ID,
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     dueDate,
		Assignee:    req.Assignee,
	}

	if err := repo.Task.UpdateTask(ctx, task); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update task")
		return err
	}

	return nil
}

func (s *workspaceService) DeleteTask(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Task.GetTaskByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get task for deletion")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Task does not belong to user")
		return workspace.ErrRecordNotOwned
	}

	if err := repo.Task.DeleteTask(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete task")
		return err
	}

	return nil
}
