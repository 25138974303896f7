package workspaceRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/ranjini26/lifeos/internal/api/workspace"
	"github.com/ranjini26/lifeos/internal/entity"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
)

type TaskDB struct {
	ID          sql.NullString `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	Title       sql.NullString `db:"title"`
	Description sql.NullString `db:"description"`
	Priority    sql.NullString `db:"priority"`
	Status      sql.NullString `db:"status"`
	DueDate     sql.NullTime   `db:"due_date"`
	Assignee    sql.NullString `db:"assignee"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *taskRepository) CreateTask(c context.Context, task entity.Task) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          task.ID,
		"user_id":     task.UserID,
		"title":       task.Title,
		"description": task.Description,
		"priority":    task.Priority,
		"status":      task.Status,
		"due_date":    nullableTime(task.DueDate),
		"assignee":    task.Assignee,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateTask, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTask")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating task")

		return err
	}

	return nil
}

func (r *taskRepository) GetTaskByID(c context.Context, id string) (entity.Task, error) {
	requestID := contextPkg.GetRequestID(c)
	var task TaskDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTaskByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTaskByID named query preparation err")

		return entity.Task{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetTaskByID no rows found")
			return entity.Task{}, workspace.ErrTaskNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTaskByID execution err")
		return entity.Task{}, err
	}

	return r.makeTask(task), nil
}

func (r *taskRepository) GetTasksByUserID(c context.Context, userID string) ([]entity.Task, error) {
	requestID := contextPkg.GetRequestID(c)
	var tasks []TaskDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetTasksByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTasksByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &tasks, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTasksByUserID execution err")
		return nil, err
	}

	result := make([]entity.Task, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, r.makeTask(task))
	}

	return result, nil
}

func (r *taskRepository) UpdateTask(c context.Context, task entity.Task) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          task.ID,
		"title":       task.Title,
		"description": task.Description,
		"priority":    task.Priority,
		"status":      task.Status,
		"due_date":    nullableTime(task.DueDate),
		"assignee":    task.Assignee,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateTask, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTask named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTask execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTask rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateTask no rows affected")

		return workspace.ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) DeleteTask(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteTask, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTask named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTask execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTask rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteTask no rows affected")

		return workspace.ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) makeTask(task TaskDB) entity.Task {
	return entity.Task{
		ID:          task.ID.String,
		UserID:      task.UserID.String,
		Title:       task.Title.String,
		Description: task.Description.String,
		Priority:    task.Priority.String,
		Status:      task.Status.String,
		DueDate:     task.DueDate.Time,
		Assignee:    task.Assignee.String,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func nullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
