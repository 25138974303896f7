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

type EventDB struct {
	ID          sql.NullString `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	Title       sql.NullString `db:"title"`
	Description sql.NullString `db:"description"`
	StartTime   time.Time      `db:"start_time"`
	EndTime     time.Time      `db:"end_time"`
	Location    sql.NullString `db:"location"`
	Color       sql.NullString `db:"color"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *calendarRepository) CreateEvent(c context.Context, event entity.CalendarEvent) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          event.ID,
		"user_id":     event.UserID,
		"title":       event.Title,
		"description": event.Description,
		"start_time":  event.StartTime,
		"end_time":    event.EndTime,
		"location":    event.Location,
		"color":       event.Color,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateEvent, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateEvent")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating calendar event")

		return err
	}

	return nil
}

func (r *calendarRepository) GetEventByID(c context.Context, id string) (entity.CalendarEvent, error) {
	requestID := contextPkg.GetRequestID(c)
	var event EventDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetEventByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEventByID named query preparation err")

		return entity.CalendarEvent{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&event); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetEventByID no rows found")
			return entity.CalendarEvent{}, workspace.ErrEventNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEventByID execution err")
		return entity.CalendarEvent{}, err
	}

	return r.makeEvent(event), nil
}

func (r *calendarRepository) GetEventsByUserID(c context.Context, userID string) ([]entity.CalendarEvent, error) {
	requestID := contextPkg.GetRequestID(c)
	var events []EventDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetEventsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEventsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &events, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEventsByUserID execution err")
		return nil, err
	}

	result := make([]entity.CalendarEvent, 0, len(events))
	for _, event := range events {
		result = append(result, r.makeEvent(event))
	}

	return result, nil
}

func (r *calendarRepository) UpdateEvent(c context.Context, event entity.CalendarEvent) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          event.ID,
		"title":       event.Title,
		"description": event.Description,
		"start_time":  event.StartTime,
		"end_time":    event.EndTime,
		"location":    event.Location,
		"color":       event.Color,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateEvent, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateEvent named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateEvent execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateEvent rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateEvent no rows affected")

		return workspace.ErrEventNotFound
	}

	return nil
}

func (r *calendarRepository) DeleteEvent(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteEvent, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteEvent named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteEvent execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteEvent rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteEvent no rows affected")

		return workspace.ErrEventNotFound
	}

	return nil
}

func (r *calendarRepository) makeEvent(event EventDB) entity.CalendarEvent {
	return entity.CalendarEvent{
		ID:          event.ID.String,
		UserID:      event.UserID.String,
		Title:       event.Title.String,
		Description: event.Description.String,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Location:    event.Location.String,
		Color:       event.Color.String,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}
