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

type HabitDB struct {
	ID                sql.NullString `db:"id"`
	UserID            sql.NullString `db:"user_id"`
	Name              sql.NullString `db:"name"`
	Description       sql.NullString `db:"description"`
	TargetDaysPerWeek sql.NullInt64  `db:"target_days_per_week"`
	Color             sql.NullString `db:"color"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

type HabitEntryDB struct {
	ID        sql.NullString `db:"id"`
	HabitID   sql.NullString `db:"habit_id"`
	Date      time.Time      `db:"date"`
	Completed sql.NullBool   `db:"completed"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *habitRepository) CreateHabit(c context.Context, habit entity.Habit) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":                   habit.ID,
		"user_id":              habit.UserID,
		"name":                 habit.Name,
		"description":          habit.Description,
		"target_days_per_week": habit.TargetDaysPerWeek,
		"color":                habit.Color,
		"created_at":           time.Now(),
		"updated_at":           time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateHabit, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateHabit")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating habit")

		return err
	}

	return nil
}

func (r *habitRepository) GetHabitByID(c context.Context, id string) (entity.Habit, error) {
	requestID := contextPkg.GetRequestID(c)
	var habit HabitDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetHabitByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetHabitByID named query preparation err")

		return entity.Habit{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&habit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetHabitByID no rows found")
			return entity.Habit{}, workspace.ErrHabitNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetHabitByID execution err")
		return entity.Habit{}, err
	}

	return r.makeHabit(habit), nil
}

func (r *habitRepository) GetHabitsByUserID(c context.Context, userID string) ([]entity.Habit, error) {
	requestID := contextPkg.GetRequestID(c)
	var habits []HabitDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetHabitsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetHabitsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &habits, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetHabitsByUserID execution err")
		return nil, err
	}

	result := make([]entity.Habit, 0, len(habits))
	for _, habit := range habits {
		result = append(result, r.makeHabit(habit))
	}

	return result, nil
}

func (r *habitRepository) UpdateHabit(c context.Context, habit entity.Habit) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":                   habit.ID,
		"name":                 habit.Name,
		"description":          habit.Description,
		"target_days_per_week": habit.TargetDaysPerWeek,
		"color":                habit.Color,
		"updated_at":           time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateHabit, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateHabit named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateHabit execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateHabit rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateHabit no rows affected")

		return workspace.ErrHabitNotFound
	}

	return nil
}

func (r *habitRepository) DeleteHabit(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteHabit, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteHabit named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteHabit execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteHabit rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteHabit no rows affected")

		return workspace.ErrHabitNotFound
	}

	return nil
}

func (r *habitRepository) UpsertEntry(c context.Context, entry entity.HabitEntry) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         entry.ID,
		"habit_id":   entry.HabitID,
		"date":       entry.Date,
		"completed":  entry.Completed,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpsertHabitEntry, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertEntry named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertEntry execution err")

		return err
	}

	return nil
}

func (r *habitRepository) GetEntriesByHabitID(c context.Context, habitID string) ([]entity.HabitEntry, error) {
	requestID := contextPkg.GetRequestID(c)
	var entries []HabitEntryDB

	argsKV := map[string]interface{}{
		"habit_id": habitID,
	}

	query, args, err := sqlx.Named(queryGetEntriesByHabitID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEntriesByHabitID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &entries, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEntriesByHabitID execution err")
		return nil, err
	}

	result := make([]entity.HabitEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entity.HabitEntry{
			ID:        entry.ID.String,
			HabitID:   entry.HabitID.String,
			Date:      entry.Date,
			Completed: entry.Completed.Bool,
			CreatedAt: entry.CreatedAt,
		})
	}

	return result, nil
}

func (r *habitRepository) makeHabit(habit HabitDB) entity.Habit {
	return entity.Habit{
		ID:                habit.ID.String,
		UserID:            habit.UserID.String,
		Name:              habit.Name.String,
		Description:       habit.Description.String,
		TargetDaysPerWeek: int(habit.TargetDaysPerWeek.Int64),
		Color:             habit.Color.String,
		CreatedAt:         habit.CreatedAt,
		UpdatedAt:         habit.UpdatedAt,
	}
}
