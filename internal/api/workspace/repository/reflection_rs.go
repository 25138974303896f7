package workspaceRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/ranjini26/lifeos/internal/api/workspace"
	"github.com/ranjini26/lifeos/internal/entity"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
)

type ReflectionDB struct {
	ID            sql.NullString `db:"id"`
	UserID        sql.NullString `db:"user_id"`
	Date          time.Time      `db:"date"`
	Mood          sql.NullInt64  `db:"mood"`
	EnergyLevel   sql.NullInt64  `db:"energy_level"`
	Gratitude     pq.StringArray `db:"gratitude"`
	Wins          pq.StringArray `db:"wins"`
	Challenges    pq.StringArray `db:"challenges"`
	TomorrowFocus pq.StringArray `db:"tomorrow_focus"`
	Notes         sql.NullString `db:"notes"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (r *reflectionRepository) CreateReflection(c context.Context, reflection entity.Reflection) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             reflection.ID,
		"user_id":        reflection.UserID,
		"date":           reflection.Date,
		"mood":           reflection.Mood,
		"energy_level":   reflection.EnergyLevel,
		"gratitude":      pq.StringArray(reflection.Gratitude),
		"wins":           pq.StringArray(reflection.Wins),
		"challenges":     pq.StringArray(reflection.Challenges),
		"tomorrow_focus": pq.StringArray(reflection.TomorrowFocus),
		"notes":          reflection.Notes,
		"created_at":     time.Now(),
		"updated_at":     time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateReflection, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateReflection")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating reflection")

		return err
	}

	return nil
}

func (r *reflectionRepository) GetReflectionByID(c context.Context, id string) (entity.Reflection, error) {
	requestID := contextPkg.GetRequestID(c)
	var reflection ReflectionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetReflectionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReflectionByID named query preparation err")

		return entity.Reflection{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&reflection); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetReflectionByID no rows found")
			return entity.Reflection{}, workspace.ErrReflectionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReflectionByID execution err")
		return entity.Reflection{}, err
	}

	return r.makeReflection(reflection), nil
}

func (r *reflectionRepository) GetReflectionsByUserID(c context.Context, userID string) ([]entity.Reflection, error) {
	requestID := contextPkg.GetRequestID(c)
	var reflections []ReflectionDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetReflectionsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReflectionsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &reflections, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReflectionsByUserID execution err")
		return nil, err
	}

	result := make([]entity.Reflection, 0, len(reflections))
	for _, reflection := range reflections {
		result = append(result, r.makeReflection(reflection))
	}

	return result, nil
}

func (r *reflectionRepository) UpdateReflection(c context.Context, reflection entity.Reflection) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             reflection.ID,
		"mood":           reflection.Mood,
		"energy_level":   reflection.EnergyLevel,
		"gratitude":      pq.StringArray(reflection.Gratitude),
		"wins":           pq.StringArray(reflection.Wins),
		"challenges":     pq.StringArray(reflection.Challenges),
		"tomorrow_focus": pq.StringArray(reflection.TomorrowFocus),
		"notes":          reflection.Notes,
		"updated_at":     time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateReflection, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateReflection named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateReflection execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateReflection rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateReflection no rows affected")

		return workspace.ErrReflectionNotFound
	}

	return nil
}

func (r *reflectionRepository) DeleteReflection(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteReflection, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteReflection named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteReflection execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteReflection rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteReflection no rows affected")

		return workspace.ErrReflectionNotFound
	}

	return nil
}

func (r *reflectionRepository) makeReflection(reflection ReflectionDB) entity.Reflection {
	return entity.Reflection{
		ID:            reflection.ID.String,
		UserID:        reflection.UserID.String,
		Date:          reflection.Date,
		Mood:          int(reflection.Mood.Int64),
		EnergyLevel:   int(reflection.EnergyLevel.Int64),
		Gratitude:     reflection.Gratitude,
		Wins:          reflection.Wins,
		Challenges:    reflection.Challenges,
		TomorrowFocus: reflection.TomorrowFocus,
		Notes:         reflection.Notes.String,
		CreatedAt:     reflection.CreatedAt,
		UpdatedAt:     reflection.UpdatedAt,
	}
}
