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

type NoteDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Title     sql.NullString `db:"title"`
	Content   sql.NullString `db:"content"`
	Tags      pq.StringArray `db:"tags"`
	Starred   sql.NullBool   `db:"starred"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *noteRepository) CreateNote(c context.Context, note entity.Note) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         note.ID,
		"user_id":    note.UserID,
		"title":      note.Title,
		"content":    note.Content,
		"tags":       pq.StringArray(note.Tags),
		"starred":    note.Starred,
		"created_at": time.Now(),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateNote, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateNote")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating note")

		return err
	}

	return nil
}

func (r *noteRepository) GetNoteByID(c context.Context, id string) (entity.Note, error) {
	requestID := contextPkg.GetRequestID(c)
	var note NoteDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetNoteByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetNoteByID named query preparation err")

		return entity.Note{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetNoteByID no rows found")
			return entity.Note{}, workspace.ErrNoteNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetNoteByID execution err")
		return entity.Note{}, err
	}

	return r.makeNote(note), nil
}

func (r *noteRepository) GetNotesByUserID(c context.Context, userID string) ([]entity.Note, error) {
	requestID := contextPkg.GetRequestID(c)
	var notes []NoteDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetNotesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetNotesByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &notes, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetNotesByUserID execution err")
		return nil, err
	}

	result := make([]entity.Note, 0, len(notes))
	for _, note := range notes {
		result = append(result, r.makeNote(note))
	}

	return result, nil
}

func (r *noteRepository) UpdateNote(c context.Context, note entity.Note) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         note.ID,
		"title":      note.Title,
		"content":    note.Content,
		"tags":       pq.StringArray(note.Tags),
		"starred":    note.Starred,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateNote, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateNote named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateNote execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateNote rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateNote no rows affected")

		return workspace.ErrNoteNotFound
	}

	return nil
}

func (r *noteRepository) DeleteNote(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteNote, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteNote named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteNote execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteNote rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteNote no rows affected")

		return workspace.ErrNoteNotFound
	}

	return nil
}

func (r *noteRepository) makeNote(note NoteDB) entity.Note {
	return entity.Note{
		ID:        note.ID.String,
		UserID:    note.UserID.String,
		Title:     note.Title.String,
		Content:   note.Content.String,
		Tags:      note.Tags,
		Starred:   note.Starred.Bool,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
