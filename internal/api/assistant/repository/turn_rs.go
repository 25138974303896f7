package assistantRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/ranjini26/lifeos/internal/entity"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
)

type TurnDB struct {
	ID         sql.NullString `db:"id"`
	UserID     sql.NullString `db:"user_id"`
	SessionID  sql.NullString `db:"session_id"`
	Transcript sql.NullString `db:"transcript"`
	Intent     sql.NullString `db:"intent"`
	Response   sql.NullString `db:"response"`
	Success    sql.NullBool   `db:"success"`
	AudioURL   sql.NullString `db:"audio_url"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r *turnRepository) CreateTurn(c context.Context, turn entity.AssistantTurn) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         turn.ID,
		"user_id":    turn.UserID,
		"session_id": turn.SessionID,
		"transcript": turn.Transcript,
		"intent":     turn.Intent,
		"response":   turn.Response,
		"success":    turn.Success,
		"audio_url":  turn.AudioURL,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateTurn, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTurn")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating assistant turn")

		return err
	}

	return nil
}

func (r *turnRepository) GetTurnsByUserID(c context.Context, userID string, limit int) ([]entity.AssistantTurn, error) {
	requestID := contextPkg.GetRequestID(c)
	var turns []TurnDB

	if limit <= 0 {
		limit = 50
	}

	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	}

	query, args, err := sqlx.Named(queryGetTurnsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTurnsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &turns, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTurnsByUserID execution err")
		return nil, err
	}

	result := make([]entity.AssistantTurn, 0, len(turns))
	for _, turn := range turns {
		result = append(result, r.makeTurn(turn))
	}

	return result, nil
}

func (r *turnRepository) GetTurnsBySessionID(c context.Context, sessionID string) ([]entity.AssistantTurn, error) {
	requestID := contextPkg.GetRequestID(c)
	var turns []TurnDB

	argsKV := map[string]interface{}{
		"session_id": sessionID,
	}

	query, args, err := sqlx.Named(queryGetTurnsBySessionID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTurnsBySessionID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &turns, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTurnsBySessionID execution err")
		return nil, err
	}

	result := make([]entity.AssistantTurn, 0, len(turns))
	for _, turn := range turns {
		result = append(result, r.makeTurn(turn))
	}

	return result, nil
}

func (r *turnRepository) makeTurn(turn TurnDB) entity.AssistantTurn {
	return entity.AssistantTurn{
		ID:         turn.ID.String,
		UserID:     turn.UserID.String,
		SessionID:  turn.SessionID.String,
		Transcript: turn.Transcript.String,
		Intent:     turn.Intent.String,
		Response:   turn.Response.String,
		Success:    turn.Success.Bool,
		AudioURL:   turn.AudioURL.String,
		CreatedAt:  turn.CreatedAt,
	}
}
