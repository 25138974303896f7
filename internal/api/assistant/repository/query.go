package assistantRepository

const (
	queryCreateTurn = `
		INSERT INTO assistant_turns (id, user_id, session_id, transcript, intent, response, success, audio_url, created_at)
		VALUES (:id, :user_id, :session_id, :transcript, :intent, :response, :success, :audio_url, :created_at)
	`

	queryGetTurnsByUserID = `
		SELECT id, user_id, session_id, transcript, intent, response, success, audio_url, created_at
		FROM assistant_turns
		WHERE user_id = :user_id
		ORDER BY created_at DESC
		LIMIT :limit
	`

	queryGetTurnsBySessionID = `
		SELECT id, user_id, session_id, transcript, intent, response, success, audio_url, created_at
		FROM assistant_turns
		WHERE session_id = :session_id
		ORDER BY created_at ASC
	`
)
