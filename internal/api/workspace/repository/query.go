package workspaceRepository

const (
	queryCreateTask = `
		INSERT INTO tasks (
			id,
			user_id,
			title,
			description,
			priority,
			status,
			due_date,
			assignee,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:title,
			:description,
			:priority,
			:status,
			:due_date,
			:assignee,
			:created_at,
			:updated_at
		)
	`

	queryGetTaskByID = `
		SELECT
			id,
			user_id,
			title,
			description,
			priority,
			status,
			due_date,
			assignee,
			created_at,
			updated_at
		FROM tasks
		WHERE id = :id
	`

	queryGetTasksByUserID = `
		SELECT
			id,
			user_id,
			title,
			description,
			priority,
			status,
			due_date,
			assignee,
			created_at,
			updated_at
		FROM tasks
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryUpdateTask = `
		UPDATE tasks
		SET
			title = :title,
			description = :description,
			priority = :priority,
			status = :status,
			due_date = :due_date,
			assignee = :assignee,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTask = `
		DELETE FROM tasks
		WHERE id = :id
	`

	queryCreateNote = `
		INSERT INTO notes (
			id,
			user_id,
			title,
			content,
			tags,
			starred,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:title,
			:content,
			:tags,
			:starred,
			:created_at,
			:updated_at
		)
	`

	queryGetNoteByID = `
		SELECT
			id,
			user_id,
			title,
			content,
			tags,
			starred,
			created_at,
			updated_at
		FROM notes
		WHERE id = :id
	`

	queryGetNotesByUserID = `
		SELECT
			id,
			user_id,
			title,
			content,
			tags,
			starred,
			created_at,
			updated_at
		FROM notes
		WHERE user_id = :user_id
		ORDER BY updated_at DESC
	`

	queryUpdateNote = `
		UPDATE notes
		SET
			title = :title,
			content = :content,
			tags = :tags,
			starred = :starred,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteNote = `
		DELETE FROM notes
		WHERE id = :id
	`

	queryCreateHabit = `
		INSERT INTO habits (
			id,
			user_id,
			name,
			description,
			target_days_per_week,
			color,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:description,
			:target_days_per_week,
			:color,
			:created_at,
			:updated_at
		)
	`

	queryGetHabitByID = `
		SELECT
			id,
			user_id,
			name,
			description,
			target_days_per_week,
			color,
			created_at,
			updated_at
		FROM habits
		WHERE id = :id
	`

	queryGetHabitsByUserID = `
		SELECT
			id,
			user_id,
			name,
			description,
			target_days_per_week,
			color,
			created_at,
			updated_at
		FROM habits
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryUpdateHabit = `
		UPDATE habits
		SET
			name = :name,
			description = :description,
			target_days_per_week = :target_days_per_week,
			color = :color,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteHabit = `
		DELETE FROM habits
		WHERE id = :id
	`

	queryUpsertHabitEntry = `
		INSERT INTO habit_entries (
			id,
			habit_id,
			date,
			completed,
			created_at
		) VALUES (
			:id,
			:habit_id,
			:date,
			:completed,
			:created_at
		)
		ON CONFLICT (habit_id, date)
		DO UPDATE SET completed = :completed
	`

	queryGetEntriesByHabitID = `
		SELECT
			id,
			habit_id,
			date,
			completed,
			created_at
		FROM habit_entries
		WHERE habit_id = :habit_id
		ORDER BY date DESC
	`

	queryCreateReflection = `
		INSERT INTO reflections (
			id,
			user_id,
			date,
			mood,
			energy_level,
			gratitude,
			wins,
			challenges,
			tomorrow_focus,
			notes,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:date,
			:mood,
			:energy_level,
			:gratitude,
			:wins,
			:challenges,
			:tomorrow_focus,
			:notes,
			:created_at,
			:updated_at
		)
	`

	queryGetReflectionByID = `
		SELECT
			id,
			user_id,
			date,
			mood,
			energy_level,
			gratitude,
			wins,
			challenges,
			tomorrow_focus,
			notes,
			created_at,
			updated_at
		FROM reflections
		WHERE id = :id
	`

	queryGetReflectionsByUserID = `
		SELECT
			id,
			user_id,
			date,
			mood,
			energy_level,
			gratitude,
			wins,
			challenges,
			tomorrow_focus,
			notes,
			created_at,
			updated_at
		FROM reflections
		WHERE user_id = :user_id
		ORDER BY date DESC
	`

	queryUpdateReflection = `
		UPDATE reflections
		SET
			mood = :mood,
			energy_level = :energy_level,
			gratitude = :gratitude,
			wins = :wins,
			challenges = :challenges,
			tomorrow_focus = :tomorrow_focus,
			notes = :notes,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteReflection = `
		DELETE FROM reflections
		WHERE id = :id
	`

	queryCreateEvent = `
		INSERT INTO calendar_events (
			id,
			user_id,
			title,
			description,
			start_time,
			end_time,
			location,
			color,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:title,
			:description,
			:start_time,
			:end_time,
			:location,
			:color,
			:created_at,
			:updated_at
		)
	`

	queryGetEventByID = `
		SELECT
			id,
			user_id,
			title,
			description,
			start_time,
			end_time,
			location,
			color,
			created_at,
			updated_at
		FROM calendar_events
		WHERE id = :id
	`

	queryGetEventsByUserID = `
		SELECT
			id,
			user_id,
			title,
			description,
			start_time,
			end_time,
			location,
			color,
			created_at,
			updated_at
		FROM calendar_events
		WHERE user_id = :user_id
		ORDER BY start_time ASC
	`

	queryUpdateEvent = `
		UPDATE calendar_events
		SET
			title = :title,
			description = :description,
			start_time = :start_time,
			end_time = :end_time,
			location = :location,
			color = :color,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteEvent = `
		DELETE FROM calendar_events
		WHERE id = :id
	`
)
