package entity

import "time"

// AssistantTurn is one processed command: what the user said, what the
// assistant understood, and how it answered.
type AssistantTurn struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	SessionID  string    `json:"session_id"`
	Transcript string    `json:"transcript"`
	Intent     string    `json:"intent"`
	Response   string    `json:"response"`
	Success    bool      `json:"success"`
	AudioURL   string    `json:"audio_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SearchResult is one matched record from the federated search, reduced to
// the fields the assistant reads back.
type SearchResult struct {
	Type    string `json:"type"`
	ID      string `json:"id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// ProductivityStats holds every number the insight sentences are built from.
type ProductivityStats struct {
	TotalTasks          int `json:"total_tasks"`
	CompletedTasks      int `json:"completed_tasks"`
	CompletionRate      int `json:"completion_rate"`
	HighPriorityPending int `json:"high_priority_pending"`
	RecentNotes         int `json:"recent_notes"`
	TotalHabits         int `json:"total_habits"`
	RecentReflections   int `json:"recent_reflections"`
	UpcomingEvents      int `json:"upcoming_events"`
}
