package assistant

import "github.com/ranjini26/lifeos/internal/entity"

type CommandRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	SessionID  string `json:"session_id"`
	Transcript string `json:"transcript" validate:"required"`
	Speak      bool   `json:"speak"`
}

type CommandResponse struct {
	Intent   string                `json:"intent"`
	Response string                `json:"response"`
	Success  bool                  `json:"success"`
	Results  []entity.SearchResult `json:"results,omitempty"`
	AudioURL string                `json:"audio_url,omitempty"`
}

type SearchRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Query  string `json:"query"`
	Type   string `json:"type" validate:"omitempty,oneof=task note habit reflection calendar"`
}

type SearchResponse struct {
	Query   string                `json:"query"`
	Type    string                `json:"type,omitempty"`
	Results []entity.SearchResult `json:"results"`
	Total   int                   `json:"total"`
}

type InsightsResponse struct {
	Summary string                   `json:"summary"`
	Stats   entity.ProductivityStats `json:"stats"`
}

type TurnResponse struct {
	ID         string `json:"id"`
	SessionID  string `json:"session_id"`
	Transcript string `json:"transcript"`
	Intent     string `json:"intent"`
	Response   string `json:"response"`
	Success    bool   `json:"success"`
	AudioURL   string `json:"audio_url,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type StreamEnvelope struct {
	Type       string                `json:"type"`
	State      string                `json:"state,omitempty"`
	Transcript string                `json:"transcript,omitempty"`
	Intent     string                `json:"intent,omitempty"`
	Response   string                `json:"response,omitempty"`
	Results    []entity.SearchResult `json:"results,omitempty"`
	AudioURL   string                `json:"audio_url,omitempty"`
	Error      string                `json:"error,omitempty"`
}
