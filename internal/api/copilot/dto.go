package copilot

type Suggestion struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Actionable bool   `json:"actionable"`
	Priority   string `json:"priority"`
	Icon       string `json:"icon"`
}

type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type ImproveTaskRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type TaskImprovement struct {
	ImprovedTitle       string `json:"improved_title"`
	ImprovedDescription string `json:"improved_description"`
	SuggestedPriority   string `json:"suggested_priority"`
	EstimatedTime       string `json:"estimated_time"`
}

type DailyPlan struct {
	MorningFocus      string   `json:"morning_focus"`
	AfternoonGoals    string   `json:"afternoon_goals"`
	EveningReflection string   `json:"evening_reflection"`
	KeyPriorities     []string `json:"key_priorities"`
}
