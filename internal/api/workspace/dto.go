package workspace

type CreateTaskRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      string `json:"status" validate:"omitempty,oneof=todo inprogress done"`
	DueDate     string `json:"due_date"`
	Assignee    string `json:"assignee"`
}

type UpdateTaskRequest struct {
	ID          string `json:"id" validate:"required"`
	UserID      string `json:"user_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high"`
	Status      string `json:"status" validate:"required,oneof=todo inprogress done"`
	DueDate     string `json:"due_date"`
	Assignee    string `json:"assignee"`
}

type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type CreateNoteRequest struct {
	UserID  string   `json:"user_id" validate:"required"`
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Starred bool     `json:"starred"`
}

type UpdateNoteRequest struct {
	ID      string   `json:"id" validate:"required"`
	UserID  string   `json:"user_id" validate:"required"`
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Starred bool     `json:"starred"`
}

type NoteResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Starred   bool     `json:"starred"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type CreateHabitRequest struct {
	UserID            string `json:"user_id" validate:"required"`
	Name              string `json:"name" validate:"required"`
	Description       string `json:"description"`
	TargetDaysPerWeek int    `json:"target_days_per_week" validate:"omitempty,min=1,max=7"`
	Color             string `json:"color"`
}

type UpdateHabitRequest struct {
	ID                string `json:"id" validate:"required"`
	UserID            string `json:"user_id" validate:"required"`
	Name              string `json:"name" validate:"required"`
	Description       string `json:"description"`
	TargetDaysPerWeek int    `json:"target_days_per_week" validate:"omitempty,min=1,max=7"`
	Color             string `json:"color"`
}

type ToggleHabitEntryRequest struct {
	HabitID string `json:"habit_id" validate:"required"`
	UserID  string `json:"user_id" validate:"required"`
	Date    string `json:"date" validate:"required"`
}

type HabitResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	TargetDaysPerWeek int    `json:"target_days_per_week"`
	Color             string `json:"color"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

type HabitEntryResponse struct {
	ID        string `json:"id"`
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type CreateReflectionRequest struct {
	UserID        string   `json:"user_id" validate:"required"`
	Date          string   `json:"date" validate:"required"`
	Mood          int      `json:"mood" validate:"omitempty,min=1,max=10"`
	EnergyLevel   int      `json:"energy_level" validate:"omitempty,min=1,max=10"`
	Gratitude     []string `json:"gratitude"`
	Wins          []string `json:"wins"`
	Challenges    []string `json:"challenges"`
	TomorrowFocus []string `json:"tomorrow_focus"`
	Notes         string   `json:"notes"`
}

type UpdateReflectionRequest struct {
	ID            string   `json:"id" validate:"required"`
	UserID        string   `json:"user_id" validate:"required"`
	Mood          int      `json:"mood" validate:"omitempty,min=1,max=10"`
	EnergyLevel   int      `json:"energy_level" validate:"omitempty,min=1,max=10"`
	Gratitude     []string `json:"gratitude"`
	Wins          []string `json:"wins"`
	Challenges    []string `json:"challenges"`
	TomorrowFocus []string `json:"tomorrow_focus"`
	Notes         string   `json:"notes"`
}

type ReflectionResponse struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	Mood          int      `json:"mood"`
	EnergyLevel   int      `json:"energy_level"`
	Gratitude     []string `json:"gratitude"`
	Wins          []string `json:"wins"`
	Challenges    []string `json:"challenges"`
	TomorrowFocus []string `json:"tomorrow_focus"`
	Notes         string   `json:"notes"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

type CreateEventRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	Location    string `json:"location"`
	Color       string `json:"color"`
}

type UpdateEventRequest struct {
	ID          string `json:"id" validate:"required"`
	UserID      string `json:"user_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	Location    string `json:"location"`
	Color       string `json:"color"`
}

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	Color       string `json:"color"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
