package nlp

type Intent string

const (
	IntentHelp       Intent = "help"
	IntentSearch     Intent = "search"
	IntentAnalyze    Intent = "analyze"
	IntentCreateTask Intent = "create_task"
	IntentCreateNote Intent = "create_note"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type DataType string

const (
	DataTypeTask       DataType = "task"
	DataTypeNote       DataType = "note"
	DataTypeHabit      DataType = "habit"
	DataTypeReflection DataType = "reflection"
	DataTypeCalendar   DataType = "calendar"
)

// Command is the result of classifying one transcript. Content carries the
// task title or note body for create intents; Query and DataType are only
// set for search.
type Command struct {
	Intent   Intent   `json:"intent"`
	Content  string   `json:"content,omitempty"`
	Priority Priority `json:"priority,omitempty"`
	Query    string   `json:"query,omitempty"`
	DataType DataType `json:"data_type,omitempty"`
	Score    int      `json:"score"`
	Explicit bool     `json:"explicit"`
}

type IClassifier interface {
	Classify(text string) *Command
	TaskScore(text string) int
	DeterminePriority(text string) Priority
	DetectWakeWord(text string) (string, bool)
	StripWakeWord(text string) string
}
