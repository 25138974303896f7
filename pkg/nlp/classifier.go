package nlp

import (
	"regexp"
	"strings"
)

const taskScoreThreshold = 2

type Classifier struct {
	wakeWords         []string
	taskIndicators    map[string][]string
	highPriorityWords []string
	lowPriorityWords  []string
	helpTriggers      []string
	searchTriggers    []string
	analyzeTriggers   []string
	taskTriggers      []string
	noteTriggers      []string
	extractor         *Extractor
}

var timeReferenceRegex = regexp.MustCompile(`\b(at|on|by)\s+\d`)

func NewClassifier() IClassifier {
	return &Classifier{
		wakeWords: []string{
			"hey friday",
			"ok friday",
			"hello friday",
			"hi friday",
			"friday",
		},
		taskIndicators: getTaskIndicators(),
		highPriorityWords: []string{
			"urgent", "asap", "immediately", "critical", "important", "deadline", "today",
		},
		lowPriorityWords: []string{
			"maybe", "sometime", "eventually", "when possible", "if time",
		},
		helpTriggers:    []string{"help", "what can you do"},
		searchTriggers:  []string{"find", "search", "show me", "get", "what are"},
		analyzeTriggers: []string{"analyze", "insights", "productivity", "how am i doing", "my progress"},
		taskTriggers:    []string{"create task", "add task", "new task"},
		noteTriggers:    []string{"create note", "add note", "new note", "take note"},
		extractor:       NewExtractor(),
	}
}

// Classify runs the full intent dispatch over one transcript. Trigger groups
// are checked in a fixed order so that a command containing both a search
// word and a task word is still treated as a search.
func (c *Classifier) Classify(text string) *Command {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, trigger := range c.helpTriggers {
		if strings.Contains(lower, trigger) {
			return &Command{Intent: IntentHelp}
		}
	}

	for _, trigger := range c.searchTriggers {
		if strings.Contains(lower, trigger) {
			query, dataType := c.parseSearchQuery(lower)
			return &Command{
				Intent:   IntentSearch,
				Query:    query,
				DataType: dataType,
			}
		}
	}

	for _, trigger := range c.analyzeTriggers {
		if strings.Contains(lower, trigger) {
			return &Command{Intent: IntentAnalyze}
		}
	}

	for _, trigger := range c.taskTriggers {
		if strings.Contains(lower, trigger) {
			title := c.extractor.TaskTitle(text)
			return &Command{
				Intent:   IntentCreateTask,
				Content:  title,
				Priority: c.DeterminePriority(title),
				Explicit: true,
			}
		}
	}

	for _, trigger := range c.noteTriggers {
		if strings.Contains(lower, trigger) {
			return &Command{
				Intent:   IntentCreateNote,
				Content:  c.extractor.NoteContent(text),
				Explicit: true,
			}
		}
	}

	content := strings.TrimSpace(text)
	score := c.TaskScore(lower)
	if score >= taskScoreThreshold {
		return &Command{
			Intent:   IntentCreateTask,
			Content:  content,
			Priority: c.DeterminePriority(lower),
			Score:    score,
		}
	}

	return &Command{
		Intent:  IntentCreateNote,
		Content: content,
		Score:   score,
	}
}

// TaskScore estimates how likely a free-form transcript describes a task.
// Each indicator keyword counts once, a time reference like "at 3" counts
// double, questions count against, and short commands get a small boost.
func (c *Classifier) TaskScore(text string) int {
	lower := strings.ToLower(text)

	score := 0
	for _, indicators := range c.taskIndicators {
		for _, indicator := range indicators {
			if strings.Contains(lower, indicator) {
				score++
			}
		}
	}

	if timeReferenceRegex.MatchString(lower) {
		score += 2
	}
	if strings.Contains(lower, "?") {
		score--
	}
	if len(lower) < 20 {
		score++
	}

	return score
}

func (c *Classifier) DeterminePriority(text string) Priority {
	lower := strings.ToLower(text)

	for _, word := range c.highPriorityWords {
		if strings.Contains(lower, word) {
			return PriorityHigh
		}
	}

	for _, word := range c.lowPriorityWords {
		if strings.Contains(lower, word) {
			return PriorityLow
		}
	}

	return PriorityMedium
}

// DetectWakeWord reports whether the transcript contains one of the wake
// phrases. Longer phrases are checked first so "hey friday" wins over the
// bare "friday".
func (c *Classifier) DetectWakeWord(text string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, wake := range c.wakeWords {
		if strings.Contains(lower, wake) || strings.HasPrefix(lower, wake) {
			return wake, true
		}
	}

	return "", false
}

// StripWakeWord removes a leading wake phrase so a one-shot utterance like
// "hey friday create task buy milk" can be classified directly.
func (c *Classifier) StripWakeWord(text string) string {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	for _, wake := range c.wakeWords {
		if strings.HasPrefix(lower, wake) {
			rest := strings.TrimSpace(trimmed[len(wake):])
			return strings.TrimLeft(rest, ",.!? ")
		}
	}

	return trimmed
}

var (
	leadingArticleRegex = regexp.MustCompile(`^(my|all|the)\s+`)
	trailingTypeRegex   = regexp.MustCompile(`\s+(task|note|habit|reflection|calendar|event)s?.*$`)
	bareTypeRegex       = regexp.MustCompile(`^(task|note|habit|reflection|calendar|event)s?$`)
)

// parseSearchQuery extracts the residual query after the first matching
// search trigger and detects an optional data type filter. A query that is
// nothing but the type word collapses to empty, which callers treat as
// "list everything of that type".
func (c *Classifier) parseSearchQuery(lower string) (string, DataType) {
	var query string
	for _, trigger := range c.searchTriggers {
		if idx := strings.Index(lower, trigger); idx >= 0 {
			query = strings.TrimSpace(lower[idx+len(trigger):])
			break
		}
	}

	var dataType DataType
	switch {
	case strings.Contains(lower, "task"):
		dataType = DataTypeTask
	case strings.Contains(lower, "note"):
		dataType = DataTypeNote
	case strings.Contains(lower, "habit"):
		dataType = DataTypeHabit
	case strings.Contains(lower, "reflection"):
		dataType = DataTypeReflection
	case strings.Contains(lower, "calendar"), strings.Contains(lower, "event"):
		dataType = DataTypeCalendar
	}

	query = leadingArticleRegex.ReplaceAllString(query, "")
	query = trailingTypeRegex.ReplaceAllString(query, "")
	query = strings.TrimSpace(query)

	if dataType != "" && bareTypeRegex.MatchString(query) {
		query = ""
	}

	return query, dataType
}

func getTaskIndicators() map[string][]string {
	return map[string][]string{
		"urgency":     {"urgent", "asap", "immediately", "today", "tomorrow", "deadline", "due"},
		"actions":     {"call", "email", "send", "buy", "purchase", "schedule", "book", "reserve"},
		"obligations": {"need to", "have to", "must", "should", "remind me", "remember to"},
		"work":        {"meeting", "project", "report", "presentation", "review", "finish", "complete"},
		"personal":    {"dentist", "doctor", "appointment", "groceries", "shopping", "bills"},
	}
}
