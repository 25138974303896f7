package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyHelp(t *testing.T) {
	c := NewClassifier()

	for _, text := range []string{"help", "what can you do", "can you help me out"} {
		cmd := c.Classify(text)
		assert.Equal(t, IntentHelp, cmd.Intent, "text: %s", text)
	}
}

func TestClassifySearch(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		text     string
		query    string
		dataType DataType
	}{
		{"find my urgent tasks", "urgent", DataTypeTask},
		{"show me my notes", "", DataTypeNote},
		{"what are my habits", "", DataTypeHabit},
		{"search groceries", "groceries", ""},
		{"get my calendar events", "", DataTypeCalendar},
		{"show me all my reflections", "my", DataTypeReflection},
	}

	for _, tt := range tests {
		cmd := c.Classify(tt.text)
		require.Equal(t, IntentSearch, cmd.Intent, "text: %s", tt.text)
		assert.Equal(t, tt.query, cmd.Query, "text: %s", tt.text)
		assert.Equal(t, tt.dataType, cmd.DataType, "text: %s", tt.text)
	}
}

func TestClassifyAnalyze(t *testing.T) {
	c := NewClassifier()

	for _, text := range []string{"analyze my week", "how am i doing", "my progress"} {
		cmd := c.Classify(text)
		assert.Equal(t, IntentAnalyze, cmd.Intent, "text: %s", text)
	}
}

func TestClassifySearchWinsOverCreate(t *testing.T) {
	c := NewClassifier()

	// "task" appears in the command but the search trigger takes precedence
	cmd := c.Classify("find my task about the report")
	assert.Equal(t, IntentSearch, cmd.Intent)
	assert.Equal(t, DataTypeTask, cmd.DataType)
}

func TestClassifyExplicitTask(t *testing.T) {
	c := NewClassifier()

	cmd := c.Classify("create task buy milk tomorrow")
	require.Equal(t, IntentCreateTask, cmd.Intent)
	assert.Equal(t, "buy milk tomorrow", cmd.Content)
	assert.Equal(t, PriorityMedium, cmd.Priority)
	assert.True(t, cmd.Explicit)

	cmd = c.Classify("add task call the dentist today")
	require.Equal(t, IntentCreateTask, cmd.Intent)
	assert.Equal(t, "call the dentist today", cmd.Content)
	assert.Equal(t, PriorityHigh, cmd.Priority)
}

func TestClassifyExplicitTaskEmptyContent(t *testing.T) {
	c := NewClassifier()

	cmd := c.Classify("create task")
	require.Equal(t, IntentCreateTask, cmd.Intent)
	assert.Empty(t, cmd.Content)
}

func TestClassifyExplicitNote(t *testing.T) {
	c := NewClassifier()

	cmd := c.Classify("take note remember to buy flowers")
	require.Equal(t, IntentCreateNote, cmd.Intent)
	assert.Equal(t, "remember to buy flowers", cmd.Content)
	assert.True(t, cmd.Explicit)
}

func TestClassifyAutoDetectTask(t *testing.T) {
	c := NewClassifier()

	// "call" + "dentist" + "tomorrow" give a score well above the threshold
	cmd := c.Classify("call the dentist tomorrow")
	require.Equal(t, IntentCreateTask, cmd.Intent)
	assert.Equal(t, "call the dentist tomorrow", cmd.Content)
	assert.Equal(t, PriorityMedium, cmd.Priority)
	assert.False(t, cmd.Explicit)
	assert.GreaterOrEqual(t, cmd.Score, taskScoreThreshold)
}

func TestClassifyAutoDetectNote(t *testing.T) {
	c := NewClassifier()

	cmd := c.Classify("the sunset was beautiful this evening")
	require.Equal(t, IntentCreateNote, cmd.Intent)
	assert.Equal(t, "the sunset was beautiful this evening", cmd.Content)
	assert.False(t, cmd.Explicit)
}

func TestTaskScore(t *testing.T) {
	c := NewClassifier().(*Classifier)

	tests := []struct {
		text  string
		score int
	}{
		// "meeting" +1, time reference +2, short +1
		{"meeting at 3", 4},
		// "call" + "dentist" + "tomorrow"
		{"call the dentist tomorrow", 3},
		// question mark cancels the short-command bonus
		{"is it raining?", 0},
		{"the sunset was beautiful this evening", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.score, c.TaskScore(tt.text), "text: %s", tt.text)
	}
}

func TestDeterminePriority(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, PriorityHigh, c.DeterminePriority("urgent: submit the report"))
	assert.Equal(t, PriorityHigh, c.DeterminePriority("pay the bills today"))
	assert.Equal(t, PriorityLow, c.DeterminePriority("maybe clean the garage sometime"))
	assert.Equal(t, PriorityMedium, c.DeterminePriority("water the plants"))
	// high wins when both appear
	assert.Equal(t, PriorityHigh, c.DeterminePriority("urgent but maybe later"))
}

func TestDetectWakeWord(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		text    string
		matched string
	}{
		{"hey friday", "hey friday"},
		{"Hey Friday, what's up", "hey friday"},
		{"ok friday", "ok friday"},
		{"friday are you there", "friday"},
	}

	for _, tt := range tests {
		wake, ok := c.DetectWakeWord(tt.text)
		require.True(t, ok, "text: %s", tt.text)
		assert.Equal(t, tt.matched, wake, "text: %s", tt.text)
	}

	_, ok := c.DetectWakeWord("hello there")
	assert.False(t, ok)
}

func TestStripWakeWord(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, "create task buy milk", c.StripWakeWord("hey friday create task buy milk"))
	assert.Equal(t, "show me my notes", c.StripWakeWord("Friday, show me my notes"))
	assert.Equal(t, "create task buy milk", c.StripWakeWord("create task buy milk"))
}
