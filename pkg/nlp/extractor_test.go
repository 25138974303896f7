package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTaskTitle(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		command string
		want    string
	}{
		{"create task Finish the quarterly report", "Finish the quarterly report"},
		{"add task buy milk", "buy milk"},
		{"new task schedule dentist appointment", "schedule dentist appointment"},
		{"task water the plants", "water the plants"},
		{"CREATE TASK review the slides", "review the slides"},
		// bare command leaves nothing to extract
		{"create task", ""},
		{"add task", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, e.TaskTitle(tt.command), "command: %s", tt.command)
	}
}

func TestExtractNoteContent(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		command string
		want    string
	}{
		{"create note the client prefers morning calls", "the client prefers morning calls"},
		{"take note remember to buy flowers", "remember to buy flowers"},
		{"add note wifi password is hunter2", "wifi password is hunter2"},
		{"note the meeting moved to thursday", "the meeting moved to thursday"},
		{"take note", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, e.NoteContent(tt.command), "command: %s", tt.command)
	}
}

func TestExtractKeepsCommandWordInsideContent(t *testing.T) {
	e := NewExtractor()

	got := e.TaskTitle("task split the task into subtasks")
	assert.Equal(t, "split the task into subtasks", got)

	got = e.NoteContent("note a note about notes")
	assert.Equal(t, "a note about notes", got)
}
