package assistantService

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/entity"
	"github.com/ranjini26/lifeos/pkg/nlp"
)

func TestExecuteHelpCommand(t *testing.T) {
	ts := newTestService()

	response, err := ts.service.Execute(context.Background(), "user-1", "session-1", "friday what can you do")
	require.NoError(t, err)

	assert.Equal(t, "help", response.Intent)
	assert.True(t, response.Success)
	assert.Contains(t, responseTemplates["help"], response.Response)
}

func TestExecuteSearchCommandReportsMatchCount(t *testing.T) {
	ts := newTestService()
	ts.workspace.tasks = []entity.Task{
		{ID: "t1", Title: "urgent client call", Priority: "high", Status: "todo"},
		{ID: "t2", Title: "water the plants", Priority: "low", Status: "todo"},
	}

	response, err := ts.service.Execute(context.Background(), "user-1", "session-1", "find my urgent tasks")
	require.NoError(t, err)

	assert.Equal(t, "search", response.Intent)
	assert.True(t, response.Success)
	require.Len(t, response.Results, 1)
	assert.Equal(t, "t1", response.Results[0].ID)
	assert.Contains(t, response.Response, "I found 1 item matching your request.")
}

func TestExecuteSearchCommandTruncatesDisplayedResults(t *testing.T) {
	ts := newTestService()
	for i := 0; i < 8; i++ {
		ts.workspace.tasks = append(ts.workspace.tasks, entity.Task{
			ID:       fmt.Sprintf("t%d", i),
			Title:    fmt.Sprintf("urgent item %d", i),
			Priority: "high",
			Status:   "todo",
		})
	}

	response, err := ts.service.Execute(context.Background(), "user-1", "session-1", "find my urgent tasks")
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.Len(t, response.Results, maxDisplayedResults)
	assert.Contains(t, response.Response, "I found 8 items matching your request.")
}

func TestExecuteSearchCommandNoMatches(t *testing.T) {
	ts := newTestService()

	response, err := ts.service.Execute(context.Background(), "user-1", "session-1", "find my quarterly report")
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.Empty(t, response.Results)
	assert.Contains(t, responseTemplates["noDataFound"], response.Response)
}

func TestExecuteAnalyzeCommand(t *testing.T) {
	ts := newTestService()
	ts.workspace.tasks = []entity.Task{
		{ID: "t1", Status: "done", Priority: "medium"},
		{ID: "t2", Status: "todo", Priority: "high"},
	}

	response, err := ts.service.Execute(context.Background(), "user-1", "session-1", "analyze my productivity")
	require.NoError(t, err)

	assert.Equal(t, "analyze", response.Intent)
	assert.True(t, response.Success)
	assert.Contains(t, response.Response, "You have 2 total tasks with a 50% completion rate.")
	assert.Contains(t, response.Response, "You have 1 high-priority tasks that need attention.")
}

func TestExecuteExplicitTaskCreation(t *testing.T) {
	ts := newTestService()

	response, err := ts.service.Execute(context.Background(), "user-1", "session-1", "create task finish the urgent report")
	require.NoError(t, err)

	assert.Equal(t, "create_task", response.Intent)
	assert.True(t, response.Success)
	assert.Contains(t, responseTemplates["taskCreated"], response.Response)

	require.Len(t, ts.sink.actions, 1)
	assert.Equal(t, "task", ts.sink.actions[0].kind)
	assert.Equal(t, "finish the urgent report", ts.sink.actions[0].content)
	assert.Equal(t, nlp.PriorityHigh, ts.sink.actions[0].priority)
}

func TestExecuteAutoDetectedTask(t *testing.T) {
	ts := newTestService()

	response, err := ts.service.Execute(context.Background(), "user-1", "session-1", "call the dentist tomorrow")
	require.NoError(t, err)

	assert.Equal(t, "create_task", response.Intent)
	assert.True(t, response.Success)
	require.Len(t, ts.sink.actions, 1)
	assert.Equal(t, "task", ts.sink.actions[0].kind)
	assert.Equal(t, "call the dentist tomorrow", ts.sink.actions[0].content)
}

func TestExecuteAutoDetectedNote(t *testing.T) {
	ts := newTestService()

	response, err := ts.service.Execute(context.Background(), "user-1", "session-1", "the architecture discussion went really well and everyone agreed on the proposal")
	require.NoError(t, err)

	assert.Equal(t, "create_note", response.Intent)
	assert.True(t, response.Success)
	require.Len(t, ts.sink.actions, 1)
	assert.Equal(t, "note", ts.sink.actions[0].kind)
}

func TestExecuteEmptyTranscript(t *testing.T) {
	ts := newTestService()

	response, err := ts.service.Execute(context.Background(), "user-1", "session-1", "")
	require.NoError(t, err)

	assert.False(t, response.Success)
	assert.Contains(t, responseTemplates["error"], response.Response)
	assert.Empty(t, ts.sink.actions)
}

func TestExecuteSinkFailureReturnsErrorResponse(t *testing.T) {
	ts := newTestService()
	ts.sink.err = assert.AnError

	response, err := ts.service.Execute(context.Background(), "user-1", "session-1", "create task pay the bills")
	require.NoError(t, err)

	assert.False(t, response.Success)
	assert.Contains(t, responseTemplates["error"], response.Response)
}

func TestExecuteSynthesizesAndPersistsSpokenReply(t *testing.T) {
	ts := newTestService()
	ts.service.tts = &fakeTTS{audio: []byte("mp3-bytes")}
	ts.service.ttsFallback = &fakeTTS{}
	ts.service.s3 = &fakeS3{}

	response, err := ts.service.Execute(context.Background(), "user-1", "session-1", "friday what can you do")
	require.NoError(t, err)

	assert.NotEmpty(t, response.AudioURL)
	require.Len(t, ts.turns.turns, 1)
	assert.Equal(t, response.AudioURL, ts.turns.turns[0].AudioURL)
}

func TestExecuteContinuesWithoutAudioWhenSynthesisFails(t *testing.T) {
	ts := newTestService()
	ts.service.tts = &fakeTTS{err: assert.AnError}
	ts.service.ttsFallback = &fakeTTS{err: assert.AnError}
	ts.service.s3 = &fakeS3{}

	response, err := ts.service.Execute(context.Background(), "user-1", "session-1", "friday what can you do")
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.Empty(t, response.AudioURL)
}

func TestExecutePersistsTurn(t *testing.T) {
	ts := newTestService()

	_, err := ts.service.Execute(context.Background(), "user-1", "session-7", "create note remember the wifi password")
	require.NoError(t, err)

	require.Len(t, ts.turns.turns, 1)
	turn := ts.turns.turns[0]
	assert.Equal(t, "user-1", turn.UserID)
	assert.Equal(t, "session-7", turn.SessionID)
	assert.Equal(t, "create note remember the wifi password", turn.Transcript)
	assert.Equal(t, "create_note", turn.Intent)
	assert.True(t, turn.Success)
}
