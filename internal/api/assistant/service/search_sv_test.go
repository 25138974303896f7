package assistantService

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/entity"
	"github.com/ranjini26/lifeos/pkg/nlp"
)

// gatedWorkspace blocks every store load until all five have been
// requested, so a sequential search would never finish.
type gatedWorkspace struct {
	*fakeWorkspace
	arrived int32
	release chan struct{}
}

func (g *gatedWorkspace) rendezvous() {
	if atomic.AddInt32(&g.arrived, 1) == 5 {
		close(g.release)
	}
	<-g.release
}

func (g *gatedWorkspace) GetTasksByUserID(ctx context.Context, userID string) ([]entity.Task, error) {
	g.rendezvous()
	return g.fakeWorkspace.GetTasksByUserID(ctx, userID)
}

func (g *gatedWorkspace) GetNotesByUserID(ctx context.Context, userID string) ([]entity.Note, error) {
	g.rendezvous()
	return g.fakeWorkspace.GetNotesByUserID(ctx, userID)
}

func (g *gatedWorkspace) GetHabitsByUserID(ctx context.Context, userID string) ([]entity.Habit, error) {
	g.rendezvous()
	return g.fakeWorkspace.GetHabitsByUserID(ctx, userID)
}

func (g *gatedWorkspace) GetReflectionsByUserID(ctx context.Context, userID string) ([]entity.Reflection, error) {
	g.rendezvous()
	return g.fakeWorkspace.GetReflectionsByUserID(ctx, userID)
}

func (g *gatedWorkspace) GetEventsByUserID(ctx context.Context, userID string) ([]entity.CalendarEvent, error) {
	g.rendezvous()
	return g.fakeWorkspace.GetEventsByUserID(ctx, userID)
}

func TestSearchMatchesAcrossStores(t *testing.T) {
	ts := newTestService()
	ts.workspace.tasks = []entity.Task{
		{ID: "t1", Title: "prepare dentist paperwork", Priority: "medium", Status: "todo"},
	}
	ts.workspace.notes = []entity.Note{
		{ID: "n1", Title: "insurance", Content: "dentist covered under the new plan"},
		{ID: "n2", Title: "groceries", Content: "milk and eggs"},
	}
	ts.workspace.events = []entity.CalendarEvent{
		{ID: "e1", Title: "checkup", Location: "dentist office downtown"},
	}

	results, err := ts.service.Search(context.Background(), "user-1", "dentist", "")
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, "task", results[0].Type)
	assert.Equal(t, "note", results[1].Type)
	assert.Equal(t, "calendar", results[2].Type)
}

func TestSearchMatchesNoteTags(t *testing.T) {
	ts := newTestService()
	ts.workspace.notes = []entity.Note{
		{ID: "n1", Title: "standup", Content: "sync summary", Tags: []string{"meeting", "work"}},
		{ID: "n2", Title: "recipe", Content: "pasta", Tags: []string{"cooking"}},
	}

	results, err := ts.service.Search(context.Background(), "user-1", "meeting", nlp.DataTypeNote)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "n1", results[0].ID)
}

func TestSearchMatchesReflectionLists(t *testing.T) {
	ts := newTestService()
	ts.workspace.reflections = []entity.Reflection{
		{ID: "r1", Wins: []string{"shipped the release"}},
		{ID: "r2", Gratitude: []string{"sunny weather"}},
	}

	results, err := ts.service.Search(context.Background(), "user-1", "release", nlp.DataTypeReflection)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "r1", results[0].ID)
}

func TestSearchEmptyQueryWithTypeListsAll(t *testing.T) {
	ts := newTestService()
	ts.workspace.tasks = []entity.Task{
		{ID: "t1", Title: "one"},
		{ID: "t2", Title: "two"},
		{ID: "t3", Title: "three"},
	}
	ts.workspace.notes = []entity.Note{{ID: "n1", Title: "should not appear"}}

	results, err := ts.service.Search(context.Background(), "user-1", "", nlp.DataTypeTask)
	require.NoError(t, err)

	require.Len(t, results, 3)
	for _, result := range results {
		assert.Equal(t, "task", result.Type)
	}
}

func TestSearchTypeFilterExcludesOtherStores(t *testing.T) {
	ts := newTestService()
	ts.workspace.tasks = []entity.Task{{ID: "t1", Title: "project kickoff"}}
	ts.workspace.notes = []entity.Note{{ID: "n1", Title: "project notes"}}

	results, err := ts.service.Search(context.Background(), "user-1", "project", nlp.DataTypeNote)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "note", results[0].Type)
}

func TestSearchQueriesStoresConcurrently(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	ws := &gatedWorkspace{
		fakeWorkspace: &fakeWorkspace{
			tasks: []entity.Task{{ID: "t1", Title: "project kickoff"}},
			notes: []entity.Note{{ID: "n1", Title: "project notes"}},
		},
		release: make(chan struct{}),
	}

	svc := &assistantService{
		log:              log,
		classifier:       nlp.NewClassifier(),
		workspaceService: ws,
	}

	type outcome struct {
		results []entity.SearchResult
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		results, err := svc.Search(context.Background(), "user-1", "project", "")
		done <- outcome{results: results, err: err}
	}()

	select {
	case out := <-done:
		require.NoError(t, out.err)
		assert.Len(t, out.results, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("search did not query the stores concurrently")
	}
}

func TestSearchToleratesFailingStore(t *testing.T) {
	ts := newTestService()
	ts.workspace.tasksErr = assert.AnError
	ts.workspace.notes = []entity.Note{
		{ID: "n1", Title: "project plan", Content: "draft"},
	}

	results, err := ts.service.Search(context.Background(), "user-1", "project", "")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "n1", results[0].ID)
}

func TestSearchTruncatesLongSnippets(t *testing.T) {
	ts := newTestService()
	long := ""
	for i := 0; i < 30; i++ {
		long += "irrigation "
	}
	ts.workspace.notes = []entity.Note{{ID: "n1", Title: "garden", Content: long}}

	results, err := ts.service.Search(context.Background(), "user-1", "irrigation", nlp.DataTypeNote)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Len(t, results[0].Snippet, snippetLimit+3)
}
