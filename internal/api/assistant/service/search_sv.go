package assistantService

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/entity"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
	"github.com/ranjini26/lifeos/pkg/nlp"
)

const snippetLimit = 120

// Search fans one query out across every workspace store concurrently
// and merges the hits. An empty query with a type filter lists
// everything of that type; a store that fails to load contributes zero
// results instead of failing the whole search.
func (s *assistantService) Search(ctx context.Context, userID string, query string, dataType nlp.DataType) ([]entity.SearchResult, error) {
	requestID := contextPkg.GetRequestID(ctx)
	lowerQuery := strings.ToLower(strings.TrimSpace(query))

	var (
		taskHits       []entity.SearchResult
		noteHits       []entity.SearchResult
		habitHits      []entity.SearchResult
		reflectionHits []entity.SearchResult
		calendarHits   []entity.SearchResult
	)

	var wg sync.WaitGroup
	search := func(name string, load func() ([]entity.SearchResult, error), out *[]entity.SearchResult) {
		defer wg.Done()
		hits, err := load()
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"store":      name,
				"error":      err.Error(),
			}).Warn("Could not search workspace store")
			return
		}
		*out = hits
	}

	wg.Add(5)
	go search("tasks", func() ([]entity.SearchResult, error) {
		return s.searchTasks(ctx, userID, lowerQuery, dataType)
	}, &taskHits)
	go search("notes", func() ([]entity.SearchResult, error) {
		return s.searchNotes(ctx, userID, lowerQuery, dataType)
	}, &noteHits)
	go search("habits", func() ([]entity.SearchResult, error) {
		return s.searchHabits(ctx, userID, lowerQuery, dataType)
	}, &habitHits)
	go search("reflections", func() ([]entity.SearchResult, error) {
		return s.searchReflections(ctx, userID, lowerQuery, dataType)
	}, &reflectionHits)
	go search("calendar", func() ([]entity.SearchResult, error) {
		return s.searchEvents(ctx, userID, lowerQuery, dataType)
	}, &calendarHits)
	wg.Wait()

	results := make([]entity.SearchResult, 0, len(taskHits)+len(noteHits)+len(habitHits)+len(reflectionHits)+len(calendarHits))
	results = append(results, taskHits...)
	results = append(results, noteHits...)
	results = append(results, habitHits...)
	results = append(results, reflectionHits...)
	results = append(results, calendarHits...)

	return results, nil
}

func (s *assistantService) searchTasks(ctx context.Context, userID string, lowerQuery string, dataType nlp.DataType) ([]entity.SearchResult, error) {
	if dataType != "" && dataType != nlp.DataTypeTask {
		return nil, nil
	}
	tasks, err := s.workspaceService.GetTasksByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	hits := make([]entity.SearchResult, 0)
	for _, task := range tasks {
		if lowerQuery == "" ||
			strings.Contains(strings.ToLower(task.Title), lowerQuery) ||
			strings.Contains(strings.ToLower(task.Description), lowerQuery) ||
			strings.Contains(strings.ToLower(task.Priority), lowerQuery) ||
			strings.Contains(strings.ToLower(task.Status), lowerQuery) {
			hits = append(hits, entity.SearchResult{
				Type:    "task",
				ID:      task.ID,
				Title:   task.Title,
				Snippet: snippet(task.Description),
			})
		}
	}
	return hits, nil
}

func (s *assistantService) searchNotes(ctx context.Context, userID string, lowerQuery string, dataType nlp.DataType) ([]entity.SearchResult, error) {
	if dataType != "" && dataType != nlp.DataTypeNote {
		return nil, nil
	}
	notes, err := s.workspaceService.GetNotesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	hits := make([]entity.SearchResult, 0)
	for _, note := range notes {
		if lowerQuery == "" ||
			strings.Contains(strings.ToLower(note.Title), lowerQuery) ||
			strings.Contains(strings.ToLower(note.Content), lowerQuery) ||
			containsAny(note.Tags, lowerQuery) {
			hits = append(hits, entity.SearchResult{
				Type:    "note",
				ID:      note.ID,
				Title:   note.Title,
				Snippet: snippet(note.Content),
			})
		}
	}
	return hits, nil
}

func (s *assistantService) searchHabits(ctx context.Context, userID string, lowerQuery string, dataType nlp.DataType) ([]entity.SearchResult, error) {
	if dataType != "" && dataType != nlp.DataTypeHabit {
		return nil, nil
	}
	habits, err := s.workspaceService.GetHabitsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	hits := make([]entity.SearchResult, 0)
	for _, habit := range habits {
		if lowerQuery == "" ||
			strings.Contains(strings.ToLower(habit.Name), lowerQuery) ||
			strings.Contains(strings.ToLower(habit.Description), lowerQuery) {
			hits = append(hits, entity.SearchResult{
				Type:    "habit",
				ID:      habit.ID,
				Title:   habit.Name,
				Snippet: snippet(habit.Description),
			})
		}
	}
	return hits, nil
}

func (s *assistantService) searchReflections(ctx context.Context, userID string, lowerQuery string, dataType nlp.DataType) ([]entity.SearchResult, error) {
	if dataType != "" && dataType != nlp.DataTypeReflection {
		return nil, nil
	}
	reflections, err := s.workspaceService.GetReflectionsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	hits := make([]entity.SearchResult, 0)
	for _, reflection := range reflections {
		if lowerQuery == "" ||
			strings.Contains(strings.ToLower(reflection.Notes), lowerQuery) ||
			containsAny(reflection.Gratitude, lowerQuery) ||
			containsAny(reflection.Wins, lowerQuery) ||
			containsAny(reflection.Challenges, lowerQuery) {
			hits = append(hits, entity.SearchResult{
				Type:    "reflection",
				ID:      reflection.ID,
				Title:   "Reflection " + reflection.Date.Format("2006-01-02"),
				Snippet: snippet(reflection.Notes),
			})
		}
	}
	return hits, nil
}

func (s *assistantService) searchEvents(ctx context.Context, userID string, lowerQuery string, dataType nlp.DataType) ([]entity.SearchResult, error) {
	if dataType != "" && dataType != nlp.DataTypeCalendar {
		return nil, nil
	}
	events, err := s.workspaceService.GetEventsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	hits := make([]entity.SearchResult, 0)
	for _, event := range events {
		if lowerQuery == "" ||
			strings.Contains(strings.ToLower(event.Title), lowerQuery) ||
			strings.Contains(strings.ToLower(event.Description), lowerQuery) ||
			strings.Contains(strings.ToLower(event.Location), lowerQuery) {
			hits = append(hits, entity.SearchResult{
				Type:    "calendar",
				ID:      event.ID,
				Title:   event.Title,
				Snippet: snippet(event.Description),
			})
		}
	}
	return hits, nil
}

func containsAny(values []string, lowerQuery string) bool {
	if lowerQuery == "" {
		return false
	}
	for _, value := range values {
		if strings.Contains(strings.ToLower(value), lowerQuery) {
			return true
		}
	}
	return false
}

func snippet(text string) string {
	if len(text) <= snippetLimit {
		return text
	}
	return text[:snippetLimit] + "..."
}
