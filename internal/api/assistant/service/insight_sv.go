package assistantService

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/assistant"
	"github.com/ranjini26/lifeos/internal/entity"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
)

// Insights computes the productivity snapshot. The five stores load in
// parallel; a store that fails just contributes an empty list, so the
// summary always comes back.
func (s *assistantService) Insights(ctx context.Context, userID string) (assistant.InsightsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var (
		wg          sync.WaitGroup
		tasks       []entity.Task
		notes       []entity.Note
		habits      []entity.Habit
		reflections []entity.Reflection
		events      []entity.CalendarEvent
	)

	fetch := func(name string, load func() error) {
		defer wg.Done()
		if err := load(); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"store":      name,
				"error":      err.Error(),
			}).Warn("Skipping store during productivity analysis")
		}
	}

	wg.Add(5)
	go fetch("tasks", func() error {
		var err error
		tasks, err = s.workspaceService.GetTasksByUserID(ctx, userID)
		return err
	})
	go fetch("notes", func() error {
		var err error
		notes, err = s.workspaceService.GetNotesByUserID(ctx, userID)
		return err
	})
	go fetch("habits", func() error {
		var err error
		habits, err = s.workspaceService.GetHabitsByUserID(ctx, userID)
		return err
	})
	go fetch("reflections", func() error {
		var err error
		reflections, err = s.workspaceService.GetReflectionsByUserID(ctx, userID)
		return err
	})
	go fetch("events", func() error {
		var err error
		events, err = s.workspaceService.GetEventsByUserID(ctx, userID)
		return err
	})
	wg.Wait()

	stats := buildStats(tasks, notes, habits, reflections, events, time.Now())

	return assistant.InsightsResponse{
		Summary: summarize(stats),
		Stats:   stats,
	}, nil
}

func buildStats(
	tasks []entity.Task,
	notes []entity.Note,
	habits []entity.Habit,
	reflections []entity.Reflection,
	events []entity.CalendarEvent,
	now time.Time,
) entity.ProductivityStats {
	weekAgo := now.AddDate(0, 0, -7)

	stats := entity.ProductivityStats{
		TotalTasks:  len(tasks),
		TotalHabits: len(habits),
	}

	for _, task := range tasks {
		if task.Status == string(entity.TaskStatusDone) {
			stats.CompletedTasks++
		} else if task.Priority == string(entity.TaskPriorityHigh) {
			stats.HighPriorityPending++
		}
	}

	if stats.TotalTasks > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100))
	}

	for _, note := range notes {
		if note.UpdatedAt.After(weekAgo) {
			stats.RecentNotes++
		}
	}

	for _, reflection := range reflections {
		if reflection.Date.After(weekAgo) {
			stats.RecentReflections++
		}
	}

	for _, event := range events {
		if event.StartTime.After(now) {
			stats.UpcomingEvents++
		}
	}

	return stats
}

func summarize(stats entity.ProductivityStats) string {
	insights := make([]string, 0, 6)

	insights = append(insights, fmt.Sprintf("You have %d total tasks with a %d%% completion rate.",
		stats.TotalTasks, stats.CompletionRate))

	if stats.HighPriorityPending > 0 {
		insights = append(insights, fmt.Sprintf("You have %d high-priority tasks that need attention.",
			stats.HighPriorityPending))
	} else {
		insights = append(insights, "Great job! No high-priority tasks are pending.")
	}

	activity := "low"
	if stats.RecentNotes > 5 {
		activity = "high"
	} else if stats.RecentNotes > 2 {
		activity = "moderate"
	}
	insights = append(insights, fmt.Sprintf("You've created %d notes in the past week, showing %s documentation activity.",
		stats.RecentNotes, activity))

	insights = append(insights, fmt.Sprintf("You're tracking %d habits for personal development.",
		stats.TotalHabits))

	if stats.RecentReflections > 0 {
		insights = append(insights, fmt.Sprintf("You've completed %d reflections this week, showing good self-awareness.",
			stats.RecentReflections))
	} else {
		insights = append(insights, "Consider adding daily reflections to track your progress.")
	}

	switch {
	case stats.CompletionRate > 80:
		insights = append(insights, "Excellent productivity! You're completing most of your tasks.")
	case stats.CompletionRate > 60:
		insights = append(insights, "Good productivity, but there's room for improvement.")
	default:
		insights = append(insights, "Your task completion rate could use some attention. Consider prioritizing and breaking down large tasks.")
	}

	return strings.Join(insights, " ")
}
