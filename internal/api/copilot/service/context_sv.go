package copilotService

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/context"

	contextPkg "github.com/ranjini26/lifeos/pkg/context"
	"github.com/ranjini26/lifeos/pkg/log"
)

func timeOfDay(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "morning"
	case hour < 17:
		return "afternoon"
	default:
		return "evening"
	}
}

// buildUserContext summarizes the user's workspace into the prompt the
// models receive. A store that fails to load is simply left out.
func (s *copilotService) buildUserContext(ctx context.Context, userID string) string {
	requestID := contextPkg.GetRequestID(ctx)

	taskSummary := "No current tasks"
	if tasks, err := s.workspace.GetTasksByUserID(ctx, userID); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to load tasks for copilot context")
	} else if len(tasks) > 0 {
		parts := make([]string, 0, len(tasks))
		for _, task := range tasks {
			parts = append(parts, fmt.Sprintf("%s (%s priority, %s)", task.Title, task.Priority, task.Status))
		}
		taskSummary = "Tasks: " + strings.Join(parts, ", ")
	}

	habitSummary := "No tracked habits"
	if habits, err := s.workspace.GetHabitsByUserID(ctx, userID); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to load habits for copilot context")
	} else if len(habits) > 0 {
		parts := make([]string, 0, len(habits))
		for _, habit := range habits {
			parts = append(parts, fmt.Sprintf("%s (target %d days/week)", habit.Name, habit.TargetDaysPerWeek))
		}
		habitSummary = "Habits: " + strings.Join(parts, ", ")
	}

	notesSummary := "No recent notes"
	if notes, err := s.workspace.GetNotesByUserID(ctx, userID); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to load notes for copilot context")
	} else if len(notes) > 0 {
		titles := make([]string, 0, 3)
		for _, note := range notes {
			titles = append(titles, note.Title)
			if len(titles) == 3 {
				break
			}
		}
		notesSummary = "Recent notes: " + strings.Join(titles, ", ")
	}

	now := time.Now()

	return fmt.Sprintf(`Current context:
Time: %s on %s
%s
%s
%s

Analyze this data and provide insights about productivity patterns, suggest improvements, and recommend optimizations.`,
		timeOfDay(now), now.Weekday().String(), taskSummary, habitSummary, notesSummary)
}
