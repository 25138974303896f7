package assistantService

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/entity"
)

func TestBuildStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tasks := []entity.Task{
		{Status: "done", Priority: "high"},
		{Status: "done", Priority: "low"},
		{Status: "todo", Priority: "high"},
		{Status: "inprogress", Priority: "high"},
		{Status: "todo", Priority: "medium"},
	}
	notes := []entity.Note{
		{UpdatedAt: now.AddDate(0, 0, -1)},
		{UpdatedAt: now.AddDate(0, 0, -3)},
		{UpdatedAt: now.AddDate(0, 0, -20)},
	}
	habits := []entity.Habit{{ID: "h1"}, {ID: "h2"}}
	reflections := []entity.Reflection{
		{Date: now.AddDate(0, 0, -2)},
		{Date: now.AddDate(0, 0, -10)},
	}
	events := []entity.CalendarEvent{
		{StartTime: now.Add(24 * time.Hour)},
		{StartTime: now.Add(-24 * time.Hour)},
	}

	stats := buildStats(tasks, notes, habits, reflections, events, now)

	assert.Equal(t, 5, stats.TotalTasks)
	assert.Equal(t, 2, stats.CompletedTasks)
	assert.Equal(t, 40, stats.CompletionRate)
	assert.Equal(t, 2, stats.HighPriorityPending)
	assert.Equal(t, 2, stats.RecentNotes)
	assert.Equal(t, 2, stats.TotalHabits)
	assert.Equal(t, 1, stats.RecentReflections)
	assert.Equal(t, 1, stats.UpcomingEvents)
}

func TestBuildStatsEmpty(t *testing.T) {
	stats := buildStats(nil, nil, nil, nil, nil, time.Now())

	assert.Equal(t, 0, stats.TotalTasks)
	assert.Equal(t, 0, stats.CompletionRate)
}

func TestSummarizeSentences(t *testing.T) {
	stats := entity.ProductivityStats{
		TotalTasks:          10,
		CompletedTasks:      9,
		CompletionRate:      90,
		HighPriorityPending: 0,
		RecentNotes:         6,
		TotalHabits:         3,
		RecentReflections:   2,
	}

	summary := summarize(stats)

	assert.Contains(t, summary, "You have 10 total tasks with a 90% completion rate.")
	assert.Contains(t, summary, "Great job! No high-priority tasks are pending.")
	assert.Contains(t, summary, "You've created 6 notes in the past week, showing high documentation activity.")
	assert.Contains(t, summary, "You're tracking 3 habits for personal development.")
	assert.Contains(t, summary, "You've completed 2 reflections this week, showing good self-awareness.")
	assert.Contains(t, summary, "Excellent productivity! You're completing most of your tasks.")
}

func TestSummarizeLowActivity(t *testing.T) {
	stats := entity.ProductivityStats{
		TotalTasks:          4,
		CompletedTasks:      1,
		CompletionRate:      25,
		HighPriorityPending: 2,
		RecentNotes:         1,
	}

	summary := summarize(stats)

	assert.Contains(t, summary, "You have 2 high-priority tasks that need attention.")
	assert.Contains(t, summary, "showing low documentation activity.")
	assert.Contains(t, summary, "Consider adding daily reflections to track your progress.")
	assert.Contains(t, summary, "Your task completion rate could use some attention. Consider prioritizing and breaking down large tasks.")
}

func TestSummarizeModerateBand(t *testing.T) {
	stats := entity.ProductivityStats{
		TotalTasks:     10,
		CompletedTasks: 7,
		CompletionRate: 70,
		RecentNotes:    3,
	}

	summary := summarize(stats)

	assert.Contains(t, summary, "showing moderate documentation activity.")
	assert.Contains(t, summary, "Good productivity, but there's room for improvement.")
}

func TestInsightsToleratesFailingStores(t *testing.T) {
	ts := newTestService()
	ts.workspace.tasksErr = assert.AnError
	ts.workspace.notesErr = assert.AnError
	ts.workspace.habits = []entity.Habit{{ID: "h1"}}

	insights, err := ts.service.Insights(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, insights.Stats.TotalHabits)
	assert.Contains(t, insights.Summary, "You have 0 total tasks with a 0% completion rate.")
}
