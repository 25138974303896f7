package copilotService

import (
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/copilot"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
	"github.com/ranjini26/lifeos/pkg/log"
	"github.com/ranjini26/lifeos/pkg/openai"
)

// Fallback prompts handed to Gemini when the primary provider is down.
// They request the same JSON shapes the primary returns, so one parser
// serves both.
const (
	geminiSuggestionsPrompt = `You are a productivity coach reviewing a user's tasks, notes, habits and reflections.

IMPORTANT: Return ONLY valid JSON, nothing else.

Format:
{"suggestions":[{"type":"task","title":"...","content":"...","actionable":true,"priority":"medium","icon":"target"}]}

Rules:
- Return exactly 3 suggestions
- type: one of "task", "habit", "note", "focus"
- priority: "low", "medium" or "high"
- icon: a single lowercase word
- content: one or two sentences of concrete, personal advice`

	geminiImproveTaskPrompt = `You refine task titles and descriptions to be specific and actionable.

IMPORTANT: Return ONLY valid JSON, nothing else.

Format:
{"improved_title":"...","improved_description":"...","suggested_priority":"medium","estimated_time":"30 minutes"}

Rules:
- suggested_priority: "low", "medium" or "high"
- estimated_time: a short human estimate like "15 minutes" or "2 hours"`

	geminiDailyPlanPrompt = `You plan a user's day from their open tasks, habits and calendar.

IMPORTANT: Return ONLY valid JSON, nothing else.

Format:
{"morning_focus":"...","afternoon_goals":"...","evening_reflection":"...","key_priorities":["...","..."]}

Rules:
- key_priorities: 2 to 4 short entries
- each section: one or two sentences, concrete and encouraging`
)

func staticSuggestions() []copilot.Suggestion {
	return []copilot.Suggestion{
		{
			ID:         "fallback-1",
			Type:       "planning_tip",
			Title:      "Time-block your day",
			Content:    "Schedule specific time slots for different types of work to improve focus and reduce context switching.",
			Actionable: true,
			Priority:   "medium",
			Icon:       "calendar",
		},
		{
			ID:         "fallback-2",
			Type:       "productivity_insight",
			Title:      "Review your priorities",
			Content:    "Take 5 minutes to ensure your current tasks align with your most important goals.",
			Actionable: true,
			Priority:   "high",
			Icon:       "target",
		},
		{
			ID:         "fallback-3",
			Type:       "habit_suggestion",
			Title:      "Build momentum",
			Content:    "Start with your easiest habit to create positive momentum for the rest of your day.",
			Actionable: true,
			Priority:   "low",
			Icon:       "zap",
		},
	}
}

func (s *copilotService) GenerateSuggestions(ctx context.Context, userID string) ([]copilot.Suggestion, error) {
	requestID := contextPkg.GetRequestID(ctx)

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Debug("Generating copilot suggestions")

	dataContext := s.buildUserContext(ctx, userID)

	raw, err := s.chatAI.GenerateSuggestions(ctx, dataContext)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Primary suggestion provider failed, trying fallback")

		raw, err = s.geminiSuggestions(ctx, dataContext)
	}

	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("All suggestion providers failed, serving static suggestions")
		return staticSuggestions(), nil
	}

	stamp := time.Now().UnixMilli()
	suggestions := make([]copilot.Suggestion, 0, len(raw))
	for i, suggestion := range raw {
		suggestions = append(suggestions, copilot.Suggestion{
			ID:         fmt.Sprintf("suggestion-%d-%d", stamp, i),
			Type:       suggestion.Type,
			Title:      suggestion.Title,
			Content:    suggestion.Content,
			Actionable: suggestion.Actionable,
			Priority:   suggestion.Priority,
			Icon:       suggestion.Icon,
		})
	}

	return suggestions, nil
}

func (s *copilotService) geminiSuggestions(ctx context.Context, dataContext string) ([]openai.Suggestion, error) {
	payload, err := s.gemini.GenerateJSON(ctx, geminiSuggestionsPrompt, dataContext)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Suggestions []openai.Suggestion `json:"suggestions"`
	}
	if err := jsoniter.UnmarshalFromString(payload, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse fallback suggestions: %w", err)
	}

	return parsed.Suggestions, nil
}

func (s *copilotService) ImproveTask(ctx context.Context, req copilot.ImproveTaskRequest) (copilot.TaskImprovement, error) {
	requestID := contextPkg.GetRequestID(ctx)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return copilot.TaskImprovement{}, copilot.ErrEmptyTaskTitle
	}

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"user_id":    req.UserID,
	}).Debug("Improving task with copilot")

	improvement, err := s.chatAI.ImproveTask(ctx, title, req.Description)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Primary task improvement provider failed, trying fallback")

		improvement, err = s.geminiImproveTask(ctx, title, req.Description)
	}

	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("All task improvement providers failed, serving static improvement")
		return copilot.TaskImprovement{
			ImprovedTitle:       "Improved task title",
			ImprovedDescription: "Improved task description with actionable steps",
			SuggestedPriority:   "medium",
			EstimatedTime:       "1 hour",
		}, nil
	}

	return copilot.TaskImprovement{
		ImprovedTitle:       improvement.ImprovedTitle,
		ImprovedDescription: improvement.ImprovedDescription,
		SuggestedPriority:   improvement.SuggestedPriority,
		EstimatedTime:       improvement.EstimatedTime,
	}, nil
}

func (s *copilotService) geminiImproveTask(ctx context.Context, title string, description string) (*openai.TaskImprovement, error) {
	userMessage := fmt.Sprintf("Title: %s\nDescription: %s", title, description)

	payload, err := s.gemini.GenerateJSON(ctx, geminiImproveTaskPrompt, userMessage)
	if err != nil {
		return nil, err
	}

	var improvement openai.TaskImprovement
	if err := jsoniter.UnmarshalFromString(payload, &improvement); err != nil {
		return nil, fmt.Errorf("failed to parse fallback task improvement: %w", err)
	}

	return &improvement, nil
}

func (s *copilotService) GenerateDailyPlan(ctx context.Context, userID string) (copilot.DailyPlan, error) {
	requestID := contextPkg.GetRequestID(ctx)

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Debug("Generating copilot daily plan")

	dataContext := s.buildUserContext(ctx, userID)

	plan, err := s.chatAI.GenerateDailyPlan(ctx, dataContext)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Primary daily plan provider failed, trying fallback")

		plan, err = s.geminiDailyPlan(ctx, dataContext)
	}

	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("All daily plan providers failed, serving static plan")
		return copilot.DailyPlan{
			MorningFocus:      "Start with your most important task",
			AfternoonGoals:    "Focus on collaborative work and meetings",
			EveningReflection: "Review progress and plan tomorrow",
			KeyPriorities:     []string{"Complete high-priority tasks", "Maintain healthy habits", "Plan ahead"},
		}, nil
	}

	return copilot.DailyPlan{
		MorningFocus:      plan.MorningFocus,
		AfternoonGoals:    plan.AfternoonGoals,
		EveningReflection: plan.EveningReflection,
		KeyPriorities:     plan.KeyPriorities,
	}, nil
}

func (s *copilotService) geminiDailyPlan(ctx context.Context, dataContext string) (*openai.DailyPlan, error) {
	payload, err := s.gemini.GenerateJSON(ctx, geminiDailyPlanPrompt, dataContext)
	if err != nil {
		return nil, err
	}

	var plan openai.DailyPlan
	if err := jsoniter.UnmarshalFromString(payload, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse fallback daily plan: %w", err)
	}

	return &plan, nil
}
