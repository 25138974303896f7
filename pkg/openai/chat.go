package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
)

type IChatAI interface {
	GenerateSuggestions(ctx context.Context, dataContext string) ([]Suggestion, error)
	ImproveTask(ctx context.Context, title string, description string) (*TaskImprovement, error)
	GenerateDailyPlan(ctx context.Context, dataContext string) (*DailyPlan, error)
}

type Suggestion struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Actionable bool   `json:"actionable"`
	Priority   string `json:"priority"`
	Icon       string `json:"icon"`
}

type TaskImprovement struct {
	ImprovedTitle       string `json:"improved_title"`
	ImprovedDescription string `json:"improved_description"`
	SuggestedPriority   string `json:"suggested_priority"`
	EstimatedTime       string `json:"estimated_time"`
}

type DailyPlan struct {
	MorningFocus      string   `json:"morning_focus"`
	AfternoonGoals    string   `json:"afternoon_goals"`
	EveningReflection string   `json:"evening_reflection"`
	KeyPriorities     []string `json:"key_priorities"`
}

type chatAIService struct {
	client *openai.Client
	model  string
}

func NewChatAI() IChatAI {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_CHAT_MODEL")

	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	return &chatAIService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *chatAIService) GenerateSuggestions(ctx context.Context, dataContext string) ([]Suggestion, error) {
	systemPrompt := `You are a productivity coach reviewing a user's tasks, notes, habits and reflections.

IMPORTANT: Return ONLY valid JSON, nothing else.

Format:
{"suggestions":[{"type":"task","title":"...","content":"...","actionable":true,"priority":"medium","icon":"target"}]}

Rules:
- Return exactly 3 suggestions
- type: one of "task", "habit", "note", "focus"
- priority: "low", "medium" or "high"
- icon: a single lowercase word
- content: one or two sentences of concrete, personal advice`

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: dataContext},
			},
			Temperature: 0.7,
			MaxTokens:   500,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	var parsed struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}

	return parsed.Suggestions, nil
}

func (c *chatAIService) ImproveTask(ctx context.Context, title string, description string) (*TaskImprovement, error) {
	systemPrompt := `You refine task titles and descriptions to be specific and actionable.

IMPORTANT: Return ONLY valid JSON, nothing else.

Format:
{"improved_title":"...","improved_description":"...","suggested_priority":"medium","estimated_time":"30 minutes"}

Rules:
- suggested_priority: "low", "medium" or "high"
- estimated_time: a short human estimate like "15 minutes" or "2 hours"`

	userMessage := fmt.Sprintf("Title: %s\nDescription: %s", title, description)

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userMessage},
			},
			Temperature: 0.3,
			MaxTokens:   300,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	var improvement TaskImprovement
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &improvement); err != nil {
		return nil, fmt.Errorf("failed to parse task improvement: %w", err)
	}

	return &improvement, nil
}

func (c *chatAIService) GenerateDailyPlan(ctx context.Context, dataContext string) (*DailyPlan, error) {
	systemPrompt := `You plan a user's day from their open tasks, habits and calendar.

IMPORTANT: Return ONLY valid JSON, nothing else.

Format:
{"morning_focus":"...","afternoon_goals":"...","evening_reflection":"...","key_priorities":["...","..."]}

Rules:
- key_priorities: 2 to 4 short entries
- each section: one or two sentences, concrete and encouraging`

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: dataContext},
			},
			Temperature: 0.7,
			MaxTokens:   400,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	var plan DailyPlan
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse daily plan: %w", err)
	}

	return &plan, nil
}
