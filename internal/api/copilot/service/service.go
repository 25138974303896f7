package copilotService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/copilot"
	"github.com/ranjini26/lifeos/internal/entity"
	"github.com/ranjini26/lifeos/pkg/gemini"
	"github.com/ranjini26/lifeos/pkg/openai"
)

type ICopilotService interface {
	GenerateSuggestions(ctx context.Context, userID string) ([]copilot.Suggestion, error)
	ImproveTask(ctx context.Context, req copilot.ImproveTaskRequest) (copilot.TaskImprovement, error)
	GenerateDailyPlan(ctx context.Context, userID string) (copilot.DailyPlan, error)
}

// workspaceReader is the slice of the workspace surface the copilot needs
// to describe a user's current situation to the model.
type workspaceReader interface {
	GetTasksByUserID(ctx context.Context, userID string) ([]entity.Task, error)
	GetNotesByUserID(ctx context.Context, userID string) ([]entity.Note, error)
	GetHabitsByUserID(ctx context.Context, userID string) ([]entity.Habit, error)
}

type copilotService struct {
	log       *logrus.Logger
	chatAI    openai.IChatAI
	gemini    gemini.IGemini
	workspace workspaceReader
}

func NewCopilotService(
	log *logrus.Logger,
	chatAI openai.IChatAI,
	geminiClient gemini.IGemini,
	workspace workspaceReader,
) ICopilotService {
	return &copilotService{
		log:       log,
		chatAI:    chatAI,
		gemini:    geminiClient,
		workspace: workspace,
	}
}
