package assistantService

import (
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/assistant"
	assistantRepository "github.com/ranjini26/lifeos/internal/api/assistant/repository"
	workspaceService "github.com/ranjini26/lifeos/internal/api/workspace/service"
	"github.com/ranjini26/lifeos/internal/entity"
	"github.com/ranjini26/lifeos/pkg/audio"
	"github.com/ranjini26/lifeos/pkg/nlp"
	redisPkg "github.com/ranjini26/lifeos/pkg/redis"
	"github.com/ranjini26/lifeos/pkg/s3"
	"github.com/ranjini26/lifeos/pkg/utils"
)

type IAssistantService interface {
	Execute(ctx context.Context, userID string, sessionID string, transcript string) (assistant.CommandResponse, error)
	Search(ctx context.Context, userID string, query string, dataType nlp.DataType) ([]entity.SearchResult, error)
	Insights(ctx context.Context, userID string) (assistant.InsightsResponse, error)
	Transcribe(ctx context.Context, fileName string, reader io.Reader) (string, error)
	Speak(ctx context.Context, text string) (string, error)
	History(ctx context.Context, userID string, limit int) ([]entity.AssistantTurn, error)
}

type assistantService struct {
	log                 *logrus.Logger
	classifier          nlp.IClassifier
	assistantRepository assistantRepository.Repository
	workspaceService    workspaceService.IWorkspaceService
	sink                ActionSink
	transcription       audio.ITranscription
	tts                 audio.ITTS
	ttsFallback         audio.ITTS
	redis               redisPkg.IRedis
	s3                  s3.ItfS3
	utils               utils.IUtils
}

func NewAssistantService(
	log *logrus.Logger,
	classifier nlp.IClassifier,
	ar assistantRepository.Repository,
	ws workspaceService.IWorkspaceService,
	sink ActionSink,
	transcription audio.ITranscription,
	tts audio.ITTS,
	ttsFallback audio.ITTS,
	redis redisPkg.IRedis,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IAssistantService {
	return &assistantService{
		log:                 log,
		classifier:          classifier,
		assistantRepository: ar,
		workspaceService:    ws,
		sink:                sink,
		transcription:       transcription,
		tts:                 tts,
		ttsFallback:         ttsFallback,
		redis:               redis,
		s3:                  s3Client,
		utils:               utils,
	}
}
