package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/ranjini26/lifeos/database/postgres"
	assistantHandler "github.com/ranjini26/lifeos/internal/api/assistant/handler"
	assistantRepository "github.com/ranjini26/lifeos/internal/api/assistant/repository"
	assistantService "github.com/ranjini26/lifeos/internal/api/assistant/service"
	authHandler "github.com/ranjini26/lifeos/internal/api/auth/handler"
	authRepository "github.com/ranjini26/lifeos/internal/api/auth/repository"
	authService "github.com/ranjini26/lifeos/internal/api/auth/service"
	copilotHandler "github.com/ranjini26/lifeos/internal/api/copilot/handler"
	copilotService "github.com/ranjini26/lifeos/internal/api/copilot/service"
	workspaceHandler "github.com/ranjini26/lifeos/internal/api/workspace/handler"
	workspaceRepository "github.com/ranjini26/lifeos/internal/api/workspace/repository"
	workspaceService "github.com/ranjini26/lifeos/internal/api/workspace/service"
	"github.com/ranjini26/lifeos/internal/middleware"
	"github.com/ranjini26/lifeos/pkg/audio"
	"github.com/ranjini26/lifeos/pkg/bcrypt"
	"github.com/ranjini26/lifeos/pkg/gemini"
	"github.com/ranjini26/lifeos/pkg/nlp"
	"github.com/ranjini26/lifeos/pkg/openai"
	"github.com/ranjini26/lifeos/pkg/redis"
	"github.com/ranjini26/lifeos/pkg/s3"
	"github.com/ranjini26/lifeos/pkg/utils"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	db           *sqlx.DB
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	bcryptUtils  bcrypt.IBcrypt
	handlers     []handler
	redisServer  redis.IRedis
	geminiClient gemini.IGemini
	s3Client     s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.NewAuthService(s.log, authRepo, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Workspace Domain
	workspaceRepo := workspaceRepository.New(s.db, s.log)
	workspaceServices := workspaceService.NewWorkspaceService(s.log, workspaceRepo, s.utils)
	workspaceHandlers := workspaceHandler.New(s.log, s.validator, s.middleware, workspaceServices)

	// Assistant Domain
	openAIKey := os.Getenv("OPENAI_API_KEY")
	transcription := audio.NewTranscriptionService(openAIKey)
	tts := audio.NewTTSService(os.Getenv("ELEVENLABS_API_KEY"), os.Getenv("ELEVENLABS_VOICE_ID"))
	ttsFallback := audio.NewOpenAITTSService(openAIKey)

	classifier := nlp.NewClassifier()
	assistantRepo := assistantRepository.New(s.db, s.log)
	sink := assistantService.NewBroadcastSink(s.log, s.redisServer, assistantService.NewWorkspaceSink(workspaceServices))
	assistantServices := assistantService.NewAssistantService(
		s.log,
		classifier,
		assistantRepo,
		workspaceServices,
		sink,
		transcription,
		tts,
		ttsFallback,
		s.redisServer,
		s.s3Client,
		s.utils,
	)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices, classifier, s.utils)

	// Copilot Domain
	chatAI := openai.NewChatAI()
	copilotServices := copilotService.NewCopilotService(s.log, chatAI, s.geminiClient, workspaceServices)
	copilotHandlers := copilotHandler.New(s.log, s.validator, s.middleware, copilotServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, workspaceHandlers, assistantHandlers, copilotHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
