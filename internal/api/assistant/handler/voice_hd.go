package assistantHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/assistant"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
	"github.com/ranjini26/lifeos/pkg/handlerUtil"
	jwtPkg "github.com/ranjini26/lifeos/pkg/jwt"
	"github.com/ranjini26/lifeos/pkg/log"
)

func (h *AssistantHandler) Voice(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing assistant voice request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	file, err := ctx.FormFile("audio")
	if err != nil {
		return errHandler.Handle(ctx, requestID, assistant.ErrEmptyAudio, ctx.Path(), "read_audio_file")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"file_name":  file.Filename,
		"file_size":  file.Size,
	}).Debug("Processing audio upload")

	if err := h.utils.ValidateAudioFile(file); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "validate_audio_file")
	}

	fileContent, err := file.Open()
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_file")
	}
	defer fileContent.Close()

	transcript, err := h.assistantService.Transcribe(c, file.Filename, fileContent)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "transcribe_audio")
	}

	sessionID := ctx.FormValue("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	result, err := h.assistantService.Execute(c, userData.ID, sessionID, transcript)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "execute_command")
	}

	if ctx.FormValue("speak") == "true" && result.Response != "" {
		audioURL, err := h.assistantService.Speak(c, result.Response)
		if err != nil {
			h.log.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Speech synthesis failed, returning text only")
		} else {
			result.AudioURL = audioURL
		}
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"session_id": sessionID,
			"transcript": transcript,
			"command":    result,
		})
	}
}
