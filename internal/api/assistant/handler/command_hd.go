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

func (h *AssistantHandler) Command(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing assistant command request")

	var req assistant.CommandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.UserID = userData.ID
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.assistantService.Execute(c, req.UserID, req.SessionID, req.Transcript)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "execute_command")
	}

	if req.Speak && result.Response != "" {
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
			"session_id": req.SessionID,
			"command":    result,
		})
	}
}
