package assistantHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/assistant"
	"github.com/ranjini26/lifeos/internal/entity"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
	"github.com/ranjini26/lifeos/pkg/handlerUtil"
	jwtPkg "github.com/ranjini26/lifeos/pkg/jwt"
	"github.com/ranjini26/lifeos/pkg/log"
	"github.com/ranjini26/lifeos/pkg/nlp"
)

func makeTurnResponse(turn entity.AssistantTurn) assistant.TurnResponse {
	return assistant.TurnResponse{
		ID:         turn.ID,
		SessionID:  turn.SessionID,
		Transcript: turn.Transcript,
		Intent:     turn.Intent,
		Response:   turn.Response,
		Success:    turn.Success,
		AudioURL:   turn.AudioURL,
		CreatedAt:  turn.CreatedAt.Format(time.RFC3339),
	}
}

func (h *AssistantHandler) Search(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing assistant search request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req := assistant.SearchRequest{
		UserID: userData.ID,
		Query:  ctx.Query("query"),
		Type:   ctx.Query("type"),
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	results, err := h.assistantService.Search(c, req.UserID, req.Query, nlp.DataType(req.Type))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "search_data")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, assistant.SearchResponse{
			Query:   req.Query,
			Type:    req.Type,
			Results: results,
			Total:   len(results),
		})
	}
}

func (h *AssistantHandler) Insights(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing assistant insights request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	insights, err := h.assistantService.Insights(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "build_insights")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, insights)
	}
}

func (h *AssistantHandler) History(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing assistant history request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	limit := ctx.QueryInt("limit", 20)

	turns, err := h.assistantService.History(c, userData.ID, limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_history")
	}

	turnResponses := make([]assistant.TurnResponse, 0, len(turns))
	for _, turn := range turns {
		turnResponses = append(turnResponses, makeTurnResponse(turn))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"turns": turnResponses,
			"total": len(turnResponses),
		})
	}
}
