package assistantService

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/assistant"
	"github.com/ranjini26/lifeos/internal/entity"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
	"github.com/ranjini26/lifeos/pkg/nlp"
)

const maxDisplayedResults = 5

// Execute runs one finished transcript through classification,
// dispatch, and turn persistence. A command that cannot be fulfilled
// still returns a spoken response; the error return is reserved for
// infrastructure failures.
func (s *assistantService) Execute(ctx context.Context, userID string, sessionID string, transcript string) (assistant.CommandResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if transcript == "" {
		response := assistant.CommandResponse{
			Response: randomResponse("error"),
			Success:  false,
		}
		s.saveTurn(ctx, userID, sessionID, transcript, response)
		return response, nil
	}

	command := s.classifier.Classify(transcript)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"intent":     command.Intent,
		"score":      command.Score,
	}).Debug("Classified voice command")

	var response assistant.CommandResponse
	response.Intent = string(command.Intent)

	switch command.Intent {
	case nlp.IntentHelp:
		response.Response = randomResponse("help")
		response.Success = true

	case nlp.IntentSearch:
		results, err := s.Search(ctx, userID, command.Query, command.DataType)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Federated search failed")
			response.Response = randomResponse("error")
			break
		}
		// The spoken reply reports the full count; the envelope only
		// carries the top hits so the overlay stays readable.
		total := len(results)
		if total > maxDisplayedResults {
			results = results[:maxDisplayedResults]
		}
		response.Results = results
		response.Success = true
		if total > 0 {
			plural := ""
			if total > 1 {
				plural = "s"
			}
			response.Response = fmt.Sprintf("%s I found %d item%s matching your request.",
				randomResponse("dataFound"), total, plural)
		} else {
			response.Response = randomResponse("noDataFound")
		}

	case nlp.IntentAnalyze:
		insights, err := s.Insights(ctx, userID)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Productivity analysis failed")
			response.Response = randomResponse("error")
			break
		}
		response.Response = randomResponse("dataAnalysis") + " " + insights.Summary
		response.Success = true

	case nlp.IntentCreateTask:
		if command.Content == "" {
			response.Response = randomResponse("error")
			break
		}
		if err := s.sink.CreateTask(ctx, userID, command.Content, command.Priority); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create task from voice command")
			response.Response = randomResponse("error")
			break
		}
		response.Response = randomResponse("taskCreated")
		response.Success = true

	case nlp.IntentCreateNote:
		if command.Content == "" {
			response.Response = randomResponse("error")
			break
		}
		if err := s.sink.CreateNote(ctx, userID, command.Content); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create note from voice command")
			response.Response = randomResponse("error")
			break
		}
		response.Response = randomResponse("noteCreated")
		response.Success = true

	default:
		response.Response = randomResponse("error")
	}

	// Synthesis failure never breaks the turn; the reply just ships
	// without audio.
	if s.tts != nil && response.Response != "" {
		audioURL, err := s.Speak(ctx, response.Response)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Speech synthesis failed, responding without audio")
		} else {
			response.AudioURL = audioURL
		}
	}

	s.saveTurn(ctx, userID, sessionID, transcript, response)

	return response, nil
}

// saveTurn persists the exchange for history. Persistence failure is
// logged but never breaks the spoken flow.
func (s *assistantService) saveTurn(ctx context.Context, userID, sessionID, transcript string, response assistant.CommandResponse) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.assistantRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return
	}

	turn := entity.AssistantTurn{
		ID:         ULID,
		UserID:     userID,
		SessionID:  sessionID,
		Transcript: transcript,
		Intent:     response.Intent,
		Response:   response.Response,
		Success:    response.Success,
		AudioURL:   response.AudioURL,
		CreatedAt:  time.Now(),
	}

	if err := repo.Turn.CreateTurn(ctx, turn); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save assistant turn")
	}
}

func (s *assistantService) History(ctx context.Context, userID string, limit int) ([]entity.AssistantTurn, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.assistantRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	turns, err := repo.Turn.GetTurnsByUserID(ctx, userID, limit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get assistant turns")
		return nil, err
	}

	return turns, nil
}
