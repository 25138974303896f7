package assistantHandler

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/assistant"
	assistantService "github.com/ranjini26/lifeos/internal/api/assistant/service"
	"github.com/ranjini26/lifeos/internal/api/assistant/session"
	"github.com/ranjini26/lifeos/internal/entity"
	"github.com/ranjini26/lifeos/pkg/log"
	"github.com/ranjini26/lifeos/pkg/speech"
)

func (h *AssistantHandler) handleStream(c *websocket.Conn) {
	h.log.Info("Assistant stream client connected")
	defer h.log.Info("Assistant stream client disconnected")

	userData, ok := c.Locals("user").(entity.UserLoginData)
	if !ok {
		if err := c.WriteJSON(assistant.StreamEnvelope{Type: "error", Error: "Unauthorized"}); err != nil {
			h.log.Errorf("Error sending error response: %v", err)
		}
		return
	}

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var writeMu sync.Mutex
	notify := func(envelope assistant.StreamEnvelope) {
		writeMu.Lock()
		defer writeMu.Unlock()

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			return
		}
		if err := c.WriteJSON(envelope); err != nil {
			h.log.Errorf("Error writing stream envelope: %v", err)
		}
	}

	recognizer := speech.NewRecognizerClient()
	defer recognizer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess := session.New(
		h.log,
		h.classifier,
		recognizer,
		h.assistantService,
		assistantService.Responder{},
		notify,
		userData.ID,
		sessionID,
	)
	go sess.Run(ctx)

	notify(assistant.StreamEnvelope{Type: "state", State: sess.State().String()})

	c.SetPingHandler(func(data string) error {
		h.log.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Assistant stream error: %v", err)
			} else {
				h.log.Info("Assistant stream connection closed")
			}
			break
		}

		switch messageType {
		case websocket.BinaryMessage:
			if err := sess.SendAudio(message); err != nil {
				h.log.WithFields(log.Fields{
					"session_id": sessionID,
					"error":      err.Error(),
				}).Warn("Failed to forward audio chunk to recognizer")
			}

		case websocket.TextMessage:
			var req assistant.StreamEnvelope
			if err := jsoniter.Unmarshal(message, &req); err != nil {
				h.log.Warnf("Discarding malformed stream message: %v", err)
				continue
			}

			switch req.Type {
			case "activate":
				sess.Activate()
				continue
			case "playback_done":
				sess.PlaybackDone()
				continue
			case "dismiss":
				sess.Dismiss()
				continue
			}

			// Clients without microphone streaming can push recognized
			// text directly and still get a full command response.
			transcript := strings.TrimSpace(req.Transcript)
			if transcript == "" {
				continue
			}

			result, err := h.assistantService.Execute(ctx, userData.ID, sessionID, transcript)
			if err != nil {
				notify(assistant.StreamEnvelope{Type: "error", Error: err.Error()})
				continue
			}

			if result.Response != "" && result.AudioURL == "" {
				audioURL, speakErr := h.assistantService.Speak(ctx, result.Response)
				if speakErr != nil {
					h.log.WithFields(log.Fields{
						"session_id": sessionID,
						"error":      speakErr.Error(),
					}).Warn("Speech synthesis failed, responding without audio")
				} else {
					result.AudioURL = audioURL
				}
			}

			notify(assistant.StreamEnvelope{
				Type:       "response",
				Transcript: transcript,
				Intent:     result.Intent,
				Response:   result.Response,
				Results:    result.Results,
				AudioURL:   result.AudioURL,
			})

		default:
			h.log.Warnf("Received unexpected message type: %d", messageType)
		}
	}
}
