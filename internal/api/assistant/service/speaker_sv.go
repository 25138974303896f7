package assistantService

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/assistant"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
)

const audioCacheTTL = 24 * time.Hour

func (s *assistantService) Transcribe(ctx context.Context, fileName string, reader io.Reader) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	transcript, err := s.transcription.TranscribeAudio(ctx, fileName, reader)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"file":       fileName,
			"error":      err.Error(),
		}).Error("Audio transcription failed")
		return "", assistant.ErrTranscription
	}

	return transcript, nil
}

// Speak synthesizes text into speech, stores the audio, and returns a
// presigned link. Identical lines reuse the stored object through a
// Redis cache keyed by the text hash.
func (s *assistantService) Speak(ctx context.Context, text string) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if text == "" {
		return "", nil
	}

	hash := sha256.Sum256([]byte(text))
	key := "assistant:audio:" + hex.EncodeToString(hash[:16])

	if cached, err := s.redis.GetAudioCache(ctx, key); err == nil && len(cached) > 0 {
		presigned, err := s.s3.PresignUrl(string(cached))
		if err == nil {
			return presigned, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to presign cached audio, regenerating")
	}

	audioData, err := s.tts.GenerateAudio(ctx, text)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Primary speech synthesis failed, using fallback")

		audioData, err = s.ttsFallback.GenerateAudio(ctx, text)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Fallback speech synthesis failed")
			return "", assistant.ErrSpeechSynthesis
		}
	}

	fileName := "assistant/" + hex.EncodeToString(hash[:16]) + ".mp3"
	fileURL, err := s.s3.UploadBytes(audioData, fileName, "audio/mpeg")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload synthesized audio")
		return "", err
	}

	if err := s.redis.SetAudioCache(ctx, key, []byte(fileURL), audioCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to cache audio link")
	}

	presigned, err := s.s3.PresignUrl(fileURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to presign audio link")
		return "", err
	}

	return presigned, nil
}
