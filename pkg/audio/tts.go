package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const maxSpeechInput = 2500

type ITTS interface {
	GenerateAudio(ctx context.Context, text string) ([]byte, error)
}

type TTSService struct {
	apiKey  string
	voiceID string
}

func NewTTSService(apiKey, voiceID string) *TTSService {
	if voiceID == "" {
		voiceID = "wDsJlOXPqcvIUKdLXjDs"
	}
	return &TTSService{
		apiKey:  apiKey,
		voiceID: voiceID,
	}
}

func (tts *TTSService) GenerateAudio(ctx context.Context, text string) ([]byte, error) {
	if len(text) > maxSpeechInput {
		text = text[:maxSpeechInput]
	}

	url := "https://api.elevenlabs.io/v1/text-to-speech/" + tts.voiceID

	requestBody := map[string]interface{}{
		"text":     text,
		"model_id": "eleven_monolingual_v1",
		"voice_settings": map[string]interface{}{
			"stability":         0.6,
			"similarity_boost":  0.8,
			"style":             0.2,
			"use_speaker_boost": true,
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", tts.apiKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ElevenLabs API error: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// OpenAITTSService is the fallback speech engine used when ElevenLabs is
// unavailable.
type OpenAITTSService struct {
	client *openai.Client
}

func NewOpenAITTSService(apiKey string) *OpenAITTSService {
	return &OpenAITTSService{client: openai.NewClient(apiKey)}
}

func (tts *OpenAITTSService) GenerateAudio(ctx context.Context, text string) ([]byte, error) {
	if len(text) > maxSpeechInput {
		text = text[:maxSpeechInput]
	}

	resp, err := tts.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: openai.VoiceNova,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Close()

	return io.ReadAll(resp)
}
