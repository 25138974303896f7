package audio

import (
	"context"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

type ITranscription interface {
	TranscribeAudio(ctx context.Context, fileName string, reader io.Reader) (string, error)
}

type transcriptionService struct {
	client *openai.Client
}

func NewTranscriptionService(apiKey string) ITranscription {
	return &transcriptionService{client: openai.NewClient(apiKey)}
}

func (t *transcriptionService) TranscribeAudio(ctx context.Context, fileName string, reader io.Reader) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: fileName,
		Reader:   reader,
		Language: "en",
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}
