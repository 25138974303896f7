package assistantService

import (
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/assistant"
)

type fakeS3 struct {
	uploads map[string][]byte
}

func (f *fakeS3) UploadFile(file *multipart.FileHeader) (string, error) {
	return "", errors.New("not supported")
}

func (f *fakeS3) UploadBytes(data []byte, fileName string, contentType string) (string, error) {
	if f.uploads == nil {
		f.uploads = map[string][]byte{}
	}
	f.uploads[fileName] = data
	return "https://bucket.s3.amazonaws.com/" + fileName, nil
}

func (f *fakeS3) PresignUrl(fileUrl string) (string, error) {
	return fileUrl + "?signed", nil
}

func (f *fakeS3) DeleteFile(fileName string) error { return nil }

func TestSpeakUploadsAndCaches(t *testing.T) {
	ts := newTestService()
	primary := &fakeTTS{audio: []byte("mp3-bytes")}
	s3Client := &fakeS3{}
	ts.service.tts = primary
	ts.service.ttsFallback = &fakeTTS{}
	ts.service.s3 = s3Client

	url, err := ts.service.Speak(context.Background(), "Task created.")
	require.NoError(t, err)

	assert.Contains(t, url, "?signed")
	assert.Equal(t, 1, primary.calls)
	require.Len(t, s3Client.uploads, 1)

	// Second call for the same line hits the cache, not the engine.
	url2, err := ts.service.Speak(context.Background(), "Task created.")
	require.NoError(t, err)
	assert.Equal(t, url, url2)
	assert.Equal(t, 1, primary.calls)
}

func TestSpeakFallsBackWhenPrimaryFails(t *testing.T) {
	ts := newTestService()
	primary := &fakeTTS{err: errors.New("voice service down")}
	fallback := &fakeTTS{audio: []byte("fallback-bytes")}
	ts.service.tts = primary
	ts.service.ttsFallback = fallback
	ts.service.s3 = &fakeS3{}

	url, err := ts.service.Speak(context.Background(), "Note captured.")
	require.NoError(t, err)

	assert.NotEmpty(t, url)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestSpeakReturnsErrorWhenBothEnginesFail(t *testing.T) {
	ts := newTestService()
	ts.service.tts = &fakeTTS{err: errors.New("down")}
	ts.service.ttsFallback = &fakeTTS{err: errors.New("also down")}
	ts.service.s3 = &fakeS3{}

	_, err := ts.service.Speak(context.Background(), "Hello.")
	assert.ErrorIs(t, err, assistant.ErrSpeechSynthesis)
}

func TestSpeakEmptyTextIsNoop(t *testing.T) {
	ts := newTestService()
	primary := &fakeTTS{}
	ts.service.tts = primary

	url, err := ts.service.Speak(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, url)
	assert.Equal(t, 0, primary.calls)
}

func TestTranscribeWrapsEngineError(t *testing.T) {
	ts := newTestService()
	ts.service.transcription = &fakeTranscriber{err: errors.New("whisper unavailable")}

	_, err := ts.service.Transcribe(context.Background(), "voice.mp3", nil)
	assert.ErrorIs(t, err, assistant.ErrTranscription)
}

func TestTranscribeReturnsTranscript(t *testing.T) {
	ts := newTestService()
	ts.service.transcription = &fakeTranscriber{transcript: "hey friday create task call mom"}

	transcript, err := ts.service.Transcribe(context.Background(), "voice.mp3", nil)
	require.NoError(t, err)
	assert.Equal(t, "hey friday create task call mom", transcript)
}
