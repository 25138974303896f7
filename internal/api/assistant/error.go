package assistant

import "github.com/ranjini26/lifeos/pkg/response"

var (
	ErrEmptyTranscript    = response.NewError(400, "transcript must not be empty")
	ErrEmptyAudio         = response.NewError(400, "audio file must not be empty")
	ErrInvalidAudioFormat = response.NewError(400, "unsupported audio format")
	ErrTranscription      = response.NewError(502, "failed to transcribe audio")
	ErrSpeechSynthesis    = response.NewError(502, "failed to synthesize speech")
	ErrTurnNotFound       = response.NewError(404, "assistant turn not found")
	ErrSaveTurn           = response.NewError(500, "failed to save assistant turn")
)
