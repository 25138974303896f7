package session

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/assistant"
	"github.com/ranjini26/lifeos/pkg/nlp"
	"github.com/ranjini26/lifeos/pkg/speech"
)

type fakeRecognizer struct {
	mu        sync.Mutex
	events    chan speech.TranscriptEvent
	connected bool
	closes    int
}

func newFakeRecognizer() *fakeRecognizer {
	return &fakeRecognizer{
		events:    make(chan speech.TranscriptEvent, 16),
		connected: true,
	}
}

func (f *fakeRecognizer) Connect(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = true
	f.events = make(chan speech.TranscriptEvent, 16)
	return nil
}

func (f *fakeRecognizer) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *fakeRecognizer) SendAudio(data []byte) error { return nil }

func (f *fakeRecognizer) Events() <-chan speech.TranscriptEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.events
}

func (f *fakeRecognizer) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = false
	f.closes++
}

func (f *fakeRecognizer) push(ev speech.TranscriptEvent) {
	f.mu.Lock()
	events := f.events
	f.mu.Unlock()
	events <- ev
}

func (f *fakeRecognizer) endStream() {
	f.mu.Lock()
	defer f.mu.Unlock()
	close(f.events)
	f.connected = false
}

func (f *fakeRecognizer) closeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closes
}

type fakeExecutor struct {
	mu          sync.Mutex
	transcripts []string
	spoken      []string
	response    assistant.CommandResponse
	audioURL    string

	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (f *fakeExecutor) Execute(ctx context.Context, userID, sessionID, transcript string) (assistant.CommandResponse, error) {
	f.mu.Lock()
	f.transcripts = append(f.transcripts, transcript)
	f.mu.Unlock()

	if f.started != nil {
		f.once.Do(func() { close(f.started) })
	}
	if f.release != nil {
		<-f.release
	}
	return f.response, nil
}

func (f *fakeExecutor) Speak(ctx context.Context, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
	return f.audioURL, nil
}

func (f *fakeExecutor) received() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.transcripts...)
}

type fakeResponder struct{}

func (fakeResponder) WakeGreeting() string { return "Yes? How can I help you?" }
func (fakeResponder) Listening() string    { return "I'm listening..." }
func (fakeResponder) Processing() string   { return "Let me process that..." }
func (fakeResponder) Failure() string      { return "Something went wrong." }

type envelopeSink struct {
	mu        sync.Mutex
	envelopes []assistant.StreamEnvelope
}

func (e *envelopeSink) notify(envelope assistant.StreamEnvelope) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.envelopes = append(e.envelopes, envelope)
}

func (e *envelopeSink) collected() []assistant.StreamEnvelope {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]assistant.StreamEnvelope(nil), e.envelopes...)
}

func (e *envelopeSink) waitFor(t *testing.T, envelopeType string) assistant.StreamEnvelope {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, envelope := range e.collected() {
			if envelope.Type == envelopeType {
				return envelope
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("no %q envelope received", envelopeType)
	return assistant.StreamEnvelope{}
}

func newTestSession(recognizer *fakeRecognizer, executor *fakeExecutor, sink *envelopeSink) *Session {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	s := New(log, nlp.NewClassifier(), recognizer, executor, fakeResponder{}, sink.notify, "user-1", "session-1")
	s.SetTimings(30*time.Millisecond, 10*time.Millisecond, 30*time.Millisecond, 20*time.Millisecond)
	return s
}

func waitForState(t *testing.T, s *Session, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.State() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("session never reached %s, stuck in %s", want, s.State())
}

func TestSessionWakeWordThenCommand(t *testing.T) {
	recognizer := newFakeRecognizer()
	executor := &fakeExecutor{response: assistant.CommandResponse{
		Intent:   "create_task",
		Response: "Task created: \"call the dentist tomorrow\"",
		Success:  true,
	}}
	sink := &envelopeSink{}

	s := newTestSession(recognizer, executor, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	recognizer.push(speech.TranscriptEvent{Text: "hey friday", IsFinal: true})
	sink.waitFor(t, "state")

	recognizer.push(speech.TranscriptEvent{Text: "remind me to call the dentist tomorrow", IsFinal: true})

	response := sink.waitFor(t, "response")
	assert.Equal(t, "create_task", response.Intent)
	assert.True(t, len(response.Response) > 0)

	received := executor.received()
	require.Len(t, received, 1)
	assert.Equal(t, "remind me to call the dentist tomorrow", received[0])
}

func TestSessionCommandInSameBreathAsWakeWord(t *testing.T) {
	recognizer := newFakeRecognizer()
	executor := &fakeExecutor{response: assistant.CommandResponse{
		Intent:  "search",
		Success: true,
	}}
	sink := &envelopeSink{}

	s := newTestSession(recognizer, executor, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	recognizer.push(speech.TranscriptEvent{Text: "hey friday find my urgent tasks", IsFinal: true})

	sink.waitFor(t, "response")

	received := executor.received()
	require.Len(t, received, 1)
	assert.Equal(t, "find my urgent tasks", received[0])
}

func TestSessionIgnoresSpeechWithoutWakeWord(t *testing.T) {
	recognizer := newFakeRecognizer()
	executor := &fakeExecutor{}
	sink := &envelopeSink{}

	s := newTestSession(recognizer, executor, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	recognizer.push(speech.TranscriptEvent{Text: "just talking to myself here", IsFinal: true})
	recognizer.push(speech.TranscriptEvent{Text: "nothing to see", IsFinal: true})

	time.Sleep(100 * time.Millisecond)

	assert.Empty(t, executor.received())
	assert.Empty(t, sink.collected())
}

func TestSessionReturnsToWakeListeningAfterResponse(t *testing.T) {
	recognizer := newFakeRecognizer()
	executor := &fakeExecutor{response: assistant.CommandResponse{Intent: "help", Success: true}}
	sink := &envelopeSink{}

	s := newTestSession(recognizer, executor, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	recognizer.push(speech.TranscriptEvent{Text: "friday what can you do", IsFinal: true})
	sink.waitFor(t, "response")

	waitForState(t, s, StateWakeListening)

	// The machine accepts a second wake word after the dwell.
	recognizer.push(speech.TranscriptEvent{Text: "hey friday analyze my productivity", IsFinal: true})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(executor.received()) == 2 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	assert.Len(t, executor.received(), 2)
}

func TestSessionEntersSearchingWhileSearchRuns(t *testing.T) {
	recognizer := newFakeRecognizer()
	executor := &fakeExecutor{
		response: assistant.CommandResponse{Intent: "search", Success: true},
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	sink := &envelopeSink{}

	s := newTestSession(recognizer, executor, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	recognizer.push(speech.TranscriptEvent{Text: "hey friday find my urgent tasks", IsFinal: true})

	select {
	case <-executor.started:
	case <-time.After(2 * time.Second):
		t.Fatal("search command never dispatched")
	}
	assert.Equal(t, StateSearching, s.State())

	close(executor.release)
	response := sink.waitFor(t, "response")
	assert.Equal(t, "responding", response.State)
}

func TestSessionConfirmsSuccessfulCreate(t *testing.T) {
	recognizer := newFakeRecognizer()
	executor := &fakeExecutor{response: assistant.CommandResponse{
		Intent:   "create_task",
		Response: "Task created.",
		Success:  true,
	}}
	sink := &envelopeSink{}

	s := newTestSession(recognizer, executor, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	recognizer.push(speech.TranscriptEvent{Text: "hey friday remind me to water the plants", IsFinal: true})

	response := sink.waitFor(t, "response")
	assert.Equal(t, "confirming", response.State)

	waitForState(t, s, StateWakeListening)
}

func TestSessionSubmitsCommandWhenRecognizerEnds(t *testing.T) {
	recognizer := newFakeRecognizer()
	executor := &fakeExecutor{response: assistant.CommandResponse{
		Intent:   "create_note",
		Response: "Note saved.",
		Success:  true,
	}}
	sink := &envelopeSink{}

	s := newTestSession(recognizer, executor, sink)
	s.SetTimings(10*time.Second, 10*time.Millisecond, 30*time.Millisecond, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	recognizer.push(speech.TranscriptEvent{Text: "hey friday", IsFinal: true})
	waitForState(t, s, StateListening)

	recognizer.push(speech.TranscriptEvent{Text: "note that the meeting moved to thursday", IsFinal: true})
	recognizer.endStream()

	sink.waitFor(t, "response")

	received := executor.received()
	require.Len(t, received, 1)
	assert.Equal(t, "note that the meeting moved to thursday", received[0])
}

func TestSessionSpeaksErrorWhenRecognizerEndsWithNothingHeard(t *testing.T) {
	recognizer := newFakeRecognizer()
	executor := &fakeExecutor{}
	sink := &envelopeSink{}

	s := newTestSession(recognizer, executor, sink)
	s.SetTimings(10*time.Second, 10*time.Millisecond, 30*time.Millisecond, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	recognizer.push(speech.TranscriptEvent{Text: "hey friday", IsFinal: true})
	waitForState(t, s, StateListening)

	recognizer.endStream()

	errorEnvelope := sink.waitFor(t, "error")
	assert.NotEmpty(t, errorEnvelope.Error)
	assert.Equal(t, "Something went wrong.", errorEnvelope.Response)
	assert.Empty(t, executor.received())

	waitForState(t, s, StateWakeListening)
}

func TestSessionReconnectsAfterRecognizerStreamEnds(t *testing.T) {
	recognizer := newFakeRecognizer()
	executor := &fakeExecutor{response: assistant.CommandResponse{Intent: "help", Success: true}}
	sink := &envelopeSink{}

	s := newTestSession(recognizer, executor, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	recognizer.endStream()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if recognizer.IsConnected() {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.True(t, recognizer.IsConnected())

	// The fresh stream drives a full turn.
	recognizer.push(speech.TranscriptEvent{Text: "hey friday what can you do", IsFinal: true})
	sink.waitFor(t, "response")
	require.Len(t, executor.received(), 1)
}

func TestSessionAbandonsSilentTurn(t *testing.T) {
	recognizer := newFakeRecognizer()
	executor := &fakeExecutor{}
	sink := &envelopeSink{}

	s := newTestSession(recognizer, executor, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	recognizer.push(speech.TranscriptEvent{Text: "hey friday", IsFinal: true})
	waitForState(t, s, StateListening)

	// No command follows; the silence timeout ends the turn without
	// dispatching anything.
	waitForState(t, s, StateWakeListening)
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, executor.received())
}

func TestSessionManualActivationWithoutWakeWord(t *testing.T) {
	recognizer := newFakeRecognizer()
	executor := &fakeExecutor{response: assistant.CommandResponse{Intent: "help", Success: true}}
	sink := &envelopeSink{}

	s := newTestSession(recognizer, executor, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	s.Activate()

	greeting := sink.waitFor(t, "state")
	assert.Equal(t, "Yes? How can I help you?", greeting.Response)

	waitForState(t, s, StateListening)
	recognizer.push(speech.TranscriptEvent{Text: "what can you do", IsFinal: true})

	sink.waitFor(t, "response")
	require.Len(t, executor.received(), 1)
	assert.Equal(t, "what can you do", executor.received()[0])
}

func TestSessionDismissAbortsTurnAndReleasesRecognizer(t *testing.T) {
	recognizer := newFakeRecognizer()
	executor := &fakeExecutor{}
	sink := &envelopeSink{}

	s := newTestSession(recognizer, executor, sink)
	s.SetTimings(10*time.Second, 10*time.Millisecond, 30*time.Millisecond, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	recognizer.push(speech.TranscriptEvent{Text: "hey friday", IsFinal: true})
	waitForState(t, s, StateListening)

	s.Dismiss()

	waitForState(t, s, StateIdle)
	assert.Equal(t, 1, recognizer.closeCount())
	assert.Empty(t, executor.received())
}

func TestSessionPlaybackDoneSkipsResponseDwell(t *testing.T) {
	recognizer := newFakeRecognizer()
	executor := &fakeExecutor{response: assistant.CommandResponse{Intent: "help", Success: true}}
	sink := &envelopeSink{}

	s := newTestSession(recognizer, executor, sink)
	s.SetTimings(30*time.Millisecond, 10*time.Millisecond, 10*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	recognizer.push(speech.TranscriptEvent{Text: "hey friday what can you do", IsFinal: true})
	sink.waitFor(t, "response")
	waitForState(t, s, StateResponding)

	s.PlaybackDone()
	waitForState(t, s, StateWakeListening)
}

func TestSessionSynthesizesSpokenReply(t *testing.T) {
	recognizer := newFakeRecognizer()
	executor := &fakeExecutor{
		response: assistant.CommandResponse{
			Intent:   "help",
			Response: "I can manage tasks, notes, and habits.",
			Success:  true,
		},
		audioURL: "https://cdn.example.com/assistant/reply.mp3",
	}
	sink := &envelopeSink{}

	s := newTestSession(recognizer, executor, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	recognizer.push(speech.TranscriptEvent{Text: "hey friday what can you do", IsFinal: true})

	response := sink.waitFor(t, "response")
	assert.Equal(t, "https://cdn.example.com/assistant/reply.mp3", response.AudioURL)
	require.Len(t, executor.spoken, 1)
	assert.Equal(t, "I can manage tasks, notes, and habits.", executor.spoken[0])
}
