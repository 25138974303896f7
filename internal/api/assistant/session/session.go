package session

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/assistant"
	"github.com/ranjini26/lifeos/pkg/nlp"
	"github.com/ranjini26/lifeos/pkg/speech"
)

const (
	defaultSilenceTimeout = 1500 * time.Millisecond
	defaultGreetingDwell  = 500 * time.Millisecond
	defaultRespondDwell   = 4 * time.Second
	defaultRestartDelay   = 2 * time.Second
)

// Executor runs a finished voice command through the assistant pipeline
// and synthesizes its spoken reply.
type Executor interface {
	Execute(ctx context.Context, userID string, sessionID string, transcript string) (assistant.CommandResponse, error)
	Speak(ctx context.Context, text string) (string, error)
}

// Responder supplies the canned spoken lines the session plays between
// commands.
type Responder interface {
	WakeGreeting() string
	Listening() string
	Processing() string
	Failure() string
}

type Notifier func(envelope assistant.StreamEnvelope)

type commandResult struct {
	response assistant.CommandResponse
	err      error
}

// clientSignal is a control event pushed by the connected client.
type clientSignal int

const (
	signalActivate clientSignal = iota
	signalPlaybackDone
	signalDismiss
)

type Session struct {
	log        *logrus.Logger
	classifier nlp.IClassifier
	recognizer speech.IRecognizer
	executor   Executor
	responder  Responder
	notify     Notifier

	userID    string
	sessionID string

	mu      sync.RWMutex
	state   State
	pending []string

	silenceTimeout time.Duration
	greetingDwell  time.Duration
	respondDwell   time.Duration
	restartDelay   time.Duration

	timer   *time.Timer
	results chan commandResult
	restart chan struct{}
	signals chan clientSignal
}

func New(
	log *logrus.Logger,
	classifier nlp.IClassifier,
	recognizer speech.IRecognizer,
	executor Executor,
	responder Responder,
	notify Notifier,
	userID string,
	sessionID string,
) *Session {
	return &Session{
		log:            log,
		classifier:     classifier,
		recognizer:     recognizer,
		executor:       executor,
		responder:      responder,
		notify:         notify,
		userID:         userID,
		sessionID:      sessionID,
		state:          StateIdle,
		silenceTimeout: defaultSilenceTimeout,
		greetingDwell:  defaultGreetingDwell,
		respondDwell:   defaultRespondDwell,
		restartDelay:   defaultRestartDelay,
		results:        make(chan commandResult, 1),
		restart:        make(chan struct{}, 1),
		signals:        make(chan clientSignal, 4),
	}
}

// SetTimings overrides the default dwell and timeout durations.
func (s *Session) SetTimings(silence, greeting, respond, restart time.Duration) {
	s.silenceTimeout = silence
	s.greetingDwell = greeting
	s.respondDwell = respond
	s.restartDelay = restart
}

// SendAudio forwards a raw audio chunk to the recognizer.
func (s *Session) SendAudio(data []byte) error {
	return s.recognizer.SendAudio(data)
}

// Activate starts a turn without a wake word, as if one had been heard.
func (s *Session) Activate() {
	select {
	case s.signals <- signalActivate:
	default:
	}
}

// PlaybackDone tells the session the client finished playing the
// current utterance, so it can advance without waiting out the dwell.
func (s *Session) PlaybackDone() {
	select {
	case s.signals <- signalPlaybackDone:
	default:
	}
}

// Dismiss aborts the turn in progress: timers stop, the transcript is
// cleared, and the recognizer is released.
func (s *Session) Dismiss() {
	select {
	case s.signals <- signalDismiss:
	default:
	}
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Run drives the session until ctx is cancelled. All state transitions
// happen on this goroutine.
func (s *Session) Run(ctx context.Context) {
	s.transition(ctx, EventStart)

	// Kept separate from the recognizer so a closed channel can be
	// parked at nil instead of firing the select on every pass.
	events := s.recognizer.Events()

	for {
		select {
		case <-ctx.Done():
			s.transition(ctx, EventStop)
			return

		case ev, ok := <-events:
			if !ok {
				events = nil
				s.handleRecognizerDown(ctx)
				continue
			}
			if ev.Error != "" {
				s.log.WithFields(logrus.Fields{
					"session_id": s.sessionID,
					"error":      ev.Error,
				}).Warn("Speech recognizer reported an error")
				s.handleRecognizerDown(ctx)
				continue
			}
			s.handleTranscript(ctx, ev)

		case <-s.timerC():
			s.handleTimer(ctx)

		case result := <-s.results:
			s.handleCommandResult(ctx, result)

		case sig := <-s.signals:
			s.handleSignal(ctx, sig)
			if events == nil && s.recognizer.IsConnected() {
				events = s.recognizer.Events()
			}

		case <-s.restart:
			if s.reconnectRecognizer(ctx) {
				events = s.recognizer.Events()
			}
		}
	}
}

func (s *Session) handleTranscript(ctx context.Context, ev speech.TranscriptEvent) {
	text := strings.TrimSpace(ev.Text)
	if text == "" {
		return
	}

	switch s.state {
	case StateWakeListening:
		wake, ok := s.classifier.DetectWakeWord(text)
		if !ok {
			return
		}
		s.log.WithFields(logrus.Fields{
			"session_id": s.sessionID,
			"wake_word":  wake,
		}).Debug("Wake word detected")

		residual := s.classifier.StripWakeWord(text)
		s.pending = s.pending[:0]
		if residual != "" {
			s.pending = append(s.pending, residual)
		}

		s.transition(ctx, EventWakeDetected)
		s.notifyState(s.responder.WakeGreeting())

	case StateGreeting:
		// Speech that lands during the greeting dwell still counts.
		if ev.IsFinal {
			s.pending = append(s.pending, text)
		}

	case StateListening:
		if ev.IsFinal {
			s.pending = append(s.pending, text)
		}
		s.resetTimer(s.silenceTimeout)

	case StateProcessing, StateSearching:
		// A command is in flight; late transcripts are dropped.

	default:
	}
}

func (s *Session) handleTimer(ctx context.Context) {
	switch s.state {
	case StateGreeting:
		s.transition(ctx, EventGreetingDone)
		s.notifyState(s.responder.Listening())

	case StateListening:
		s.submit(ctx)

	case StateResponding, StateConfirming:
		s.pending = s.pending[:0]
		s.transition(ctx, EventResponseDone)
		s.notifyState("")
	}
}

// submit closes out the listening phase. An empty accumulator abandons
// the turn instead of dispatching a command that cannot mean anything.
func (s *Session) submit(ctx context.Context) {
	transcript := strings.TrimSpace(strings.Join(s.pending, " "))
	if transcript == "" {
		s.pending = s.pending[:0]
		s.transition(ctx, EventTurnAbandoned)
		s.notifyState("")
		return
	}

	s.transition(ctx, EventSilence)
	if s.classifier.Classify(transcript).Intent == nlp.IntentSearch {
		s.transition(ctx, EventSearchStarted)
	}
	s.notifyState(s.responder.Processing())
	s.dispatch(ctx, transcript)
}

func (s *Session) dispatch(ctx context.Context, transcript string) {
	go func() {
		response, err := s.executor.Execute(ctx, s.userID, s.sessionID, transcript)

		if err == nil && response.Response != "" && response.AudioURL == "" {
			audioURL, speakErr := s.executor.Speak(ctx, response.Response)
			if speakErr != nil {
				s.log.WithFields(logrus.Fields{
					"session_id": s.sessionID,
					"error":      speakErr.Error(),
				}).Warn("Speech synthesis failed, responding without audio")
			} else {
				response.AudioURL = audioURL
			}
		}

		select {
		case s.results <- commandResult{response: response, err: err}:
		case <-ctx.Done():
		}
	}()
}

func (s *Session) handleCommandResult(ctx context.Context, result commandResult) {
	if s.state != StateProcessing && s.state != StateSearching {
		return
	}

	if result.err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": s.sessionID,
			"error":      result.err.Error(),
		}).Error("Voice command execution failed")
		s.transition(ctx, EventCommandDone)
		s.notify(assistant.StreamEnvelope{
			Type:     "response",
			State:    s.state.String(),
			Response: s.responder.Failure(),
			Error:    result.err.Error(),
		})
		return
	}

	intent := result.response.Intent
	if result.response.Success &&
		(intent == string(nlp.IntentCreateTask) || intent == string(nlp.IntentCreateNote)) {
		s.transition(ctx, EventCreateSucceeded)
	} else {
		s.transition(ctx, EventCommandDone)
	}

	s.notify(assistant.StreamEnvelope{
		Type:     "response",
		State:    s.state.String(),
		Intent:   result.response.Intent,
		Response: result.response.Response,
		Results:  result.response.Results,
		AudioURL: result.response.AudioURL,
	})
}

func (s *Session) handleSignal(ctx context.Context, sig clientSignal) {
	switch sig {
	case signalActivate:
		if s.state != StateIdle && s.state != StateWakeListening {
			return
		}
		if !s.recognizer.IsConnected() {
			if err := s.recognizer.Connect(ctx); err != nil {
				s.log.WithFields(logrus.Fields{
					"session_id": s.sessionID,
					"error":      err.Error(),
				}).Warn("Recognizer connect on activation failed")
			}
		}
		s.pending = s.pending[:0]
		s.transition(ctx, EventWakeDetected)
		s.notifyState(s.responder.WakeGreeting())

	case signalPlaybackDone:
		switch s.state {
		case StateGreeting:
			s.transition(ctx, EventGreetingDone)
			s.notifyState(s.responder.Listening())
		case StateResponding, StateConfirming:
			s.pending = s.pending[:0]
			s.transition(ctx, EventResponseDone)
			s.notifyState("")
		}

	case signalDismiss:
		s.pending = s.pending[:0]
		s.stopTimer()
		s.recognizer.Close()
		s.transition(ctx, EventStop)
		s.notifyState("")
	}
}

func (s *Session) handleRecognizerDown(ctx context.Context) {
	if s.state == StateListening {
		// The recognizer ending mid-turn submits whatever was heard
		// rather than discarding the command.
		if strings.TrimSpace(strings.Join(s.pending, " ")) != "" {
			s.submit(ctx)
			s.scheduleRestart()
			return
		}
		s.transition(ctx, EventRecognizerError)
		s.notify(assistant.StreamEnvelope{
			Type:     "error",
			State:    s.state.String(),
			Response: s.responder.Failure(),
			Error:    "speech recognition interrupted",
		})
		s.scheduleRestart()
		return
	}

	s.transition(ctx, EventRecognizerError)
	s.scheduleRestart()
}

func (s *Session) scheduleRestart() {
	time.AfterFunc(s.restartDelay, func() {
		select {
		case s.restart <- struct{}{}:
		default:
		}
	})
}

func (s *Session) reconnectRecognizer(ctx context.Context) bool {
	if s.state == StateIdle {
		return false
	}
	if err := s.recognizer.Connect(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": s.sessionID,
			"error":      err.Error(),
		}).Warn("Speech recognizer reconnect failed, retrying")
		s.scheduleRestart()
		return false
	}
	s.transition(ctx, EventRecognizerRestored)
	return true
}

func (s *Session) transition(ctx context.Context, event Event) {
	next := Next(s.state, event)
	if next == s.state && event != EventRecognizerError {
		return
	}

	s.log.WithFields(logrus.Fields{
		"session_id": s.sessionID,
		"from":       s.state.String(),
		"event":      event.String(),
		"to":         next.String(),
	}).Debug("Session state transition")

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	switch s.state {
	case StateGreeting:
		// A command spoken in the same breath as the wake word skips
		// the greeting dwell.
		if len(s.pending) > 0 {
			s.resetTimer(time.Millisecond)
			return
		}
		s.resetTimer(s.greetingDwell)
	case StateListening:
		s.resetTimer(s.silenceTimeout)
	case StateResponding, StateConfirming:
		s.resetTimer(s.respondDwell)
	default:
		s.stopTimer()
	}
}

func (s *Session) notifyState(response string) {
	s.notify(assistant.StreamEnvelope{
		Type:     "state",
		State:    s.state.String(),
		Response: response,
	})
}

func (s *Session) resetTimer(d time.Duration) {
	if s.timer == nil {
		s.timer = time.NewTimer(d)
		return
	}
	if !s.timer.Stop() {
		select {
		case <-s.timer.C:
		default:
		}
	}
	s.timer.Reset(d)
}

func (s *Session) stopTimer() {
	if s.timer == nil {
		return
	}
	if !s.timer.Stop() {
		select {
		case <-s.timer.C:
		default:
		}
	}
}

func (s *Session) timerC() <-chan time.Time {
	if s.timer == nil {
		return nil
	}
	return s.timer.C
}
