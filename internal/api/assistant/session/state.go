package session

// State is the position of a voice session in its listening lifecycle.
type State int

const (
	StateIdle State = iota
	StateWakeListening
	StateGreeting
	StateListening
	StateProcessing
	StateSearching
	StateResponding
	StateConfirming
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWakeListening:
		return "wake_listening"
	case StateGreeting:
		return "greeting"
	case StateListening:
		return "listening"
	case StateProcessing:
		return "processing"
	case StateSearching:
		return "searching"
	case StateResponding:
		return "responding"
	case StateConfirming:
		return "confirming"
	default:
		return "unknown"
	}
}

// Event is an occurrence that can move a session between states.
type Event int

const (
	EventStart Event = iota
	EventStop
	EventWakeDetected
	EventGreetingDone
	EventSilence
	EventSearchStarted
	EventCommandDone
	EventCreateSucceeded
	EventResponseDone
	EventTurnAbandoned
	EventRecognizerError
	EventRecognizerRestored
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventStop:
		return "stop"
	case EventWakeDetected:
		return "wake_detected"
	case EventGreetingDone:
		return "greeting_done"
	case EventSilence:
		return "silence"
	case EventSearchStarted:
		return "search_started"
	case EventCommandDone:
		return "command_done"
	case EventCreateSucceeded:
		return "create_succeeded"
	case EventResponseDone:
		return "response_done"
	case EventTurnAbandoned:
		return "turn_abandoned"
	case EventRecognizerError:
		return "recognizer_error"
	case EventRecognizerRestored:
		return "recognizer_restored"
	default:
		return "unknown"
	}
}

// Next returns the state a session moves to when event fires in state.
// It is a pure function: the session loop owns every timer and side
// effect, so transitions stay deterministic and testable.
func Next(state State, event Event) State {
	if event == EventStop {
		return StateIdle
	}

	switch state {
	case StateIdle:
		switch event {
		case EventStart:
			return StateWakeListening
		case EventWakeDetected:
			// Manual activation works from idle too.
			return StateGreeting
		}
	case StateWakeListening:
		switch event {
		case EventWakeDetected:
			return StateGreeting
		case EventRecognizerError:
			return StateWakeListening
		}
	case StateGreeting:
		if event == EventGreetingDone {
			return StateListening
		}
	case StateListening:
		switch event {
		case EventSilence:
			return StateProcessing
		case EventTurnAbandoned:
			return StateWakeListening
		case EventRecognizerError:
			return StateWakeListening
		}
	case StateProcessing:
		switch event {
		case EventSearchStarted:
			return StateSearching
		case EventCreateSucceeded:
			return StateConfirming
		case EventCommandDone:
			return StateResponding
		}
	case StateSearching:
		switch event {
		case EventCommandDone:
			return StateResponding
		case EventCreateSucceeded:
			return StateConfirming
		}
	case StateResponding:
		if event == EventResponseDone {
			return StateWakeListening
		}
	case StateConfirming:
		if event == EventResponseDone {
			return StateWakeListening
		}
	}

	return state
}
