package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextHappyPath(t *testing.T) {
	state := StateIdle

	state = Next(state, EventStart)
	assert.Equal(t, StateWakeListening, state)

	state = Next(state, EventWakeDetected)
	assert.Equal(t, StateGreeting, state)

	state = Next(state, EventGreetingDone)
	assert.Equal(t, StateListening, state)

	state = Next(state, EventSilence)
	assert.Equal(t, StateProcessing, state)

	state = Next(state, EventCommandDone)
	assert.Equal(t, StateResponding, state)

	state = Next(state, EventResponseDone)
	assert.Equal(t, StateWakeListening, state)
}

func TestNextSearchPath(t *testing.T) {
	state := Next(StateProcessing, EventSearchStarted)
	assert.Equal(t, StateSearching, state)

	assert.Equal(t, StateResponding, Next(state, EventCommandDone))
	assert.Equal(t, StateConfirming, Next(state, EventCreateSucceeded))
}

func TestNextConfirmingPath(t *testing.T) {
	state := Next(StateProcessing, EventCreateSucceeded)
	assert.Equal(t, StateConfirming, state)

	assert.Equal(t, StateWakeListening, Next(state, EventResponseDone))
	assert.Equal(t, StateIdle, Next(state, EventStop))
}

func TestNextManualActivationFromIdle(t *testing.T) {
	assert.Equal(t, StateGreeting, Next(StateIdle, EventWakeDetected))
}

func TestNextAbandonedTurnReturnsToWakeListening(t *testing.T) {
	assert.Equal(t, StateWakeListening, Next(StateListening, EventTurnAbandoned))
	assert.Equal(t, StateProcessing, Next(StateProcessing, EventTurnAbandoned))
}

func TestNextStopFromAnyState(t *testing.T) {
	states := []State{
		StateIdle,
		StateWakeListening,
		StateGreeting,
		StateListening,
		StateProcessing,
		StateSearching,
		StateResponding,
		StateConfirming,
	}

	for _, state := range states {
		assert.Equal(t, StateIdle, Next(state, EventStop), "stop from %s", state)
	}
}

func TestNextIgnoresEventsOutOfOrder(t *testing.T) {
	assert.Equal(t, StateIdle, Next(StateIdle, EventSilence))
	assert.Equal(t, StateWakeListening, Next(StateWakeListening, EventSilence))
	assert.Equal(t, StateGreeting, Next(StateGreeting, EventCommandDone))
	assert.Equal(t, StateProcessing, Next(StateProcessing, EventWakeDetected))
	assert.Equal(t, StateProcessing, Next(StateProcessing, EventSilence))
	assert.Equal(t, StateResponding, Next(StateResponding, EventWakeDetected))
}

func TestNextRecognizerErrorFallsBackToWakeListening(t *testing.T) {
	assert.Equal(t, StateWakeListening, Next(StateListening, EventRecognizerError))
	assert.Equal(t, StateWakeListening, Next(StateWakeListening, EventRecognizerError))
}

func TestStateAndEventStrings(t *testing.T) {
	assert.Equal(t, "wake_listening", StateWakeListening.String())
	assert.Equal(t, "processing", StateProcessing.String())
	assert.Equal(t, "searching", StateSearching.String())
	assert.Equal(t, "confirming", StateConfirming.String())
	assert.Equal(t, "wake_detected", EventWakeDetected.String())
	assert.Equal(t, "silence", EventSilence.String())
	assert.Equal(t, "create_succeeded", EventCreateSucceeded.String())
}
